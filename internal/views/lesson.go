package views

import (
	"fmt"
	"math/rand"
	"strings"

	"chinese-learning-helper/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LessonView is the lesson detail view: header, add-word input, the word
// table with per-row delete, shuffle, and per-column visibility toggles.
// Display order and column visibility are view state only and are never
// persisted; displayWords may be shuffled relative to the lesson file.
type LessonView struct {
	container *fyne.Container

	nameLabel        *widget.Label
	descriptionLabel *widget.Label
	countLabel       *widget.Label

	wordEntry  *widget.Entry
	addBtn     *widget.Button
	errorLabel *widget.Label

	wordRows *fyne.Container
	scroll   *container.Scroll

	showChinese *widget.Check
	showPinyin  *widget.Check
	showEnglish *widget.Check
	shuffleBtn  *widget.Button

	backBtn         *widget.Button
	deleteLessonBtn *widget.Button

	// View session state
	filename     string
	displayWords []models.Word

	// Event handlers - connected to controller
	backHandler         func()
	wordAddHandler      func(chinese string)
	wordDeleteHandler   func(row int)
	lessonDeleteHandler func(filename string)
}

// NewLessonView creates the detail view
func NewLessonView() *LessonView {
	view := &LessonView{}
	view.createComponents()
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

// createComponents initializes all detail view components
func (lv *LessonView) createComponents() {
	lv.nameLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	lv.descriptionLabel = widget.NewLabel("")
	lv.descriptionLabel.Wrapping = fyne.TextWrapWord
	lv.countLabel = widget.NewLabel("0 word(s)")

	lv.wordEntry = widget.NewEntry()
	lv.wordEntry.SetPlaceHolder("Enter Chinese characters...")
	lv.addBtn = widget.NewButton("Add Word", nil)
	lv.addBtn.Importance = widget.HighImportance
	lv.errorLabel = widget.NewLabel("")
	lv.errorLabel.Importance = widget.DangerImportance
	lv.errorLabel.Hide()

	lv.wordRows = container.NewVBox()
	lv.scroll = container.NewVScroll(lv.wordRows)

	lv.showChinese = widget.NewCheck("Chinese", nil)
	lv.showChinese.SetChecked(true)
	lv.showPinyin = widget.NewCheck("Pinyin", nil)
	lv.showPinyin.SetChecked(true)
	lv.showEnglish = widget.NewCheck("English", nil)
	lv.showEnglish.SetChecked(true)
	lv.shuffleBtn = widget.NewButton("Shuffle", nil)

	lv.backBtn = widget.NewButton("Back", nil)
	lv.deleteLessonBtn = widget.NewButton("Delete Lesson", nil)
	lv.deleteLessonBtn.Importance = widget.DangerImportance
}

// buildLayout constructs the detail view layout
func (lv *LessonView) buildLayout() {
	header := container.NewVBox(
		container.NewBorder(nil, nil, lv.backBtn, lv.deleteLessonBtn, lv.nameLabel),
		lv.descriptionLabel,
		lv.countLabel,
		widget.NewSeparator(),
	)

	addArea := container.NewVBox(
		container.NewBorder(nil, nil, nil, lv.addBtn, lv.wordEntry),
		lv.errorLabel,
	)

	displayControls := container.NewHBox(
		widget.NewLabel("Columns:"),
		lv.showChinese,
		lv.showPinyin,
		lv.showEnglish,
		widget.NewSeparator(),
		lv.shuffleBtn,
	)

	topArea := container.NewVBox(header, addArea, displayControls, widget.NewSeparator())

	lv.container = container.NewBorder(
		topArea,
		nil,
		nil,
		nil,
		lv.scroll,
	)
}

// setupEventHandlers connects internal component events
func (lv *LessonView) setupEventHandlers() {
	submit := func() {
		if lv.wordAddHandler != nil {
			lv.wordAddHandler(strings.TrimSpace(lv.wordEntry.Text))
		}
	}
	lv.addBtn.OnTapped = submit
	lv.wordEntry.OnSubmitted = func(string) { submit() }

	lv.backBtn.OnTapped = func() {
		if lv.backHandler != nil {
			lv.backHandler()
		}
	}

	lv.deleteLessonBtn.OnTapped = func() {
		if lv.lessonDeleteHandler != nil && lv.filename != "" {
			lv.lessonDeleteHandler(lv.filename)
		}
	}

	lv.shuffleBtn.OnTapped = func() {
		lv.ShuffleWords()
	}

	onColumnToggle := func(bool) { lv.rebuildRows() }
	lv.showChinese.OnChanged = onColumnToggle
	lv.showPinyin.OnChanged = onColumnToggle
	lv.showEnglish.OnChanged = onColumnToggle
}

// Event handler setters - called during wiring

// SetBackHandler sets the handler for returning to the listing
func (lv *LessonView) SetBackHandler(handler func()) {
	lv.backHandler = handler
}

// SetWordAddHandler sets the handler for add-word requests
func (lv *LessonView) SetWordAddHandler(handler func(chinese string)) {
	lv.wordAddHandler = handler
}

// SetWordDeleteHandler sets the handler for per-row delete requests
func (lv *LessonView) SetWordDeleteHandler(handler func(row int)) {
	lv.wordDeleteHandler = handler
}

// SetLessonDeleteHandler sets the handler for delete-lesson requests
func (lv *LessonView) SetLessonDeleteHandler(handler func(filename string)) {
	lv.lessonDeleteHandler = handler
}

// SetLesson populates the view for a freshly loaded lesson.
func (lv *LessonView) SetLesson(lesson *models.Lesson) {
	lv.filename = lesson.Filename
	lv.displayWords = append([]models.Word{}, lesson.Words...)

	fyne.Do(func() {
		lv.nameLabel.SetText(lesson.Name)
		lv.descriptionLabel.SetText(lesson.Description)
		lv.wordEntry.SetText("")
		lv.clearError()
	})
	lv.updateCount()
	lv.rebuildRows()
}

// Reset clears the view session state when navigating away.
func (lv *LessonView) Reset() {
	lv.filename = ""
	lv.displayWords = nil

	fyne.Do(func() {
		lv.nameLabel.SetText("")
		lv.descriptionLabel.SetText("")
		lv.countLabel.SetText("0 word(s)")
		lv.wordEntry.SetText("")
		lv.clearError()
		lv.showChinese.SetChecked(true)
		lv.showPinyin.SetChecked(true)
		lv.showEnglish.SetChecked(true)
		lv.wordRows.Objects = nil
		lv.wordRows.Refresh()
	})
}

// DisplayedWord returns the word at a display row, in the current
// (possibly shuffled) order.
func (lv *LessonView) DisplayedWord(row int) (models.Word, bool) {
	if row < 0 || row >= len(lv.displayWords) {
		return models.Word{}, false
	}
	return lv.displayWords[row], true
}

// WordAddSuccess appends the new word to the display and clears the
// input.
func (lv *LessonView) WordAddSuccess(word models.Word) {
	lv.displayWords = append(lv.displayWords, word)

	fyne.Do(func() {
		lv.wordEntry.SetText("")
		lv.clearError()
	})
	lv.updateCount()
	lv.rebuildRows()
}

// WordAddError surfaces an inline add-word failure.
func (lv *LessonView) WordAddError(message string) {
	fyne.Do(func() {
		lv.errorLabel.SetText(message)
		lv.errorLabel.Show()
	})
}

// WordDeleteSuccess removes the row from the display.
func (lv *LessonView) WordDeleteSuccess(row int) {
	if row < 0 || row >= len(lv.displayWords) {
		return
	}
	lv.displayWords = append(lv.displayWords[:row], lv.displayWords[row+1:]...)
	lv.updateCount()
	lv.rebuildRows()
}

// WordDeleteError surfaces an inline delete-word failure.
func (lv *LessonView) WordDeleteError(message string) {
	fyne.Do(func() {
		lv.errorLabel.SetText(message)
		lv.errorLabel.Show()
	})
}

// ShuffleWords randomizes the display order. The persisted order is
// untouched.
func (lv *LessonView) ShuffleWords() {
	rand.Shuffle(len(lv.displayWords), func(i, j int) {
		lv.displayWords[i], lv.displayWords[j] = lv.displayWords[j], lv.displayWords[i]
	})
	lv.rebuildRows()
}

func (lv *LessonView) clearError() {
	lv.errorLabel.SetText("")
	lv.errorLabel.Hide()
}

func (lv *LessonView) updateCount() {
	fyne.Do(func() {
		lv.countLabel.SetText(fmt.Sprintf("%d word(s)", len(lv.displayWords)))
	})
}

// rebuildRows regenerates the word table from the display order and the
// current column visibility.
func (lv *LessonView) rebuildRows() {
	fyne.Do(func() {
		lv.wordRows.Objects = nil
		for i, word := range lv.displayWords {
			lv.wordRows.Add(lv.buildWordRow(i, word))
		}
		lv.wordRows.Refresh()
	})
}

func (lv *LessonView) buildWordRow(row int, word models.Word) fyne.CanvasObject {
	cells := []fyne.CanvasObject{}
	if lv.showChinese.Checked {
		cells = append(cells, widget.NewLabelWithStyle(word.Chinese, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}
	if lv.showPinyin.Checked {
		cells = append(cells, widget.NewLabel(word.Pinyin))
	}
	if lv.showEnglish.Checked {
		english := widget.NewLabel(word.English)
		english.Wrapping = fyne.TextWrapWord
		cells = append(cells, english)
	}

	deleteBtn := widget.NewButton("Delete", func() {
		if lv.wordDeleteHandler != nil {
			lv.wordDeleteHandler(row)
		}
	})

	return container.NewBorder(nil, nil, nil, deleteBtn,
		container.NewGridWithColumns(3, cells...))
}

// GetContainer returns the detail view container
func (lv *LessonView) GetContainer() *fyne.Container {
	return lv.container
}
