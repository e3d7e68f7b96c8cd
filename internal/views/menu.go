package views

import (
	"fmt"

	"chinese-learning-helper/internal/models"
	"chinese-learning-helper/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MenuView is the lesson listing view: one card per lesson file, plus
// refresh and new-lesson actions and a status bar. Files that failed to
// parse render as disabled cards with the parse error embedded.
type MenuView struct {
	dataDir    string
	container  *fyne.Container
	header     *widget.Label
	lessonList *fyne.Container
	scroll     *container.Scroll
	refreshBtn *widget.Button
	addBtn     *widget.Button
	statusBar  *components.StatusBar

	// Event handlers - connected to controller
	lessonSelectedHandler func(filename string)
	refreshHandler        func()
	addLessonHandler      func()
	duplicateHandler      func(filename string)
	deleteLessonHandler   func(filename string)
}

// NewMenuView creates the listing view. dataDir is display-only, shown
// in the status bar.
func NewMenuView(dataDir string) *MenuView {
	view := &MenuView{dataDir: dataDir}
	view.createComponents()
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

// createComponents initializes all listing components
func (mv *MenuView) createComponents() {
	mv.header = widget.NewLabelWithStyle("Chinese Learning Helper", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	mv.lessonList = container.NewVBox()
	mv.scroll = container.NewVScroll(mv.lessonList)
	mv.refreshBtn = widget.NewButton("Refresh", nil)
	mv.addBtn = widget.NewButton("New Lesson", nil)
	mv.addBtn.Importance = widget.HighImportance
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the listing layout
func (mv *MenuView) buildLayout() {
	topArea := container.NewVBox(
		mv.header,
		container.NewHBox(mv.addBtn, mv.refreshBtn),
		widget.NewSeparator(),
	)

	mv.container = container.NewBorder(
		topArea,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.scroll,
	)
}

// setupEventHandlers connects internal component events
func (mv *MenuView) setupEventHandlers() {
	mv.refreshBtn.OnTapped = func() {
		if mv.refreshHandler != nil {
			mv.refreshHandler()
		}
	}
	mv.addBtn.OnTapped = func() {
		if mv.addLessonHandler != nil {
			mv.addLessonHandler()
		}
	}
}

// Event handler setters - called during wiring

// SetLessonSelectedHandler sets the handler for opening a lesson
func (mv *MenuView) SetLessonSelectedHandler(handler func(filename string)) {
	mv.lessonSelectedHandler = handler
}

// SetRefreshHandler sets the handler for listing refresh requests
func (mv *MenuView) SetRefreshHandler(handler func()) {
	mv.refreshHandler = handler
}

// SetAddLessonHandler sets the handler for new-lesson requests
func (mv *MenuView) SetAddLessonHandler(handler func()) {
	mv.addLessonHandler = handler
}

// SetDuplicateHandler sets the handler for duplicate-lesson requests
func (mv *MenuView) SetDuplicateHandler(handler func(filename string)) {
	mv.duplicateHandler = handler
}

// SetDeleteLessonHandler sets the handler for delete-lesson requests
func (mv *MenuView) SetDeleteLessonHandler(handler func(filename string)) {
	mv.deleteLessonHandler = handler
}

// PopulateLessons rebuilds the listing from freshly derived summaries.
func (mv *MenuView) PopulateLessons(summaries []models.LessonSummary) {
	fyne.Do(func() {
		mv.lessonList.Objects = nil
		for _, summary := range summaries {
			mv.lessonList.Add(mv.buildLessonCard(summary))
		}
		mv.lessonList.Refresh()
	})
	mv.statusBar.SetStoreInfo(mv.dataDir, len(summaries))
}

// buildLessonCard renders one summary as a card with its actions.
func (mv *MenuView) buildLessonCard(summary models.LessonSummary) fyne.CanvasObject {
	filename := summary.Filename

	openBtn := widget.NewButton("Open", func() {
		if mv.lessonSelectedHandler != nil {
			mv.lessonSelectedHandler(filename)
		}
	})
	openBtn.Importance = widget.HighImportance

	duplicateBtn := widget.NewButton("Duplicate", func() {
		if mv.duplicateHandler != nil {
			mv.duplicateHandler(filename)
		}
	})

	deleteBtn := widget.NewButton("Delete", func() {
		if mv.deleteLessonHandler != nil {
			mv.deleteLessonHandler(filename)
		}
	})
	deleteBtn.Importance = widget.DangerImportance

	var subtitle string
	if summary.Valid {
		subtitle = fmt.Sprintf("%s — %d word(s) — %s", summary.Description, summary.WordCount, filename)
	} else {
		// Unparseable file: keep it visible so it can still be
		// deleted, but disable opening and duplicating.
		subtitle = fmt.Sprintf("Cannot load %s: %s", filename, summary.Error)
		openBtn.Disable()
		duplicateBtn.Disable()
	}

	actions := container.NewHBox(openBtn, duplicateBtn, deleteBtn)
	return widget.NewCard(summary.Name, subtitle, actions)
}

// SetStatus updates the listing status bar message
func (mv *MenuView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// GetContainer returns the listing container
func (mv *MenuView) GetContainer() *fyne.Container {
	return mv.container
}
