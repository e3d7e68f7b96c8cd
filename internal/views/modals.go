package views

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// lessonNameValidator rejects names shorter than two characters. Counted
// in runes so two-character Chinese names pass.
func lessonNameValidator(name string) error {
	if len([]rune(name)) < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	return nil
}

// ShowCreateLessonModal prompts for a new lesson's name and optional
// description. onSubmit runs only when the dialog is confirmed with a
// valid name.
func (mw *MainWindow) ShowCreateLessonModal(onSubmit func(name, description string)) {
	fyne.Do(func() {
		nameEntry := widget.NewEntry()
		nameEntry.SetPlaceHolder("e.g. Food and Drink")
		nameEntry.Validator = lessonNameValidator

		descriptionEntry := widget.NewEntry()
		descriptionEntry.SetPlaceHolder("Optional description")

		items := []*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descriptionEntry),
		}

		dialog.ShowForm("New Lesson", "Create", "Cancel", items, func(confirmed bool) {
			if !confirmed {
				return
			}
			onSubmit(strings.TrimSpace(nameEntry.Text), strings.TrimSpace(descriptionEntry.Text))
		}, mw.window)
	})
}

// ShowDuplicateLessonModal prompts for the name of the copy of an
// existing lesson.
func (mw *MainWindow) ShowDuplicateLessonModal(filename string, onSubmit func(newName string)) {
	fyne.Do(func() {
		nameEntry := widget.NewEntry()
		nameEntry.SetPlaceHolder("Name for the copy")
		nameEntry.Validator = lessonNameValidator

		items := []*widget.FormItem{
			widget.NewFormItem("New name", nameEntry),
		}

		title := fmt.Sprintf("Duplicate '%s'", filename)
		dialog.ShowForm(title, "Duplicate", "Cancel", items, func(confirmed bool) {
			if !confirmed {
				return
			}
			onSubmit(strings.TrimSpace(nameEntry.Text))
		}, mw.window)
	})
}

// ShowDeleteLessonConfirm asks for confirmation before a lesson file is
// removed. The prompt is keyed by filename so the user sees exactly
// which file goes away.
func (mw *MainWindow) ShowDeleteLessonConfirm(filename string, onConfirm func()) {
	message := fmt.Sprintf("Delete lesson file '%s'? This cannot be undone.", filename)
	mw.ShowConfirm("Delete Lesson", message, func(confirmed bool) {
		if confirmed {
			onConfirm()
		}
	})
}
