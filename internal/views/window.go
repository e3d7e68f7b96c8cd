package views

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainWindow owns the single application window and switches its content
// between the listing and detail views, mirroring a stacked-widget
// layout. It also hosts the shared dialogs.
type MainWindow struct {
	window fyne.Window
	stack  *fyne.Container

	menuView   *MenuView
	lessonView *LessonView
}

// NewMainWindow assembles the window content from the two views. The
// listing view is shown first.
func NewMainWindow(window fyne.Window, menu *MenuView, lesson *LessonView) *MainWindow {
	mw := &MainWindow{
		window:     window,
		menuView:   menu,
		lessonView: lesson,
	}

	mw.stack = container.NewStack(menu.GetContainer(), lesson.GetContainer())
	lesson.GetContainer().Hide()
	window.SetContent(mw.stack)

	return mw
}

// ShowMenuView switches the window to the lesson listing
func (mw *MainWindow) ShowMenuView() {
	fyne.Do(func() {
		mw.lessonView.GetContainer().Hide()
		mw.menuView.GetContainer().Show()
		mw.stack.Refresh()
	})
}

// ShowLessonView switches the window to the lesson detail view
func (mw *MainWindow) ShowLessonView() {
	fyne.Do(func() {
		mw.menuView.GetContainer().Hide()
		mw.lessonView.GetContainer().Show()
		mw.stack.Refresh()
	})
}

// ShowError displays an error dialog
func (mw *MainWindow) ShowError(title, message string) {
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), mw.window)
	})
}

// ShowInfo displays an information dialog
func (mw *MainWindow) ShowInfo(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, mw.window)
	})
}

// ShowConfirm displays a confirmation dialog
func (mw *MainWindow) ShowConfirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, mw.window)
	})
}

// Window returns the underlying Fyne window
func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}
