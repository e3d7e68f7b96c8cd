package controllers

import (
	"fmt"

	"chinese-learning-helper/internal/logger"
	"chinese-learning-helper/internal/models"
	"chinese-learning-helper/internal/services"
)

const controllerComponent = "MainController"

// MenuPresenter is the listing surface the controller drives.
type MenuPresenter interface {
	PopulateLessons(summaries []models.LessonSummary)
	SetStatus(status string)
}

// LessonPresenter is the detail surface the controller drives. Rows are
// indexed in the view's display order, which may be shuffled relative to
// the persisted order.
type LessonPresenter interface {
	SetLesson(lesson *models.Lesson)
	Reset()
	DisplayedWord(row int) (models.Word, bool)
	WordAddSuccess(word models.Word)
	WordAddError(message string)
	WordDeleteSuccess(row int)
	WordDeleteError(message string)
}

// Navigator switches between the two application views and surfaces
// dialogs on the main window.
type Navigator interface {
	ShowMenuView()
	ShowLessonView()
	ShowError(title, message string)
	ShowInfo(title, message string)
}

// MainController coordinates the two views over the lesson store and the
// language service. It exposes synchronous commands invoked directly by
// the presentation layer; all state lives in the current lesson, which is
// reloaded from storage on every navigation so memory never outlives the
// files backing it.
type MainController struct {
	store   *services.LessonStore
	chinese *services.ChineseService
	logger  logger.Logger

	menuView   MenuPresenter
	lessonView LessonPresenter
	navigator  Navigator

	currentLesson *models.Lesson
}

// NewMainController creates the controller with its injected services.
func NewMainController(store *services.LessonStore, chinese *services.ChineseService, log logger.Logger) *MainController {
	return &MainController{
		store:   store,
		chinese: chinese,
		logger:  log,
	}
}

// SetViews wires the presentation surfaces. Must be called before any
// command is issued.
func (mc *MainController) SetViews(menu MenuPresenter, lesson LessonPresenter, nav Navigator) {
	mc.menuView = menu
	mc.lessonView = lesson
	mc.navigator = nav
}

// CurrentLesson returns the lesson under edit, or nil on the listing view.
func (mc *MainController) CurrentLesson() *models.Lesson {
	return mc.currentLesson
}

// ShowMenu switches to the listing view, dropping the current lesson and
// re-deriving the listing from storage.
func (mc *MainController) ShowMenu() {
	mc.currentLesson = nil
	mc.lessonView.Reset()
	mc.navigator.ShowMenuView()
	mc.RefreshLessons()
}

// RefreshLessons re-derives the lesson listing from storage.
func (mc *MainController) RefreshLessons() {
	summaries := mc.store.ListSummaries()
	mc.menuView.PopulateLessons(summaries)

	if len(summaries) == 0 {
		mc.menuView.SetStatus(fmt.Sprintf("No lesson files found. Create some JSON files in the '%s' folder.", mc.store.DataDir()))
	} else {
		mc.menuView.SetStatus(fmt.Sprintf("Found %d lesson file(s)", len(summaries)))
	}
}

// OpenLesson loads a lesson and switches to the detail view. A failed
// load reports an error and stays on the listing.
func (mc *MainController) OpenLesson(filename string) {
	lesson, err := mc.store.Load(filename)
	if err != nil {
		mc.logger.Error(controllerComponent, err, map[string]interface{}{
			"filename": filename,
		})
		mc.navigator.ShowError("Error", fmt.Sprintf("Could not load lesson file: %s", filename))
		return
	}

	mc.currentLesson = lesson
	mc.lessonView.SetLesson(lesson)
	mc.navigator.ShowLessonView()
}

// AddWord validates the input, synthesizes pinyin and a gloss, and
// appends the word to the current lesson. The in-memory append is rolled
// back when the save fails, so memory and storage stay consistent.
func (mc *MainController) AddWord(chinese string) {
	if mc.currentLesson == nil {
		mc.lessonView.WordAddError("No lesson loaded")
		return
	}

	if ok, message := mc.chinese.ValidateText(chinese); !ok {
		mc.lessonView.WordAddError(message)
		return
	}

	if mc.currentLesson.HasWord(chinese) {
		mc.lessonView.WordAddError("Word already exists in this lesson")
		return
	}

	word := mc.chinese.CreateWord(chinese)

	if !mc.currentLesson.AddWord(word) {
		mc.lessonView.WordAddError("Failed to add word to lesson")
		return
	}

	if err := mc.store.Save(mc.currentLesson); err != nil {
		mc.currentLesson.RemoveWord(chinese)
		mc.logger.Error(controllerComponent, err, map[string]interface{}{
			"filename": mc.currentLesson.Filename,
			"chinese":  chinese,
		})
		mc.lessonView.WordAddError("Failed to save lesson file")
		return
	}

	mc.lessonView.WordAddSuccess(word)
}

// DeleteWord removes the word at the given display row from the current
// lesson. The in-memory removal is rolled back when the save fails.
func (mc *MainController) DeleteWord(row int) {
	if mc.currentLesson == nil {
		mc.lessonView.WordDeleteError("No lesson loaded")
		return
	}

	word, ok := mc.lessonView.DisplayedWord(row)
	if !ok {
		mc.lessonView.WordDeleteError("Invalid word selection")
		return
	}

	if !mc.currentLesson.RemoveWord(word.Chinese) {
		mc.lessonView.WordDeleteError("Failed to remove word from lesson")
		return
	}

	if err := mc.store.Save(mc.currentLesson); err != nil {
		mc.currentLesson.AddWord(word)
		mc.logger.Error(controllerComponent, err, map[string]interface{}{
			"filename": mc.currentLesson.Filename,
			"chinese":  word.Chinese,
		})
		mc.lessonView.WordDeleteError("Failed to save lesson file")
		return
	}

	mc.lessonView.WordDeleteSuccess(row)
}

// CreateLesson creates and persists a new empty lesson, then refreshes
// the listing. Name length is validated here as well as at the modal.
func (mc *MainController) CreateLesson(name, description string) {
	if len([]rune(name)) < 2 {
		mc.navigator.ShowError("Error", "Lesson name must be at least 2 characters")
		return
	}

	lesson := mc.store.CreateNew(name, description)
	if err := mc.store.Save(lesson); err != nil {
		mc.logger.Error(controllerComponent, err, map[string]interface{}{
			"name": name,
		})
		mc.navigator.ShowError("Error", "Failed to create lesson file")
		return
	}

	mc.navigator.ShowInfo("Success", fmt.Sprintf("Lesson '%s' created successfully!", name))
	mc.RefreshLessons()
}

// DeleteLesson removes a lesson file and returns to a refreshed listing.
func (mc *MainController) DeleteLesson(filename string) {
	if err := mc.store.Delete(filename); err != nil {
		mc.logger.Error(controllerComponent, err, map[string]interface{}{
			"filename": filename,
		})
		mc.navigator.ShowError("Error", "Failed to delete lesson file")
		return
	}

	mc.navigator.ShowInfo("Success", fmt.Sprintf("Lesson file '%s' deleted successfully!", filename))
	mc.ShowMenu()
}

// DuplicateLesson copies an existing lesson under a new name and
// refreshes the listing.
func (mc *MainController) DuplicateLesson(filename, newName string) {
	if len([]rune(newName)) < 2 {
		mc.navigator.ShowError("Error", "Lesson name must be at least 2 characters")
		return
	}

	duplicate, err := mc.store.Duplicate(filename, newName)
	if err != nil {
		mc.logger.Error(controllerComponent, err, map[string]interface{}{
			"filename": filename,
			"new_name": newName,
		})
		mc.navigator.ShowError("Error", fmt.Sprintf("Failed to duplicate lesson: %s", filename))
		return
	}

	mc.navigator.ShowInfo("Success", fmt.Sprintf("Lesson '%s' created successfully!", duplicate.Name))
	mc.RefreshLessons()
}
