package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"chinese-learning-helper/internal/logger"
	"chinese-learning-helper/internal/models"
	"chinese-learning-helper/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMenu records what the controller pushed to the listing surface.
type fakeMenu struct {
	summaries []models.LessonSummary
	status    string
}

func (f *fakeMenu) PopulateLessons(summaries []models.LessonSummary) { f.summaries = summaries }
func (f *fakeMenu) SetStatus(status string)                          { f.status = status }

// fakeLesson records detail-surface interactions and mimics the real
// view's display-order bookkeeping.
type fakeLesson struct {
	lesson       *models.Lesson
	displayWords []models.Word
	resets       int
	addErrors    []string
	deleteErrors []string
}

func (f *fakeLesson) SetLesson(lesson *models.Lesson) {
	f.lesson = lesson
	f.displayWords = append([]models.Word{}, lesson.Words...)
}

func (f *fakeLesson) Reset() {
	f.lesson = nil
	f.displayWords = nil
	f.resets++
}

func (f *fakeLesson) DisplayedWord(row int) (models.Word, bool) {
	if row < 0 || row >= len(f.displayWords) {
		return models.Word{}, false
	}
	return f.displayWords[row], true
}

func (f *fakeLesson) WordAddSuccess(word models.Word) {
	f.displayWords = append(f.displayWords, word)
}

func (f *fakeLesson) WordAddError(message string) {
	f.addErrors = append(f.addErrors, message)
}

func (f *fakeLesson) WordDeleteSuccess(row int) {
	f.displayWords = append(f.displayWords[:row], f.displayWords[row+1:]...)
}

func (f *fakeLesson) WordDeleteError(message string) {
	f.deleteErrors = append(f.deleteErrors, message)
}

// fakeNav records navigation and dialog requests.
type fakeNav struct {
	view   string
	errors []string
	infos  []string
}

func (f *fakeNav) ShowMenuView()                   { f.view = "menu" }
func (f *fakeNav) ShowLessonView()                 { f.view = "lesson" }
func (f *fakeNav) ShowError(title, message string) { f.errors = append(f.errors, message) }
func (f *fakeNav) ShowInfo(title, message string)  { f.infos = append(f.infos, message) }

type fixture struct {
	controller *MainController
	store      *services.LessonStore
	menu       *fakeMenu
	lesson     *fakeLesson
	nav        *fakeNav
	dataDir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), "data")

	store, err := services.NewLessonStore(dataDir, logger.Nop{})
	require.NoError(t, err)

	// No dictionary file: the language service runs degraded, which is
	// enough for coordination tests.
	chinese := services.NewChineseService(filepath.Join(dataDir, "no-dict.u8"), logger.Nop{})

	controller := NewMainController(store, chinese, logger.Nop{})
	menu := &fakeMenu{}
	lesson := &fakeLesson{}
	nav := &fakeNav{}
	controller.SetViews(menu, lesson, nav)

	return &fixture{
		controller: controller,
		store:      store,
		menu:       menu,
		lesson:     lesson,
		nav:        nav,
		dataDir:    dataDir,
	}
}

// breakLessonFile replaces a lesson file with a directory of the same
// name so the next save fails with an I/O error.
func breakLessonFile(t *testing.T, dataDir, filename string) {
	t.Helper()
	path := filepath.Join(dataDir, filename)
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))
}

func TestOpenLesson(t *testing.T) {
	fx := newFixture(t)

	fx.controller.OpenLesson("basic_greetings.json")

	require.NotNil(t, fx.controller.CurrentLesson())
	assert.Equal(t, "Basic Greetings", fx.controller.CurrentLesson().Name)
	assert.Equal(t, "lesson", fx.nav.view)
	assert.Equal(t, fx.controller.CurrentLesson(), fx.lesson.lesson)
}

func TestOpenLessonLoadFailure(t *testing.T) {
	fx := newFixture(t)

	fx.controller.OpenLesson("missing.json")

	assert.Nil(t, fx.controller.CurrentLesson())
	assert.NotEqual(t, "lesson", fx.nav.view)
	require.Len(t, fx.nav.errors, 1)
	assert.Contains(t, fx.nav.errors[0], "missing.json")
}

func TestAddWord(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")

	fx.controller.AddWord("晚安")

	assert.Empty(t, fx.lesson.addErrors)
	assert.True(t, fx.controller.CurrentLesson().HasWord("晚安"))

	// The mutation reached storage.
	reloaded, err := fx.store.Load("basic_greetings.json")
	require.NoError(t, err)
	assert.True(t, reloaded.HasWord("晚安"))
	assert.Equal(t, 7, reloaded.WordCount())
}

func TestAddWordWithoutLesson(t *testing.T) {
	fx := newFixture(t)

	fx.controller.AddWord("晚安")

	require.Len(t, fx.lesson.addErrors, 1)
	assert.Equal(t, "No lesson loaded", fx.lesson.addErrors[0])
}

func TestAddWordValidation(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")
	before := append([]models.Word{}, fx.controller.CurrentLesson().Words...)

	fx.controller.AddWord("   ")

	require.Len(t, fx.lesson.addErrors, 1)
	assert.Equal(t, "Please enter Chinese characters", fx.lesson.addErrors[0])
	assert.Equal(t, before, fx.controller.CurrentLesson().Words)
}

func TestAddWordDuplicate(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")

	fx.controller.AddWord("你好")

	require.Len(t, fx.lesson.addErrors, 1)
	assert.Equal(t, "Word already exists in this lesson", fx.lesson.addErrors[0])
	assert.Equal(t, 6, fx.controller.CurrentLesson().WordCount())
}

func TestAddWordSaveFailureRollsBack(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")
	before := append([]models.Word{}, fx.controller.CurrentLesson().Words...)

	breakLessonFile(t, fx.dataDir, "basic_greetings.json")
	fx.controller.AddWord("晚安")

	require.Len(t, fx.lesson.addErrors, 1)
	assert.Equal(t, "Failed to save lesson file", fx.lesson.addErrors[0])
	assert.Equal(t, before, fx.controller.CurrentLesson().Words, "in-memory word set must be restored")
}

func TestDeleteWord(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")
	first := fx.lesson.displayWords[0]

	fx.controller.DeleteWord(0)

	assert.Empty(t, fx.lesson.deleteErrors)
	assert.False(t, fx.controller.CurrentLesson().HasWord(first.Chinese))

	reloaded, err := fx.store.Load("basic_greetings.json")
	require.NoError(t, err)
	assert.False(t, reloaded.HasWord(first.Chinese))
	assert.Equal(t, 5, reloaded.WordCount())
}

func TestDeleteWordInvalidRow(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")

	fx.controller.DeleteWord(99)

	require.Len(t, fx.lesson.deleteErrors, 1)
	assert.Equal(t, "Invalid word selection", fx.lesson.deleteErrors[0])
	assert.Equal(t, 6, fx.controller.CurrentLesson().WordCount())
}

func TestDeleteWordSaveFailureRollsBack(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")
	first := fx.lesson.displayWords[0]

	breakLessonFile(t, fx.dataDir, "basic_greetings.json")
	fx.controller.DeleteWord(0)

	require.Len(t, fx.lesson.deleteErrors, 1)
	assert.Equal(t, "Failed to save lesson file", fx.lesson.deleteErrors[0])
	assert.True(t, fx.controller.CurrentLesson().HasWord(first.Chinese), "removed word must be re-inserted")
	assert.Equal(t, 6, fx.controller.CurrentLesson().WordCount())
}

func TestCreateLesson(t *testing.T) {
	fx := newFixture(t)

	fx.controller.CreateLesson("HSK 1", "First level vocabulary")

	require.Len(t, fx.nav.infos, 1)
	assert.Contains(t, fx.nav.infos[0], "HSK 1")

	lesson, err := fx.store.Load("hsk_1.json")
	require.NoError(t, err)
	assert.Equal(t, "HSK 1", lesson.Name)
	assert.Equal(t, 0, lesson.WordCount())

	// Listing was refreshed with the new lesson included.
	assert.Len(t, fx.menu.summaries, 2)
}

func TestCreateLessonNameTooShort(t *testing.T) {
	fx := newFixture(t)

	fx.controller.CreateLesson("X", "")

	require.Len(t, fx.nav.errors, 1)
	assert.Contains(t, fx.nav.errors[0], "at least 2 characters")
	assert.Len(t, fx.store.ListSummaries(), 1)
}

func TestDeleteLesson(t *testing.T) {
	fx := newFixture(t)

	fx.controller.DeleteLesson("basic_greetings.json")

	require.Len(t, fx.nav.infos, 1)
	assert.Equal(t, "menu", fx.nav.view)
	assert.Equal(t, 1, fx.lesson.resets)
	assert.Empty(t, fx.store.ListSummaries())
	assert.Contains(t, fx.menu.status, "No lesson files found")
}

func TestDeleteLessonMissingFile(t *testing.T) {
	fx := newFixture(t)

	fx.controller.DeleteLesson("missing.json")

	require.Len(t, fx.nav.errors, 1)
	assert.Len(t, fx.store.ListSummaries(), 1)
}

func TestDuplicateLesson(t *testing.T) {
	fx := newFixture(t)

	fx.controller.DuplicateLesson("basic_greetings.json", "Greetings Copy")

	require.Len(t, fx.nav.infos, 1)
	assert.Len(t, fx.menu.summaries, 2)

	dup, err := fx.store.Load("greetings_copy.json")
	require.NoError(t, err)
	assert.Equal(t, 6, dup.WordCount())
}

func TestShowMenuReloadsListing(t *testing.T) {
	fx := newFixture(t)
	fx.controller.OpenLesson("basic_greetings.json")

	fx.controller.ShowMenu()

	assert.Nil(t, fx.controller.CurrentLesson())
	assert.Equal(t, "menu", fx.nav.view)
	assert.Equal(t, 1, fx.lesson.resets)
	assert.Len(t, fx.menu.summaries, 1)
	assert.Equal(t, "Found 1 lesson file(s)", fx.menu.status)
}
