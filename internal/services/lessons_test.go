package services

import (
	"os"
	"path/filepath"
	"testing"

	"chinese-learning-helper/internal/logger"
	"chinese-learning-helper/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*LessonStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "data")
	store, err := NewLessonStore(dir, logger.Nop{})
	require.NoError(t, err)
	return store, dir
}

func writeLessonFile(t *testing.T, dir, filename, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
}

func TestNewLessonStoreSeedsSampleLesson(t *testing.T) {
	store, dir := newTestStore(t)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "basic_greetings.json", entries[0].Name())

	lesson, err := store.Load("basic_greetings.json")
	require.NoError(t, err)
	assert.Equal(t, "Basic Greetings", lesson.Name)
	assert.Equal(t, 6, lesson.WordCount())
	assert.True(t, lesson.HasWord("你好"))
}

func TestNewLessonStoreDoesNotReseedExistingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lessons"), 0o755))

	store, err := NewLessonStore(filepath.Join(dir, "lessons"), logger.Nop{})
	require.NoError(t, err)
	assert.Empty(t, store.ListSummaries())
}

func TestListSummariesMixedValidity(t *testing.T) {
	store, dir := newTestStore(t)
	writeLessonFile(t, dir, "broken.json", "{not valid json")

	summaries := store.ListSummaries()
	require.Len(t, summaries, 2)

	// Sorted by filename ascending.
	assert.Equal(t, "basic_greetings.json", summaries[0].Filename)
	assert.Equal(t, "broken.json", summaries[1].Filename)

	valid := summaries[0]
	assert.True(t, valid.Valid)
	assert.Equal(t, "Basic Greetings", valid.Name)
	assert.Equal(t, 6, valid.WordCount)
	assert.Empty(t, valid.Error)

	invalid := summaries[1]
	assert.False(t, invalid.Valid)
	assert.Equal(t, "broken", invalid.Name)
	assert.Equal(t, 0, invalid.WordCount)
	assert.NotEmpty(t, invalid.Error)
}

func TestListSummariesIgnoresOtherFiles(t *testing.T) {
	store, dir := newTestStore(t)
	writeLessonFile(t, dir, "notes.txt", "not a lesson")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.json"), 0o755))

	summaries := store.ListSummaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, "basic_greetings.json", summaries[0].Filename)
}

func TestLoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	lesson, err := store.Load("missing.json")
	assert.Error(t, err)
	assert.Nil(t, lesson)
}

func TestLoadLenientOnMissingFields(t *testing.T) {
	store, dir := newTestStore(t)
	writeLessonFile(t, dir, "sparse.json", `{"description": "only a description"}`)

	lesson, err := store.Load("sparse.json")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLessonName, lesson.Name)
	assert.Equal(t, "only a description", lesson.Description)
	assert.Empty(t, lesson.Words)
	assert.Equal(t, "sparse.json", lesson.Filename)
}

func TestSaveDerivesFilenameOnce(t *testing.T) {
	store, dir := newTestStore(t)

	lesson := store.CreateNew("Basic Greetings!!", "punctuation gets stripped")
	require.NoError(t, store.Save(lesson))
	assert.Equal(t, "basic_greetings.json", lesson.Filename)

	// Filename is stable across later saves even if the name changes.
	lesson.Name = "Renamed Lesson"
	require.NoError(t, store.Save(lesson))
	assert.Equal(t, "basic_greetings.json", lesson.Filename)

	_, err := os.Stat(filepath.Join(dir, "basic_greetings.json"))
	assert.NoError(t, err)
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	store, _ := newTestStore(t)

	lesson, err := store.Load("basic_greetings.json")
	require.NoError(t, err)
	require.True(t, lesson.AddWord(models.Word{Chinese: "晚安", Pinyin: "wǎn ān", English: "good night"}))
	require.NoError(t, store.Save(lesson))

	reloaded, err := store.Load("basic_greetings.json")
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.WordCount())
	assert.True(t, reloaded.HasWord("晚安"))
}

func TestSaveFailureReportsError(t *testing.T) {
	store, dir := newTestStore(t)

	// A directory squatting on the target path makes the write fail
	// regardless of permissions.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "trapped.json"), 0o755))

	lesson := store.CreateNew("Trapped", "")
	lesson.Filename = "trapped.json"
	assert.Error(t, store.Save(lesson))
}

func TestDeleteMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	before := store.ListSummaries()
	assert.Error(t, store.Delete("missing.json"))
	assert.Equal(t, before, store.ListSummaries())
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Delete("basic_greetings.json"))
	assert.Empty(t, store.ListSummaries())
}

func TestDuplicate(t *testing.T) {
	store, _ := newTestStore(t)

	duplicate, err := store.Duplicate("basic_greetings.json", "Greetings Copy")
	require.NoError(t, err)
	assert.Equal(t, "greetings_copy.json", duplicate.Filename)
	assert.Equal(t, "Copy of Common Chinese greetings and polite expressions", duplicate.Description)
	assert.Equal(t, 6, duplicate.WordCount())

	summaries := store.ListSummaries()
	assert.Len(t, summaries, 2)
}

func TestDuplicateMissingSource(t *testing.T) {
	store, _ := newTestStore(t)

	duplicate, err := store.Duplicate("missing.json", "Copy")
	assert.Error(t, err)
	assert.Nil(t, duplicate)
}

func TestDeriveFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Basic Greetings!!", "basic_greetings.json"},
		{"Food & Drink", "food__drink.json"},
		{"HSK-1 Vocab", "hsk-1_vocab.json"},
		{"  Spaces  ", "spaces.json"},
		{"日常用语", "日常用语.json"},
		{"snake_case", "snake_case.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveFilename(tt.name))
		})
	}
}
