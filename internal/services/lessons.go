package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"chinese-learning-helper/internal/logger"
	"chinese-learning-helper/internal/models"
)

// LessonFileExt is the fixed extension for lesson files.
const LessonFileExt = ".json"

const storeComponent = "LessonStore"

// LessonStore is a directory-backed store of lesson files, one JSON file
// per lesson, keyed by filename. It owns the data directory; callers own
// the in-memory Lesson they load from it. There is no locking and no
// optimistic concurrency check: the application is single-actor and the
// last writer wins.
type LessonStore struct {
	dataDir string
	logger  logger.Logger
}

// NewLessonStore creates a store rooted at dataDir. On first use, if the
// directory does not exist it is created and seeded with a sample lesson
// so the application is never empty on first run.
func NewLessonStore(dataDir string, log logger.Logger) (*LessonStore, error) {
	store := &LessonStore{
		dataDir: dataDir,
		logger:  log,
	}
	if err := store.ensureDataDir(); err != nil {
		return nil, err
	}
	return store, nil
}

// DataDir returns the directory the store operates on.
func (s *LessonStore) DataDir() string {
	return s.dataDir
}

func (s *LessonStore) ensureDataDir() error {
	if _, err := os.Stat(s.dataDir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat data dir %s: %w", s.dataDir, err)
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.dataDir, err)
	}

	s.logger.Info(storeComponent, "data directory created, seeding sample lesson", map[string]interface{}{
		"dir": s.dataDir,
	})

	sample := sampleLesson()
	if err := s.Save(sample); err != nil {
		return fmt.Errorf("seed sample lesson: %w", err)
	}
	return nil
}

func sampleLesson() *models.Lesson {
	return &models.Lesson{
		Name:        "Basic Greetings",
		Description: "Common Chinese greetings and polite expressions",
		Words: []models.Word{
			{Chinese: "你好", Pinyin: "nǐ hǎo", English: "hello"},
			{Chinese: "谢谢", Pinyin: "xiè xiè", English: "thank you"},
			{Chinese: "再见", Pinyin: "zài jiàn", English: "goodbye"},
			{Chinese: "对不起", Pinyin: "duì bù qǐ", English: "sorry"},
			{Chinese: "不客气", Pinyin: "bù kè qì", English: "you're welcome"},
			{Chinese: "早上好", Pinyin: "zǎo shàng hǎo", English: "good morning"},
		},
	}
}

// ListSummaries derives a summary for every lesson file in the data
// directory, sorted by filename ascending. Parse failures never
// propagate: an unreadable or malformed file yields a summary with
// Valid=false and the error embedded, its name derived from the filename.
func (s *LessonStore) ListSummaries() []models.LessonSummary {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		s.logger.Error(storeComponent, err, map[string]interface{}{
			"dir": s.dataDir,
		})
		return []models.LessonSummary{}
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), LessonFileExt) {
			continue
		}
		filenames = append(filenames, entry.Name())
	}
	sort.Strings(filenames)

	summaries := make([]models.LessonSummary, 0, len(filenames))
	for _, filename := range filenames {
		summaries = append(summaries, s.summarize(filename))
	}
	return summaries
}

func (s *LessonStore) summarize(filename string) models.LessonSummary {
	lesson, err := s.Load(filename)
	if err != nil {
		s.logger.Warning(storeComponent, "lesson file unreadable", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		return models.LessonSummary{
			Filename:    filename,
			Name:        strings.TrimSuffix(filename, LessonFileExt),
			Description: fmt.Sprintf("Error reading file: %s", err),
			WordCount:   0,
			Valid:       false,
			Error:       err.Error(),
		}
	}

	description := lesson.Description
	if description == "" {
		description = "No description available"
	}
	return models.LessonSummary{
		Filename:    filename,
		Name:        lesson.Name,
		Description: description,
		WordCount:   lesson.WordCount(),
		Valid:       true,
	}
}

// Load reads and parses one lesson file. The returned lesson carries the
// filename it was loaded from. Missing, unreadable, or structurally
// invalid files return an error; missing fields inside a valid JSON
// object default per the lenient-parse contract.
func (s *LessonStore) Load(filename string) (*models.Lesson, error) {
	path := filepath.Join(s.dataDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson %s: %w", filename, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse lesson %s: %w", filename, err)
	}

	return models.LessonFromMap(raw, filename), nil
}

// Save writes the lesson to its file, deriving a filename from the lesson
// name on first save. Any existing file of that name is overwritten.
func (s *LessonStore) Save(lesson *models.Lesson) error {
	if lesson.Filename == "" {
		lesson.Filename = DeriveFilename(lesson.Name)
	}

	path := filepath.Join(s.dataDir, lesson.Filename)

	data, err := json.MarshalIndent(lesson.ToMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode lesson %s: %w", lesson.Filename, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write lesson %s: %w", lesson.Filename, err)
	}

	s.logger.Debug(storeComponent, "lesson saved", map[string]interface{}{
		"filename":   lesson.Filename,
		"word_count": lesson.WordCount(),
	})
	return nil
}

// Delete removes a lesson file. Deleting a file that does not exist is an
// error; the listing is unaffected either way.
func (s *LessonStore) Delete(filename string) error {
	path := filepath.Join(s.dataDir, filename)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete lesson %s: %w", filename, err)
	}

	s.logger.Info(storeComponent, "lesson deleted", map[string]interface{}{
		"filename": filename,
	})
	return nil
}

// CreateNew builds an empty in-memory lesson. Nothing touches storage
// until the first Save.
func (s *LessonStore) CreateNew(name, description string) *models.Lesson {
	return models.NewLesson(name, description)
}

// Duplicate copies an existing lesson under a new name. The copy gets its
// own derived filename and a "Copy of" description, and is saved
// immediately.
func (s *LessonStore) Duplicate(filename, newName string) (*models.Lesson, error) {
	original, err := s.Load(filename)
	if err != nil {
		return nil, err
	}

	duplicate := &models.Lesson{
		Name:        newName,
		Description: fmt.Sprintf("Copy of %s", original.Description),
		Words:       append([]models.Word{}, original.Words...),
	}

	if err := s.Save(duplicate); err != nil {
		return nil, err
	}
	return duplicate, nil
}

// DeriveFilename maps a lesson name to its storage filename: characters
// outside letters, digits, spaces, hyphens, and underscores are stripped,
// the result is trimmed and lower-cased, and spaces become underscores.
func DeriveFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	safe = strings.ToLower(strings.ReplaceAll(safe, " ", "_"))
	return safe + LessonFileExt
}
