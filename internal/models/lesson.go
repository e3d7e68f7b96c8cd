package models

// DefaultLessonName is used when a lesson file carries no name field.
const DefaultLessonName = "Unknown Lesson"

// Lesson represents a named collection of vocabulary words backed by one
// storage file. Filename is empty until the lesson is first saved and
// stable thereafter unless explicitly overridden.
type Lesson struct {
	Name        string
	Description string
	Words       []Word
	Filename    string
}

// NewLesson creates an empty in-memory lesson with no backing file yet.
func NewLesson(name, description string) *Lesson {
	return &Lesson{
		Name:        name,
		Description: description,
		Words:       []Word{},
	}
}

// AddWord appends a word to the lesson. Returns false without mutating
// when a word with the same Chinese text is already present.
func (l *Lesson) AddWord(word Word) bool {
	if l.HasWord(word.Chinese) {
		return false
	}
	l.Words = append(l.Words, word)
	return true
}

// RemoveWord removes the first word matching the Chinese key. Returns
// false when no such word exists.
func (l *Lesson) RemoveWord(chinese string) bool {
	for i, word := range l.Words {
		if word.Chinese == chinese {
			l.Words = append(l.Words[:i], l.Words[i+1:]...)
			return true
		}
	}
	return false
}

// HasWord reports whether a word with the given Chinese text is present.
func (l *Lesson) HasWord(chinese string) bool {
	for _, word := range l.Words {
		if word.Chinese == chinese {
			return true
		}
	}
	return false
}

// WordCount returns the number of words in the lesson.
func (l *Lesson) WordCount() int {
	return len(l.Words)
}

// ToMap converts the lesson to a map for serialization. Filename is a
// storage concern and is not part of the persisted representation.
func (l *Lesson) ToMap() map[string]any {
	words := make([]any, 0, len(l.Words))
	for _, word := range l.Words {
		words = append(words, word.ToMap())
	}
	return map[string]any{
		"name":        l.Name,
		"description": l.Description,
		"words":       words,
	}
}

// LessonFromMap builds a Lesson from a decoded map. The parse is lenient
// by contract: missing fields get defaults, unknown fields are ignored,
// and malformed word entries are skipped rather than failing the lesson.
func LessonFromMap(data map[string]any, filename string) *Lesson {
	lesson := &Lesson{
		Name:        DefaultLessonName,
		Description: stringField(data, "description"),
		Words:       []Word{},
		Filename:    filename,
	}
	if name, ok := data["name"].(string); ok && name != "" {
		lesson.Name = name
	}
	if rawWords, ok := data["words"].([]any); ok {
		for _, raw := range rawWords {
			if entry, ok := raw.(map[string]any); ok {
				lesson.Words = append(lesson.Words, WordFromMap(entry))
			}
		}
	}
	return lesson
}
