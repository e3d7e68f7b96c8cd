package models

// Word represents a single vocabulary entry: Chinese text, its pinyin
// romanization, and an English gloss. Words are immutable once created;
// edits replace the whole record. The Chinese field is the identity key
// within a lesson.
type Word struct {
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
	English string `json:"english"`
}

// ToMap converts the word to a map for serialization
func (w Word) ToMap() map[string]any {
	return map[string]any{
		"chinese": w.Chinese,
		"pinyin":  w.Pinyin,
		"english": w.English,
	}
}

// WordFromMap builds a Word from a decoded map. Missing or non-string
// fields default to empty text; the parse never fails.
func WordFromMap(data map[string]any) Word {
	return Word{
		Chinese: stringField(data, "chinese"),
		Pinyin:  stringField(data, "pinyin"),
		English: stringField(data, "english"),
	}
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
