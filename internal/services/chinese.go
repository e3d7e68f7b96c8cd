package services

import (
	"fmt"
	"io"
	"os"
	"strings"

	"chinese-learning-helper/internal/logger"
	"chinese-learning-helper/internal/models"

	"github.com/hermanschaaf/cedict"
	"github.com/mozillazg/go-pinyin"
)

// Placeholder glosses used when the dictionary cannot serve a lookup.
// Dictionary failures are non-fatal: words are still created, just with a
// placeholder translation.
const (
	TranslationNotAvailable = "Translation not available"
	TranslationNotFound     = "Translation not found"
)

const chineseComponent = "ChineseService"

// ChineseService synthesizes pinyin and English glosses for Chinese text.
// Pinyin generation is always available; dictionary lookup degrades to a
// placeholder when the CC-CEDICT file cannot be loaded.
type ChineseService struct {
	pinyinArgs  pinyin.Args
	definitions map[string][]string
	logger      logger.Logger
}

// NewChineseService creates the service, loading CC-CEDICT definitions
// from dictPath. A missing or unreadable dictionary is logged and leaves
// the service in degraded mode rather than failing construction.
func NewChineseService(dictPath string, log logger.Logger) *ChineseService {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone

	service := &ChineseService{
		pinyinArgs: args,
		logger:     log,
	}

	definitions, err := loadDefinitions(dictPath)
	if err != nil {
		log.Warning(chineseComponent, "dictionary unavailable, translations degraded", map[string]interface{}{
			"path":  dictPath,
			"error": err.Error(),
		})
		return service
	}

	service.definitions = definitions
	log.Info(chineseComponent, "dictionary loaded", map[string]interface{}{
		"path":    dictPath,
		"entries": len(definitions),
	})
	return service
}

func loadDefinitions(path string) (map[string][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer file.Close()

	definitions := make(map[string][]string)
	parser := cedict.New(file)
	for {
		err := parser.NextEntry()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse dictionary: %w", err)
		}
		entry := parser.Entry()
		// Simplified is the primary key; traditional-only lookups
		// still resolve when the forms differ.
		definitions[entry.Simplified] = entry.Definitions
		if entry.Traditional != entry.Simplified {
			if _, exists := definitions[entry.Traditional]; !exists {
				definitions[entry.Traditional] = entry.Definitions
			}
		}
	}
	return definitions, nil
}

// Available reports whether dictionary lookup is usable.
func (c *ChineseService) Available() bool {
	return c.definitions != nil
}

// GeneratePinyin returns tone-marked pinyin for the Chinese text,
// syllables joined by spaces. Non-Chinese characters are skipped.
func (c *ChineseService) GeneratePinyin(text string) string {
	return strings.Join(pinyin.LazyPinyin(text, c.pinyinArgs), " ")
}

// Translate returns the English gloss for the Chinese text, multiple
// definitions joined with "; ". Returns a fixed placeholder when the
// dictionary is unavailable or has no entry.
func (c *ChineseService) Translate(text string) string {
	if c.definitions == nil {
		return TranslationNotAvailable
	}
	if defs, ok := c.definitions[text]; ok && len(defs) > 0 {
		return strings.Join(defs, "; ")
	}
	return TranslationNotFound
}

// CreateWord builds a Word from Chinese text with synthesized pinyin and
// translation.
func (c *ChineseService) CreateWord(text string) models.Word {
	return models.Word{
		Chinese: text,
		Pinyin:  c.GeneratePinyin(text),
		English: c.Translate(text),
	}
}

// ValidateText checks word input before it reaches the lesson. Returns
// ok plus a user-facing message when the input is rejected.
func (c *ChineseService) ValidateText(text string) (bool, string) {
	if strings.TrimSpace(text) == "" {
		return false, "Please enter Chinese characters"
	}
	return true, ""
}
