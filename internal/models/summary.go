package models

// LessonSummary is a read-only listing projection of a lesson file. It is
// derived fresh on every listing request and never cached. Files that fail
// to parse still produce a summary with Valid=false and the parse error
// embedded, so the listing can render them as disabled entries.
type LessonSummary struct {
	Filename    string
	Name        string
	Description string
	WordCount   int
	Valid       bool
	Error       string
}
