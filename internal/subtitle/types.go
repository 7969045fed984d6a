package subtitle

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

// Reader is the interface for reading subtitle files
type Reader interface {
	Read() (*File, error)
}

// Writer is the interface for writing subtitle files
type Writer interface {
	Write(path string, subtitle *File) error
}

// Entry represents a single subtitle block
type Entry struct {
	Index          int    // sequence id, re-emitted verbatim on export
	Timing         string // display interval line, passed through unmodified
	Text           string // original text, lines joined with "\n"
	TranslatedText string // translated text, empty until produced
	NeedsReview    bool   // reserved for review workflows
}

// File represents subtitle file
type File struct {
	Entries  []Entry
	Language language.Tag
	Format   string // e.g. SRT
}

var numericLine = regexp.MustCompile(`^\d+$`)

// IsStructural reports whether the entry text is not real prose: a bare
// number or a line carrying the timing arrow. Such entries come from
// degenerate blocks in malformed input and are excluded from translation
// and review.
func (e Entry) IsStructural() bool {
	trimmed := strings.TrimSpace(e.Text)
	if numericLine.MatchString(trimmed) {
		return true
	}
	return strings.Contains(e.Text, "-->")
}
