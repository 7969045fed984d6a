package subtitle

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// ErrMalformed marks a document whose sequence id line is not an integer.
var ErrMalformed = errors.New("malformed subtitle document")

// ErrNotFound marks a missing subtitle file.
var ErrNotFound = errors.New("subtitle file does not exist")

// DefaultReader is the default subtitle file reader
type DefaultReader struct {
	path string
}

// NewReader creates a new subtitle file reader
func NewReader(
	path string,
) Reader {
	return &DefaultReader{
		path: path,
	}
}

// Read reads and parses the subtitle file
func (r *DefaultReader) Read() (*File, error) {
	if !strings.HasSuffix(strings.ToLower(r.path), ".srt") {
		return nil, fmt.Errorf("only SRT format subtitle files are supported: %s", r.path)
	}

	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, r.path)
	}

	content, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	entries, err := Parse(string(content))
	if err != nil {
		return nil, err
	}

	return &File{
		Entries:  entries,
		Language: detectLanguage(entries),
		Format:   "SRT",
	}, nil
}

// Parse splits raw document text into subtitle entries. Blocks are
// separated by a blank line; each block needs an id line, a timing line
// and at least one text line. Blocks missing lines are skipped, but an id
// line that does not parse as an integer fails the whole document.
func Parse(content string) ([]Entry, error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	trimmed := strings.TrimSpace(normalized)
	if trimmed == "" {
		return nil, nil
	}

	var entries []Entry
	for _, block := range strings.Split(trimmed, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue // degenerate block, no entry produced
		}

		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: sequence id %q is not an integer", ErrMalformed, lines[0])
		}

		entries = append(entries, Entry{
			Index:  index,
			Timing: lines[1],
			Text:   strings.Join(lines[2:], "\n"),
		})
	}

	return entries, nil
}

// detectLanguage simple language detection based on entry texts
func detectLanguage(entries []Entry) language.Tag {
	if len(entries) == 0 {
		return language.Und
	}

	langMap := make(map[string]int)

	for _, entry := range entries {
		if entry.IsStructural() || strings.TrimSpace(entry.Text) == "" {
			continue
		}
		lang := whatlanggo.DetectLang(entry.Text).Iso6391()
		langMap[lang]++
	}

	// Get top language
	var topLang string
	var topCount int
	for lang, count := range langMap {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}

	if topLang == "" {
		return language.Und
	}

	return language.Make(topLang)
}
