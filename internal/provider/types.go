package provider

import (
	"context"
	"fmt"
	"strings"
)

// Translator converts a single text between the configured language pair.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Error is a per-entry provider failure. It carries the text that failed
// so callers can build a placeholder for it.
type Error struct {
	Text  string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("translation failed for %q: %v", e.Text, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

const (
	placeholderPrefix = "[Translation Error: "
	placeholderSuffix = "]"
)

// Placeholder builds the visible marker written in place of a translation
// when the provider fails. It encodes the original text so nothing is lost
// on export.
func Placeholder(text string) string {
	return placeholderPrefix + text + placeholderSuffix
}

// IsPlaceholder reports whether a translated text is a failure marker.
func IsPlaceholder(text string) bool {
	return strings.HasPrefix(text, placeholderPrefix) && strings.HasSuffix(text, placeholderSuffix)
}
