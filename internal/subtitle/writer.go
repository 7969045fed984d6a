package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultWriter is the default subtitle file writer
type DefaultWriter struct{}

// NewWriter creates a new subtitle file writer
func NewWriter() Writer {
	return &DefaultWriter{}
}

// Write writes the subtitle file to the specified path
func (w *DefaultWriter) Write(path string, subtitle *File) error {
	if subtitle == nil {
		return fmt.Errorf("subtitle data is empty")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	if _, err := writer.WriteString(Serialize(subtitle.Entries)); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	return nil
}

// Serialize emits the entries in order: id line, timing line, translated
// text, one blank separator line per block including the last. The
// translated text is written even when empty so the export reflects
// exactly what was produced.
func Serialize(entries []Entry) string {
	var b strings.Builder

	for _, entry := range entries {
		fmt.Fprintf(&b, "%d\n", entry.Index)
		fmt.Fprintf(&b, "%s\n", entry.Timing)
		fmt.Fprintf(&b, "%s\n\n", entry.TranslatedText)
	}

	return b.String()
}
