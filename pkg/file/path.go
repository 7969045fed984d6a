package file

import (
	"path/filepath"
)

const defaultOutputName = "translated.srt"

// TranslatedPath returns the default export path for an input subtitle
// file: translated.srt next to the input.
func TranslatedPath(input string) string {
	if input == "" {
		return defaultOutputName
	}
	return filepath.Join(filepath.Dir(input), defaultOutputName)
}
