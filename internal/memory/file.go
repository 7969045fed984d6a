package memory

import (
	"path/filepath"

	"golang.org/x/text/language"
)

// Filename returns the memory store filename for the given source and
// target languages. Uses 2-letter language base codes (e.g., "en", "my").
func Filename(sourceLang, targetLang string) string {
	src := normalizeLanguageCode(sourceLang)
	tgt := normalizeLanguageCode(targetLang)
	return "translation_memory." + src + "-" + tgt + ".json"
}

// FilePath returns the full path to the memory store in the given directory.
func FilePath(dir, sourceLang, targetLang string) string {
	return filepath.Join(dir, Filename(sourceLang, targetLang))
}

// normalizeLanguageCode parses a language string and returns its 2-letter base code.
func normalizeLanguageCode(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, _ := tag.Base()
	return base.String()
}
