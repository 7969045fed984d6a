package file

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatedPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/media/show", "translated.srt"), TranslatedPath("/media/show/episode1.srt"))
	assert.Equal(t, "translated.srt", TranslatedPath("episode1.srt"))
	assert.Equal(t, "translated.srt", TranslatedPath(""))
}
