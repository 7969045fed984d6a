package subtitle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeTranslatedDocument(t *testing.T) {
	entries, err := Parse(sampleDoc)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries[0].TranslatedText = "မင်္ဂလာပါ"
	entries[1].TranslatedText = "ကမ္ဘာ"

	got := Serialize(entries)
	want := "1\n00:00:01,000 --> 00:00:02,000\nမင်္ဂလာပါ\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nကမ္ဘာ\n\n"
	assert.Equal(t, want, got)
}

func TestSerializeEmptyTranslation(t *testing.T) {
	entries := []Entry{{Index: 1, Timing: "00:00:01,000 --> 00:00:02,000", Text: "Hello"}}
	got := Serialize(entries)
	// Untranslated entries export an empty text segment, not the source text.
	assert.Equal(t, "1\n00:00:01,000 --> 00:00:02,000\n\n\n", got)
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		sampleDoc,
		"5\n00:01:00,000 --> 00:01:02,500\nLine one\nLine two\n\n9\n00:01:03,000 --> 00:01:04,000\nAnother\n\n",
	}

	for _, doc := range docs {
		entries, err := Parse(doc)
		require.NoError(t, err)
		for i := range entries {
			entries[i].TranslatedText = entries[i].Text
		}
		assert.Equal(t, doc, Serialize(entries))
	}
}

func TestWriterWritesFile(t *testing.T) {
	entries, err := Parse(sampleDoc)
	require.NoError(t, err)
	entries[0].TranslatedText = "မင်္ဂလာပါ"
	entries[1].TranslatedText = "ကမ္ဘာ"

	path := filepath.Join(t.TempDir(), "out.srt")
	require.NoError(t, NewWriter().Write(path, &File{Entries: entries, Format: "SRT"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Serialize(entries), string(content))
}

func TestWriterNilFile(t *testing.T) {
	err := NewWriter().Write(filepath.Join(t.TempDir(), "out.srt"), nil)
	require.Error(t, err)
}
