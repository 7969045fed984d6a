package review

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleDriverScriptedSession(t *testing.T) {
	entries := proseEntries("Hello", "World", "Again")
	store := newStore(t)
	session, err := NewSession(entries, store)
	require.NoError(t, err)

	// Accept, edit, then finish without looking at the third entry.
	script := "1\n2\nကမ္ဘာ\n5\n"
	var out bytes.Buffer
	driver := NewConsoleDriver(strings.NewReader(script), &out)

	require.NoError(t, driver.Run(session))

	assert.True(t, session.Done())
	assert.Equal(t, "ကမ္ဘာ", entries[1].TranslatedText)
	value, ok := store.Get("World")
	assert.True(t, ok)
	assert.Equal(t, "ကမ္ဘာ", value)
	assert.Empty(t, entries[2].TranslatedText)

	assert.Contains(t, out.String(), "INTERACTIVE REVIEW MODE")
	assert.Contains(t, out.String(), "Original: Hello")
}

func TestConsoleDriverInvalidChoiceContinues(t *testing.T) {
	entries := proseEntries("Hello", "World")
	session, err := NewSession(entries, newStore(t))
	require.NoError(t, err)

	script := "9\n1\n"
	var out bytes.Buffer
	require.NoError(t, NewConsoleDriver(strings.NewReader(script), &out).Run(session))

	assert.True(t, session.Done())
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestConsoleDriverExhaustedInputFinishes(t *testing.T) {
	entries := proseEntries("Hello", "World")
	session, err := NewSession(entries, newStore(t))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewConsoleDriver(strings.NewReader(""), &out).Run(session))
	assert.True(t, session.Done())
}

func TestConsoleDriverBackRevisitsEntry(t *testing.T) {
	entries := proseEntries("Hello", "World")
	session, err := NewSession(entries, newStore(t))
	require.NoError(t, err)

	// Accept first, go back, edit it, then accept the rest.
	script := "1\n4\n2\nမင်္ဂလာပါ\n1\n"
	var out bytes.Buffer
	require.NoError(t, NewConsoleDriver(strings.NewReader(script), &out).Run(session))

	assert.Equal(t, "မင်္ဂလာပါ", entries[0].TranslatedText)
	assert.True(t, session.Done())
}
