package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiphyo4f20/Subtitles/internal/config"
	"github.com/paiphyo4f20/Subtitles/internal/memory"
	"golang.org/x/text/language"
)

const workflowDoc = "1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\nWorld\n\n"

func testConfig() config.Config {
	return config.Config{
		Translate: config.TranslateConfig{
			SourceLanguage: language.English,
			TargetLanguage: language.Burmese,
			Concurrency:    1,
		},
	}
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.srt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestWorkflowRunExportsTranslatedDocument(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, workflowDoc)
	store, err := memory.Load(filepath.Join(dir, "translation_memory.en-my.json"))
	require.NoError(t, err)

	workflow := NewWorkflow(testConfig(), newFakeProvider(), store)
	result, err := workflow.Run(context.Background(), RunOptions{InputPath: input})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "translated.srt"), result.OutputPath)
	assert.Equal(t, 2, result.Stats.TotalLines)
	assert.Equal(t, 2, result.Stats.TranslatedLines)

	exported, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t,
		"1\n00:00:01,000 --> 00:00:02,000\nmy:Hello\n\n2\n00:00:03,000 --> 00:00:04,000\nmy:World\n\n",
		string(exported))

	// The bulk workflow checkpoint persisted the memory.
	reloaded, err := memory.Load(store.Path())
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
}

func TestWorkflowRunWithReview(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, workflowDoc)
	store, err := memory.Load(filepath.Join(dir, "translation_memory.en-my.json"))
	require.NoError(t, err)

	// Edit the first entry during review, accept the second.
	script := "2\nမင်္ဂလာပါ\n1\n"
	var out bytes.Buffer

	workflow := NewWorkflow(testConfig(), newFakeProvider(), store)
	result, err := workflow.Run(context.Background(), RunOptions{
		InputPath: input,
		Review:    true,
		ReviewIn:  strings.NewReader(script),
		ReviewOut: &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "မင်္ဂလာပါ", result.Document.Entries[0].TranslatedText)
	value, ok := store.Get("Hello")
	assert.True(t, ok)
	assert.Equal(t, "မင်္ဂလာပါ", value)
}

func TestWorkflowRunMissingInput(t *testing.T) {
	store, err := memory.Load(filepath.Join(t.TempDir(), "m.json"))
	require.NoError(t, err)
	workflow := NewWorkflow(testConfig(), newFakeProvider(), store)

	_, err = workflow.Run(context.Background(), RunOptions{InputPath: filepath.Join(t.TempDir(), "nope.srt")})
	require.Error(t, err)
	assert.True(t, IsErrorType(err, ErrFileNotFound))
}

func TestWorkflowRunMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "one\n00:00:01,000 --> 00:00:02,000\nHello\n\n")
	store, err := memory.Load(filepath.Join(dir, "m.json"))
	require.NoError(t, err)

	workflow := NewWorkflow(testConfig(), newFakeProvider(), store)
	result, err := workflow.Run(context.Background(), RunOptions{InputPath: input})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsErrorType(err, ErrMalformedDocument))

	// No partial document was emitted.
	_, statErr := os.Stat(filepath.Join(dir, "translated.srt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWorkflowRunEmptyInputPath(t *testing.T) {
	store, err := memory.Load(filepath.Join(t.TempDir(), "m.json"))
	require.NoError(t, err)
	workflow := NewWorkflow(testConfig(), newFakeProvider(), store)

	_, err = workflow.Run(context.Background(), RunOptions{})
	require.Error(t, err)
	assert.True(t, IsErrorType(err, ErrValidation))
}

func TestWorkflowRunReviewSaveFailureStillExports(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, workflowDoc)
	storePath := filepath.Join(dir, "translation_memory.en-my.json")
	store, err := memory.Load(storePath)
	require.NoError(t, err)

	// Make every Save fail by occupying the store path with a directory.
	require.NoError(t, os.Mkdir(storePath, 0755))

	var out bytes.Buffer
	workflow := NewWorkflow(testConfig(), newFakeProvider(), store)
	result, err := workflow.Run(context.Background(), RunOptions{
		InputPath: input,
		Review:    true,
		ReviewIn:  strings.NewReader("1\n1\n"),
		ReviewOut: &out,
	})

	// Persistence failed, but the translated document was still exported
	// and comes back with the error so the caller can retry Save.
	require.Error(t, err)
	assert.True(t, IsErrorType(err, ErrFileWrite))
	require.NotNil(t, result)
	assert.Equal(t, "my:Hello", result.Document.Entries[0].TranslatedText)

	exported, readErr := os.ReadFile(filepath.Join(dir, "translated.srt"))
	require.NoError(t, readErr)
	assert.Contains(t, string(exported), "my:Hello")
}

func TestWorkflowRunExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, workflowDoc)
	store, err := memory.Load(filepath.Join(dir, "m.json"))
	require.NoError(t, err)

	out := filepath.Join(dir, "episode1.my.srt")
	workflow := NewWorkflow(testConfig(), newFakeProvider(), store)
	result, err := workflow.Run(context.Background(), RunOptions{InputPath: input, OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, out, result.OutputPath)

	_, statErr := os.Stat(out)
	assert.NoError(t, statErr)
}
