package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paiphyo4f20/Subtitles/internal/subtitle"
)

func TestComputeStatistics(t *testing.T) {
	entries := []subtitle.Entry{
		{Text: "Hello", TranslatedText: "မင်္ဂလာပါ"},
		{Text: "World"},
		{Text: "42"}, // structural, not counted
	}
	store := newStore(t)
	store.Put("Hello", "မင်္ဂလာပါ")

	stats := ComputeStatistics(entries, store)
	assert.Equal(t, 2, stats.TotalLines)
	assert.Equal(t, 1, stats.TranslatedLines)
	assert.InDelta(t, 50.0, stats.Progress, 0.001)
	assert.Equal(t, 1, stats.MemoryEntries)
}

func TestComputeStatisticsEmptyDocument(t *testing.T) {
	stats := ComputeStatistics(nil, nil)
	assert.Equal(t, 0, stats.TotalLines)
	assert.Equal(t, 0.0, stats.Progress)
}

func TestComputeStatisticsAllStructural(t *testing.T) {
	entries := []subtitle.Entry{
		{Text: "1"},
		{Text: "00:00:01,000 --> 00:00:02,000"},
	}
	stats := ComputeStatistics(entries, newStore(t))
	assert.Equal(t, 0, stats.TotalLines)
	assert.Equal(t, 0.0, stats.Progress)
}
