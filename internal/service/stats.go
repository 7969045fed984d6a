package service

import (
	"github.com/paiphyo4f20/Subtitles/internal/memory"
	"github.com/paiphyo4f20/Subtitles/internal/subtitle"
)

// Statistics summarizes translation progress for a document plus the
// state of the translation memory.
type Statistics struct {
	TotalLines      int
	TranslatedLines int
	Progress        float64 // percentage, 0 when nothing is translatable
	MemoryEntries   int
}

// ComputeStatistics counts translatable entries and how many carry a
// translation. Structural entries are excluded. A document with no
// translatable lines reports 0% rather than dividing by zero.
func ComputeStatistics(entries []subtitle.Entry, store *memory.Store) Statistics {
	stats := Statistics{}
	if store != nil {
		stats.MemoryEntries = store.Len()
	}

	for _, entry := range entries {
		if entry.IsStructural() {
			continue
		}
		stats.TotalLines++
		if entry.TranslatedText != "" {
			stats.TranslatedLines++
		}
	}

	if stats.TotalLines > 0 {
		stats.Progress = float64(stats.TranslatedLines) / float64(stats.TotalLines) * 100
	}

	return stats
}
