package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/paiphyo4f20/Subtitles/internal/memory"
	"github.com/paiphyo4f20/Subtitles/internal/provider"
	"github.com/paiphyo4f20/Subtitles/internal/subtitle"
	"github.com/paiphyo4f20/Subtitles/pkg/log"
)

// Translator runs the auto-translate pass over a document. It holds the
// provider and the translation memory explicitly so both can be swapped
// in tests.
type Translator struct {
	provider   provider.Translator
	store      *memory.Store
	sourceLang string
	targetLang string
}

// NewTranslator creates the pass runner for a fixed language pair.
func NewTranslator(p provider.Translator, store *memory.Store, sourceLang, targetLang string) *Translator {
	return &Translator{
		provider:   p,
		store:      store,
		sourceLang: sourceLang,
		targetLang: targetLang,
	}
}

// AutoTranslate fills TranslatedText for every non-structural entry, in
// place. Memory hits skip the provider; provider failures become
// placeholders and never enter the memory, and never abort the pass.
// With concurrency above 1, provider calls run in parallel but identical
// source texts are deduplicated to a single in-flight call.
func (t *Translator) AutoTranslate(ctx context.Context, entries []subtitle.Entry, concurrency int) {
	if concurrency > 1 {
		t.autoTranslateConcurrent(ctx, entries, concurrency)
		return
	}

	total := len(entries)
	for i := range entries {
		entry := &entries[i]
		if skip := prepare(entry); skip {
			continue
		}
		log.Info("Translating line %d/%d: %s", i+1, total, preview(entry.Text))
		entry.TranslatedText = t.translateOne(ctx, entry.Text)
	}
}

func (t *Translator) autoTranslateConcurrent(ctx context.Context, entries []subtitle.Entry, concurrency int) {
	var flight singleflight.Group
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range entries {
		entry := &entries[i]
		if skip := prepare(entry); skip {
			continue
		}
		g.Go(func() error {
			result, _, _ := flight.Do(entry.Text, func() (any, error) {
				return t.translateOne(ctx, entry.Text), nil
			})
			entry.TranslatedText = result.(string)
			return nil
		})
	}

	// Workers never return errors: per-entry failures become placeholders.
	_ = g.Wait()
}

// prepare handles the entries that never reach the provider. It reports
// whether the entry is done.
func prepare(entry *subtitle.Entry) bool {
	if entry.IsStructural() {
		return true
	}
	if strings.TrimSpace(entry.Text) == "" {
		entry.TranslatedText = entry.Text
		return true
	}
	return false
}

// translateOne resolves a single text: memory first, then the provider.
func (t *Translator) translateOne(ctx context.Context, text string) string {
	if cached, ok := t.store.Get(text); ok {
		return cached
	}

	result, err := t.provider.Translate(ctx, text, t.sourceLang, t.targetLang)
	if err != nil {
		log.Error("Translation error for %s: %v", preview(text), err)
		return provider.Placeholder(text)
	}

	t.store.Put(text, result)
	return result
}

func preview(text string) string {
	const max = 50
	flat := strings.ReplaceAll(text, "\n", " ")
	if len(flat) <= max {
		return flat
	}
	return flat[:max] + "..."
}
