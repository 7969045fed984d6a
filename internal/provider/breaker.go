package provider

import (
	"context"

	"github.com/sony/gobreaker"
)

// BreakerTranslator wraps a Translator with a circuit breaker so a dead
// backend fails fast instead of stalling every remaining entry in a pass.
type BreakerTranslator struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps the given translator. The circuit opens after
// five consecutive failures and half-opens after the default timeout.
func NewBreakerTranslator(inner Translator) *BreakerTranslator {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "translation-provider",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &BreakerTranslator{
		inner: inner,
		cb:    cb,
	}
}

// Translate delegates through the breaker. An open circuit surfaces as a
// provider Error for the text, which the pass converts to a placeholder.
func (t *BreakerTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	result, err := t.cb.Execute(func() (interface{}, error) {
		return t.inner.Translate(ctx, text, sourceLang, targetLang)
	})
	if err != nil {
		if _, ok := err.(*Error); ok {
			return "", err
		}
		return "", &Error{Text: text, Cause: err}
	}
	return result.(string), nil
}
