package review

import (
	"github.com/paiphyo4f20/Subtitles/internal/memory"
	"github.com/paiphyo4f20/Subtitles/internal/subtitle"
)

// Action is an operator instruction to the review session.
type Action int

const (
	ActionAccept Action = iota
	ActionEdit
	ActionSkip
	ActionBack
	ActionFinish
)

// Input is one operator step. Text is only meaningful for ActionEdit.
type Input struct {
	Action Action
	Text   string
}

// Session walks the non-structural entries of a document and applies
// operator decisions. Edits mutate the entry in place and write through
// to the translation memory. The memory is saved exactly once, when the
// session terminates: either the cursor runs past the last entry or the
// operator finishes explicitly.
type Session struct {
	entries    []subtitle.Entry
	store      *memory.Store
	reviewable []int // indices of non-structural entries, in document order
	cursor     int   // position within reviewable, clamped to [0, len]
	done       bool
	saved      bool
}

// NewSession creates a session over the document entries. Structural
// entries are never presented. A document with nothing to review starts
// terminated, with the memory saved.
func NewSession(entries []subtitle.Entry, store *memory.Store) (*Session, error) {
	s := &Session{
		entries: entries,
		store:   store,
	}

	for i, entry := range entries {
		if !entry.IsStructural() {
			s.reviewable = append(s.reviewable, i)
		}
	}

	if len(s.reviewable) == 0 {
		if err := s.terminate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Done reports whether the session has terminated.
func (s *Session) Done() bool {
	return s.done
}

// Current returns the entry under the cursor, or nil once done.
func (s *Session) Current() *subtitle.Entry {
	if s.done {
		return nil
	}
	return &s.entries[s.reviewable[s.cursor]]
}

// Position returns the 1-based cursor position and the reviewable count.
func (s *Session) Position() (int, int) {
	return s.cursor + 1, len(s.reviewable)
}

// Apply runs one transition. The returned error only ever comes from
// persisting the memory at termination; the in-memory state is valid
// either way.
func (s *Session) Apply(input Input) error {
	if s.done {
		return nil
	}

	switch input.Action {
	case ActionEdit:
		if input.Text != "" {
			entry := s.Current()
			entry.TranslatedText = input.Text
			s.store.Put(entry.Text, input.Text)
		}
		s.cursor++
	case ActionBack:
		if s.cursor > 0 {
			s.cursor--
		}
	case ActionFinish:
		return s.terminate()
	default: // Accept and Skip both just advance
		s.cursor++
	}

	if s.cursor >= len(s.reviewable) {
		return s.terminate()
	}

	return nil
}

func (s *Session) terminate() error {
	s.done = true
	if s.saved {
		return nil
	}
	s.saved = true
	return s.store.Save()
}
