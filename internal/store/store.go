package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
)

// ErrStaleResponse is returned by Refresh when its fetch resolved after a
// newer refresh had already been issued. The stale result is discarded.
var ErrStaleResponse = errors.New("stale fetch response discarded")

// Moderatable is the contract shared by reports and notifications: an
// identifiable item carrying an unread flag and a tri-state verification
// status.
type Moderatable interface {
	ItemID() int
	IsUnread() bool
	SetUnread(bool)
	Status() model.VerificationStatus
	SetStatus(model.VerificationStatus)
}

type ptr[T any] interface {
	*T
	Moderatable
}

// Store is the single source of truth for one moderatable collection. All
// verification and read-state transitions go through it. Mutations are
// atomic under an internal mutex; selectors operate on the current state.
//
// Any status is reachable from any status via the three moderation actions.
// This is a moderation tool, not a strict workflow, so no transition is
// ever rejected. Unknown ids are silent no-ops.
type Store[T any, P ptr[T]] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	err     string
	seq     uint64 // tag of the most recently issued refresh

	// onChange runs under the write lock after every item mutation.
	onChange func(items []T)
}

func New[T any, P ptr[T]]() *Store[T, P] {
	return &Store[T, P]{}
}

// SetOnChange registers a hook invoked (under the store lock) after every
// mutation that touches items, including Replace and a successful Refresh.
func (s *Store[T, P]) SetOnChange(fn func(items []T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Items returns a copy of the collection.
func (s *Store[T, P]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given id.
func (s *Store[T, P]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if P(&s.items[i]).ItemID() == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T, P]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the human-readable error of the last failed refresh, or ""
// when the last refresh succeeded.
func (s *Store[T, P]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Replace swaps the entire collection and clears any previous error.
func (s *Store[T, P]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.err = ""
	s.notifyLocked()
}

// Refresh repopulates the collection from fetch. The loading flag is set
// for the duration of the call and the previous error is cleared up front.
// On failure the prior items are left intact and the error message is
// recorded for the view to render a retry affordance.
//
// Each refresh is tagged with a monotonically increasing sequence number.
// A response that resolves after a newer refresh has been issued is
// discarded wholesale (no replacement, no error recording, loading left to
// the newer call) and ErrStaleResponse is returned. Callers may therefore
// overlap refreshes freely; the collection always reflects the most
// recently issued fetch.
func (s *Store[T, P]) Refresh(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	items, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return ErrStaleResponse
	}
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return err
	}
	s.items = items
	s.notifyLocked()
	return nil
}

// MarkAsRead clears the unread flag. Reports whether the id was present.
func (s *Store[T, P]) MarkAsRead(id int) bool {
	return s.mutate(id, func(item P) {
		item.SetUnread(false)
	})
}

// MarkAllAsRead clears the unread flag on every item.
func (s *Store[T, P]) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		P(&s.items[i]).SetUnread(false)
	}
	s.notifyLocked()
}

// MarkAsVerified sets the status to verified and clears the unread flag as
// a combined transition.
func (s *Store[T, P]) MarkAsVerified(id int) bool {
	return s.mutate(id, func(item P) {
		item.SetStatus(model.VerificationVerified)
		item.SetUnread(false)
	})
}

// MarkAsFake sets the status to fake and clears the unread flag.
func (s *Store[T, P]) MarkAsFake(id int) bool {
	return s.mutate(id, func(item P) {
		item.SetStatus(model.VerificationFake)
		item.SetUnread(false)
	})
}

// ResetVerification returns an item to pending and flags it unread again,
// re-surfacing it for triage.
func (s *Store[T, P]) ResetVerification(id int) bool {
	return s.mutate(id, func(item P) {
		item.SetStatus(model.VerificationPending)
		item.SetUnread(true)
	})
}

// WithStatus returns the items currently in the given status.
func (s *Store[T, P]) WithStatus(status model.VerificationStatus) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []T{}
	for i := range s.items {
		if P(&s.items[i]).Status() == status {
			out = append(out, s.items[i])
		}
	}
	return out
}

// Count returns the number of items matching pred.
func (s *Store[T, P]) Count(pred func(P) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for i := range s.items {
		if pred(P(&s.items[i])) {
			n++
		}
	}
	return n
}

func (s *Store[T, P]) mutate(id int, apply func(P)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if P(&s.items[i]).ItemID() == id {
			apply(P(&s.items[i]))
			s.notifyLocked()
			return true
		}
	}
	return false
}

func (s *Store[T, P]) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.items)
	}
}
