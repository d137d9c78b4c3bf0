// Package resource keeps a screen's list of server records in step with
// the backend. The list only changes after the server confirms a call.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/craftstore/internal/logging"
)

var (
	ErrUpdateTargetNotFound = errors.New("updated record not in list")
	ErrClosed               = errors.New("synchronizer closed")
	ErrReadOnly             = errors.New("resource is read-only")
)

// Endpoint is the remote collection behind a Synchronizer.
type Endpoint[R Identifiable, D any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, d D) (R, error)
	Update(ctx context.Context, id int64, d D) (R, error)
	Delete(ctx context.Context, id int64) error
}

// Synchronizer owns the State of one screen. It is safe for concurrent use;
// when calls overlap the last response to arrive wins.
type Synchronizer[R Identifiable, D any] struct {
	name     string
	endpoint Endpoint[R, D]
	editable func(R) D
	logger   logging.Logger

	mu      sync.Mutex
	state   State[R, D]
	closed  bool
	subs    map[int]func(State[R, D])
	nextSub int
}

// New returns a Synchronizer in Creating mode with an empty list.
// editable projects a record onto the form for BeginEdit.
func New[R Identifiable, D any](name string, ep Endpoint[R, D], editable func(R) D, logger logging.Logger) *Synchronizer[R, D] {
	return &Synchronizer[R, D]{
		name:     name,
		endpoint: ep,
		editable: editable,
		logger:   logger.With("resource", name),
		subs:     make(map[int]func(State[R, D])),
	}
}

func (s *Synchronizer[R, D]) Name() string { return s.name }

// Snapshot returns a copy of the current state.
func (s *Synchronizer[R, D]) Snapshot() State[R, D] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn to be called with a snapshot after every change.
func (s *Synchronizer[R, D]) Subscribe(fn func(State[R, D])) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close detaches the synchronizer from its screen. Responses that arrive
// afterwards are dropped. In-flight requests are not cancelled.
func (s *Synchronizer[R, D]) Close() {
	s.mu.Lock()
	s.closed = true
	s.subs = make(map[int]func(State[R, D]))
	s.mu.Unlock()
}

// mutate applies fn under the lock unless the synchronizer is closed, then
// notifies subscribers.
func (s *Synchronizer[R, D]) mutate(ctx context.Context, op string, fn func(st *State[R, D]) error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.logger.Debug(ctx, "late response dropped", "op", op)
		return ErrClosed
	}
	err := fn(&s.state)
	snap := s.state.clone()
	subs := make([]func(State[R, D]), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return err
}

// LoadAll replaces the list with the server's. On failure the list is
// left as it was.
func (s *Synchronizer[R, D]) LoadAll(ctx context.Context) error {
	if err := s.mutate(ctx, "load", func(st *State[R, D]) error {
		st.Loading = true
		return nil
	}); err != nil {
		return err
	}

	items, err := s.endpoint.List(ctx)

	mErr := s.mutate(ctx, "load", func(st *State[R, D]) error {
		st.Loading = false
		if err == nil {
			st.Items = items
		}
		return nil
	})
	if err != nil {
		s.logger.Warn(ctx, "load failed", "err", err)
		return fmt.Errorf("load %s: %w", s.name, err)
	}
	if mErr != nil {
		return mErr
	}
	s.logger.Debug(ctx, "loaded", "count", len(items))
	return nil
}

// Create sends d and appends the server's record.
func (s *Synchronizer[R, D]) Create(ctx context.Context, d D) (R, error) {
	var zero R
	if v, ok := any(d).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}

	created, err := s.endpoint.Create(ctx, d)
	if err != nil {
		s.logger.Warn(ctx, "create failed", "err", err)
		return zero, fmt.Errorf("create %s: %w", s.name, err)
	}

	err = s.mutate(ctx, "create", func(st *State[R, D]) error {
		st.Items = append(st.Items, created)
		st.reset()
		return nil
	})
	return created, err
}

// Update sends d for id. The element whose id matches the response is
// replaced in place; when there is none the list is kept and
// ErrUpdateTargetNotFound is returned.
func (s *Synchronizer[R, D]) Update(ctx context.Context, id int64, d D) (R, error) {
	var zero R
	updated, err := s.endpoint.Update(ctx, id, d)
	if err != nil {
		s.logger.Warn(ctx, "update failed", "id", id, "err", err)
		return zero, fmt.Errorf("update %s %d: %w", s.name, id, err)
	}

	err = s.mutate(ctx, "update", func(st *State[R, D]) error {
		st.reset()
		for i := range st.Items {
			if st.Items[i].GetID() == updated.GetID() {
				st.Items[i] = updated
				return nil
			}
		}
		return ErrUpdateTargetNotFound
	})
	if errors.Is(err, ErrUpdateTargetNotFound) {
		s.logger.Warn(ctx, "updated record not in list", "id", updated.GetID())
	}
	return updated, err
}

// Delete removes id on the server and then from the list.
func (s *Synchronizer[R, D]) Delete(ctx context.Context, id int64) error {
	if err := s.endpoint.Delete(ctx, id); err != nil {
		s.logger.Warn(ctx, "delete failed", "id", id, "err", err)
		return fmt.Errorf("delete %s %d: %w", s.name, id, err)
	}

	return s.mutate(ctx, "delete", func(st *State[R, D]) error {
		kept := make([]R, 0, len(st.Items))
		for _, it := range st.Items {
			if it.GetID() != id {
				kept = append(kept, it)
			}
		}
		st.Items = kept
		if st.Selected != nil && (*st.Selected).GetID() == id {
			st.reset()
		}
		return nil
	})
}

// BeginEdit switches to Editing with the form filled from target.
func (s *Synchronizer[R, D]) BeginEdit(target R) {
	_ = s.mutate(context.Background(), "edit", func(st *State[R, D]) error {
		st.Mode = Editing
		st.Selected = &target
		st.Form = s.editable(target)
		return nil
	})
}

// CancelEdit goes back to Creating with an empty form.
func (s *Synchronizer[R, D]) CancelEdit() {
	_ = s.mutate(context.Background(), "cancel", func(st *State[R, D]) error {
		st.reset()
		return nil
	})
}

// SetForm replaces the form contents.
func (s *Synchronizer[R, D]) SetForm(d D) {
	_ = s.mutate(context.Background(), "form", func(st *State[R, D]) error {
		st.Form = d
		return nil
	})
}

// Submit creates or updates from the current form depending on the mode.
func (s *Synchronizer[R, D]) Submit(ctx context.Context) (R, error) {
	snap := s.Snapshot()
	if snap.Mode == Editing && snap.Selected != nil {
		return s.Update(ctx, (*snap.Selected).GetID(), snap.Form)
	}
	return s.Create(ctx, snap.Form)
}
