// Package store holds the academy's application state: player registrations,
// coach applications, user accounts, todos and the counter.
//
// Every mutation is applied in memory first and then handed to a background
// persister, so callers never wait on storage I/O and a failed write never
// rolls back in-memory state.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/kdfca/academy/internal/dependencies/clock"
	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/storage"
)

// Config tunes the store's persistence
type Config struct {
	// WriteTimeout bounds each background snapshot write. 0 means no bound.
	WriteTimeout time.Duration
}

// DefaultConfig returns the default store configuration
func DefaultConfig() Config {
	return Config{WriteTimeout: 5 * time.Second}
}

// Store is the single source of truth for application state. It is safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	registrations model.Collection[model.PlayerRegistration]
	coaches       model.Collection[model.CoachApplication]
	auth          model.Collection[model.UserAccount]
	todos         model.Collection[model.TodoItem]
	counter       int
	closed        bool

	ids       *IDAllocator
	persister *persister
	logger    *slog.Logger
}

// New creates a store and rehydrates it from gateway.
// A missing or unreadable snapshot leaves that collection at its defaults;
// only a gateway I/O failure is returned as an error.
func New(ctx context.Context, gateway storage.Gateway, clk clock.Clock, cfg Config, logger *slog.Logger) (*Store, error) {
	s := &Store{
		registrations: model.NewCollection[model.PlayerRegistration](),
		coaches:       model.NewCollection[model.CoachApplication](),
		auth:          model.NewCollection[model.UserAccount](),
		todos:         model.NewCollection[model.TodoItem](),
		ids:           NewIDAllocator(clk),
		logger:        logger,
	}

	for _, kind := range model.CollectionKinds {
		blob, err := gateway.Load(ctx, string(kind))
		if errors.Is(err, model.ErrSnapshotNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("rehydrate %s: %w", kind, err)
		}
		if err := s.restore(kind, blob); err != nil {
			logger.Warn("ignoring unreadable snapshot", "collection", kind, "error", err)
			continue
		}
		logger.Debug("collection rehydrated", "collection", kind)
	}

	s.persister = newPersister(gateway, cfg.WriteTimeout, logger)
	return s, nil
}

// NextID allocates a record ID unique across every collection
func (s *Store) NextID() model.RecordID {
	return s.ids.Next()
}

// AddRegistration appends a player registration as given
func (s *Store) AddRegistration(r model.PlayerRegistration) {
	s.ids.Observe(r.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.registrations.Items = append(s.registrations.Items, r)
	s.persistLocked(model.KindRegistrations)
}

// AddCoach appends a coach application as given
func (s *Store) AddCoach(c model.CoachApplication) {
	s.ids.Observe(c.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.coaches.Items = append(s.coaches.Items, c)
	s.persistLocked(model.KindCoaches)
}

// AddUser appends a signed-up account and settles the auth collection:
// loading ends and any previous error is cleared.
func (s *Store) AddUser(u model.UserAccount) {
	s.ids.Observe(u.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth.Items = append(s.auth.Items, u)
	s.auth.Status = model.CollectionIdle
	s.auth.Error = ""
	s.persistLocked(model.KindAuth)
}

// UpdateStatus sets the review status of a registration or coach application.
// An unknown id leaves the store unchanged and is not an error.
func (s *Store) UpdateStatus(kind model.CollectionKind, id model.RecordID, status model.RecordStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case model.KindRegistrations:
		i := indexOf(s.registrations.Items, id, func(r model.PlayerRegistration) model.RecordID { return r.ID })
		if i < 0 || s.registrations.Items[i].Status == status {
			return nil
		}
		s.registrations.Items[i].Status = status
	case model.KindCoaches:
		i := indexOf(s.coaches.Items, id, func(c model.CoachApplication) model.RecordID { return c.ID })
		if i < 0 || s.coaches.Items[i].Status == status {
			return nil
		}
		s.coaches.Items[i].Status = status
	default:
		return fmt.Errorf("%w: %s has no reviewable records", model.ErrUnknownCollection, kind)
	}

	s.persistLocked(kind)
	return nil
}

// AddTodo appends a todo with the given text, trimmed.
// Blank text is ignored and reported by the false return.
func (s *Store) AddTodo(text string) (model.TodoItem, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.TodoItem{}, false
	}

	item := model.TodoItem{ID: s.ids.Next(), Text: text}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos.Items = append(s.todos.Items, item)
	s.persistLocked(model.KindTodo)
	return item, true
}

// ToggleTodo flips a todo's completion flag. An unknown id is ignored.
func (s *Store) ToggleTodo(id model.RecordID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.todos.Items, id, todoID)
	if i < 0 {
		return
	}
	s.todos.Items[i].Completed = !s.todos.Items[i].Completed
	s.persistLocked(model.KindTodo)
}

// RemoveTodo deletes a todo. An unknown id is ignored.
func (s *Store) RemoveTodo(id model.RecordID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.todos.Items, id, todoID)
	if i < 0 {
		return
	}
	s.todos.Items = append(s.todos.Items[:i:i], s.todos.Items[i+1:]...)
	s.persistLocked(model.KindTodo)
}

// ClearTodos removes every todo
func (s *Store) ClearTodos() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos.Items = []model.TodoItem{}
	s.persistLocked(model.KindTodo)
}

// Increment adds one to the counter and returns the new value
func (s *Store) Increment() int {
	return s.setCounter(func(n int) int { return n + 1 })
}

// Decrement subtracts one from the counter and returns the new value
func (s *Store) Decrement() int {
	return s.setCounter(func(n int) int { return n - 1 })
}

// Reset sets the counter back to zero
func (s *Store) Reset() int {
	return s.setCounter(func(int) int { return 0 })
}

func (s *Store) setCounter(next func(int) int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter = next(s.counter)
	s.persistLocked(model.KindCounter)
	return s.counter
}

// SetLoading marks a collection as loading or not.
// Ending a load returns the collection to error if it carries one, otherwise idle.
func (s *Store) SetLoading(kind model.CollectionKind, loading bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, msg, err := s.metaLocked(kind)
	if err != nil {
		return err
	}
	switch {
	case loading:
		*status = model.CollectionLoading
	case *msg != "":
		*status = model.CollectionError
	default:
		*status = model.CollectionIdle
	}
	return nil
}

// SetError records an error on a collection and ends any load in progress.
// An empty message clears the error.
func (s *Store) SetError(kind model.CollectionKind, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, msg, err := s.metaLocked(kind)
	if err != nil {
		return err
	}
	*msg = message
	if message == "" {
		*status = model.CollectionIdle
	} else {
		*status = model.CollectionError
	}
	return nil
}

// ClearError removes a collection's error without touching a load in progress
func (s *Store) ClearError(kind model.CollectionKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, msg, err := s.metaLocked(kind)
	if err != nil {
		return err
	}
	*msg = ""
	if *status == model.CollectionError {
		*status = model.CollectionIdle
	}
	return nil
}

// metaLocked returns the transient status fields of a collection.
// Status changes are not persisted.
func (s *Store) metaLocked(kind model.CollectionKind) (*model.CollectionStatus, *string, error) {
	switch kind {
	case model.KindRegistrations:
		return &s.registrations.Status, &s.registrations.Error, nil
	case model.KindCoaches:
		return &s.coaches.Status, &s.coaches.Error, nil
	case model.KindAuth:
		return &s.auth.Status, &s.auth.Error, nil
	case model.KindTodo:
		return &s.todos.Status, &s.todos.Error, nil
	}
	return nil, nil, fmt.Errorf("%w: %s has no status", model.ErrUnknownCollection, kind)
}

// Registrations returns a copy of the registrations collection
func (s *Store) Registrations() model.Collection[model.PlayerRegistration] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registrations.Clone()
}

// Coaches returns a copy of the coach applications collection
func (s *Store) Coaches() model.Collection[model.CoachApplication] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coaches.Clone()
}

// Users returns a copy of the auth collection
func (s *Store) Users() model.Collection[model.UserAccount] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth.Clone()
}

// Todos returns a copy of the todo collection
func (s *Store) Todos() model.Collection[model.TodoItem] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.todos.Clone()
}

// Counter returns the counter value
func (s *Store) Counter() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counter
}

// Flush writes every pending snapshot and waits for the writes to finish
func (s *Store) Flush(ctx context.Context) error {
	return s.persister.drain(ctx)
}

// Purge resets every collection to its defaults and deletes the persisted snapshots
func (s *Store) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.ErrStoreClosed
	}

	s.registrations = model.NewCollection[model.PlayerRegistration]()
	s.coaches = model.NewCollection[model.CoachApplication]()
	s.auth = model.NewCollection[model.UserAccount]()
	s.todos = model.NewCollection[model.TodoItem]()
	s.counter = 0

	namespaces := make([]string, len(model.CollectionKinds))
	for i, kind := range model.CollectionKinds {
		namespaces[i] = string(kind)
	}
	if err := s.persister.purge(ctx, namespaces); err != nil {
		return err
	}
	s.logger.Info("store purged")
	return nil
}

// Close stops background persistence after writing everything still pending.
// Mutations after Close apply in memory only.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	return s.persister.close(ctx)
}

// persistLocked queues the current snapshot of kind. Callers must hold s.mu
// so snapshots of one namespace are queued in mutation order.
func (s *Store) persistLocked(kind model.CollectionKind) {
	blob, err := s.encodeLocked(kind)
	if err != nil {
		s.logger.Error("encode snapshot", "collection", kind, "error", err)
		return
	}
	s.persister.enqueue(string(kind), blob)
}

func indexOf[T any](items []T, id model.RecordID, idOf func(T) model.RecordID) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func todoID(t model.TodoItem) model.RecordID { return t.ID }
