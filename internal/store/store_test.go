package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kdfca/academy/internal/dependencies/mocks"
	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/storage/memory"
	"github.com/kdfca/academy/internal/testutil"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// failingGateway wraps a memory gateway and fails Save while failing is set
type failingGateway struct {
	*memory.Storage

	mu      sync.Mutex
	failing bool
}

var errDiskFull = errors.New("disk full")

func (g *failingGateway) setFailing(v bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failing = v
}

func (g *failingGateway) Save(ctx context.Context, namespace string, blob []byte) error {
	g.mu.Lock()
	failing := g.failing
	g.mu.Unlock()
	if failing {
		return errDiskFull
	}
	return g.Storage.Save(ctx, namespace, blob)
}

type StoreSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *mocks.MockClock
	gateway *failingGateway
	store   *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = mocks.NewMockClock(epoch)
	s.gateway = &failingGateway{Storage: memory.New()}
	s.store = s.open()
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close(s.ctx))
}

func (s *StoreSuite) open() *Store {
	st, err := New(s.ctx, s.gateway, s.clock, DefaultConfig(), testutil.NopLogger())
	s.Require().NoError(err)
	return st
}

// reopen flushes and closes the current store, then rehydrates a new one from the same gateway
func (s *StoreSuite) reopen() *Store {
	s.Require().NoError(s.store.Close(s.ctx))
	s.store = s.open()
	return s.store
}

func player(id model.RecordID, name string) model.PlayerRegistration {
	return model.PlayerRegistration{
		ID:         id,
		Name:       name,
		Age:        16,
		Position:   model.PositionForward,
		Experience: 3,
		Phone:      "555-0100",
		Email:      "jane@example.com",
		Status:     model.StatusPending,
	}
}

func coach(id model.RecordID) model.CoachApplication {
	return model.CoachApplication{
		ID:             id,
		Name:           "Kassa Degefa",
		Specialization: model.SpecializationYouth,
		Experience:     20,
		Certifications: model.CertificationUEFAPro,
		Phone:          "555-0199",
		Email:          "kassa@kdfca.org",
		Status:         model.StatusPending,
	}
}

func (s *StoreSuite) TestFreshStoreHasDefaults() {
	for _, c := range []model.CollectionStatus{
		s.store.Registrations().Status,
		s.store.Coaches().Status,
		s.store.Users().Status,
		s.store.Todos().Status,
	} {
		s.Equal(model.CollectionIdle, c)
	}
	s.Empty(s.store.Registrations().Items)
	s.NotNil(s.store.Registrations().Items)
	s.Equal(0, s.store.Counter())
}

func (s *StoreSuite) TestAddRegistrationPreservesOrder() {
	s.store.AddRegistration(player(1, "Jane Doe"))
	s.store.AddRegistration(player(2, "John Roe"))
	s.store.AddRegistration(player(3, "Abebe Bikila"))

	items := s.store.Registrations().Items
	s.Require().Len(items, 3)
	s.Equal([]string{"Jane Doe", "John Roe", "Abebe Bikila"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func (s *StoreSuite) TestReadsDoNotAlias() {
	s.store.AddRegistration(player(1, "Jane Doe"))

	snapshot := s.store.Registrations()
	snapshot.Items[0].Name = "Mallory"

	s.Equal("Jane Doe", s.store.Registrations().Items[0].Name)
}

func (s *StoreSuite) TestUpdateStatus() {
	s.store.AddRegistration(player(1, "Jane Doe"))
	s.store.AddRegistration(player(2, "John Roe"))

	s.Require().NoError(s.store.UpdateStatus(model.KindRegistrations, 1, model.StatusAccepted))

	items := s.store.Registrations().Items
	s.Equal(model.StatusAccepted, items[0].Status)
	s.Equal(model.StatusPending, items[1].Status)
}

func (s *StoreSuite) TestUpdateStatusIsIdempotent() {
	s.store.AddCoach(coach(7))

	s.Require().NoError(s.store.UpdateStatus(model.KindCoaches, 7, model.StatusRejected))
	once := s.store.Coaches()
	s.Require().NoError(s.store.UpdateStatus(model.KindCoaches, 7, model.StatusRejected))

	s.Equal(once, s.store.Coaches())
}

func (s *StoreSuite) TestUpdateStatusUnknownIDIsNoOp() {
	s.store.AddRegistration(player(1, "Jane Doe"))
	before := s.store.Registrations()

	s.NoError(s.store.UpdateStatus(model.KindRegistrations, 999, model.StatusAccepted))
	s.Equal(before, s.store.Registrations())
}

func (s *StoreSuite) TestUpdateStatusRejectsBadInput() {
	s.ErrorIs(s.store.UpdateStatus(model.KindRegistrations, 1, "archived"), model.ErrInvalidStatus)
	s.ErrorIs(s.store.UpdateStatus(model.KindTodo, 1, model.StatusAccepted), model.ErrUnknownCollection)
}

func (s *StoreSuite) TestTodoScenario() {
	item, ok := s.store.AddTodo("Buy cleats")
	s.Require().True(ok)
	s.Equal("Buy cleats", item.Text)
	s.False(item.Completed)

	s.store.ToggleTodo(item.ID)
	s.True(s.store.Todos().Items[0].Completed)

	s.store.RemoveTodo(item.ID)
	s.Empty(s.store.Todos().Items)
}

func (s *StoreSuite) TestAddTodoRejectsBlankText() {
	_, ok := s.store.AddTodo("   ")
	s.False(ok)
	s.Empty(s.store.Todos().Items)

	item, ok := s.store.AddTodo("  Pump the balls ")
	s.True(ok)
	s.Equal("Pump the balls", item.Text)
}

func (s *StoreSuite) TestClearTodos() {
	s.store.AddTodo("one")
	s.store.AddTodo("two")
	s.store.ClearTodos()
	s.Empty(s.store.Todos().Items)
}

func (s *StoreSuite) TestRemoveTodoKeepsOthersInOrder() {
	a, _ := s.store.AddTodo("a")
	b, _ := s.store.AddTodo("b")
	c, _ := s.store.AddTodo("c")

	s.store.RemoveTodo(b.ID)
	s.store.RemoveTodo(12345)

	items := s.store.Todos().Items
	s.Require().Len(items, 2)
	s.Equal(a.ID, items[0].ID)
	s.Equal(c.ID, items[1].ID)
}

func (s *StoreSuite) TestCounter() {
	s.Equal(1, s.store.Increment())
	s.Equal(2, s.store.Increment())
	s.Equal(1, s.store.Decrement())
	s.Equal(0, s.store.Reset())
	s.Equal(-1, s.store.Decrement())
	s.Equal(-1, s.store.Counter())
}

func (s *StoreSuite) TestIDsStrictlyIncreaseOnStalledClock() {
	first := s.store.NextID()
	second := s.store.NextID()

	s.Equal(model.RecordID(epoch.UnixMilli()), first)
	s.Equal(first+1, second)

	s.clock.Advance(time.Second)
	s.Equal(model.RecordID(epoch.Add(time.Second).UnixMilli()), s.store.NextID())
}

func (s *StoreSuite) TestIDsSkipObservedRecords() {
	future := model.RecordID(epoch.Add(time.Hour).UnixMilli())
	s.store.AddRegistration(player(future, "Jane Doe"))

	s.Equal(future+1, s.store.NextID())
}

func (s *StoreSuite) TestLoadingAndErrorTransitions() {
	s.Require().NoError(s.store.SetLoading(model.KindAuth, true))
	s.Equal(model.CollectionLoading, s.store.Users().Status)

	s.Require().NoError(s.store.SetError(model.KindAuth, "signup failed"))
	users := s.store.Users()
	s.Equal(model.CollectionError, users.Status)
	s.Equal("signup failed", users.Error)

	// A new load keeps the old error until it settles
	s.Require().NoError(s.store.SetLoading(model.KindAuth, true))
	s.Require().NoError(s.store.SetLoading(model.KindAuth, false))
	s.Equal(model.CollectionError, s.store.Users().Status)

	s.Require().NoError(s.store.ClearError(model.KindAuth))
	users = s.store.Users()
	s.Equal(model.CollectionIdle, users.Status)
	s.Empty(users.Error)
}

func (s *StoreSuite) TestAddUserSettlesAuth() {
	s.Require().NoError(s.store.SetError(model.KindAuth, "earlier failure"))
	s.Require().NoError(s.store.SetLoading(model.KindAuth, true))

	s.store.AddUser(model.UserAccount{ID: 1, Firstname: "Abebe", Lastname: "Bikila", Email: "abebe@example.com"})

	users := s.store.Users()
	s.Len(users.Items, 1)
	s.Equal(model.CollectionIdle, users.Status)
	s.Empty(users.Error)
}

func (s *StoreSuite) TestStatusOnCounterRejected() {
	s.ErrorIs(s.store.SetLoading(model.KindCounter, true), model.ErrUnknownCollection)
	s.ErrorIs(s.store.SetError("players", "x"), model.ErrUnknownCollection)
}

func (s *StoreSuite) TestRehydrateRoundTrip() {
	s.store.AddRegistration(player(1, "Jane Doe"))
	s.Require().NoError(s.store.UpdateStatus(model.KindRegistrations, 1, model.StatusAccepted))
	s.store.AddCoach(coach(2))
	s.store.AddUser(model.UserAccount{ID: 3, Firstname: "Abebe", Lastname: "Bikila", Email: "abebe@example.com", PasswordStrength: 5})
	s.store.AddTodo("Buy cleats")
	s.store.Increment()
	s.Require().NoError(s.store.SetLoading(model.KindRegistrations, true))
	s.Require().NoError(s.store.SetError(model.KindCoaches, "boom"))

	want := struct {
		regs  []model.PlayerRegistration
		coach []model.CoachApplication
		users []model.UserAccount
		todos []model.TodoItem
	}{s.store.Registrations().Items, s.store.Coaches().Items, s.store.Users().Items, s.store.Todos().Items}

	st := s.reopen()

	s.Equal(want.regs, st.Registrations().Items)
	s.Equal(want.coach, st.Coaches().Items)
	s.Equal(want.users, st.Users().Items)
	s.Equal(want.todos, st.Todos().Items)
	s.Equal(1, st.Counter())

	// Transient fields come back at their defaults
	s.Equal(model.CollectionIdle, st.Registrations().Status)
	s.Equal(model.CollectionIdle, st.Coaches().Status)
	s.Empty(st.Coaches().Error)
}

func (s *StoreSuite) TestRehydratedIDsStayUnique() {
	item, _ := s.store.AddTodo("first")
	st := s.reopen()

	s.Greater(st.NextID(), item.ID)
}

func (s *StoreSuite) TestSnapshotFormat() {
	s.store.AddTodo("Buy cleats")
	s.Require().NoError(s.store.Flush(s.ctx))

	blob, err := s.gateway.Load(s.ctx, "todo")
	s.Require().NoError(err)
	s.JSONEq(`{"version":1,"items":[{"id":1735732800000,"text":"Buy cleats","completed":false}]}`, string(blob))

	s.store.Increment()
	s.Require().NoError(s.store.Flush(s.ctx))

	blob, err = s.gateway.Load(s.ctx, "counter")
	s.Require().NoError(err)
	s.JSONEq(`{"version":1,"value":1}`, string(blob))
}

func (s *StoreSuite) TestUnknownVersionIgnored() {
	s.Require().NoError(s.gateway.Storage.Save(s.ctx, "registrations", []byte(`{"version":2,"items":[{"id":1,"name":"Jane Doe"}]}`)))
	s.Require().NoError(s.gateway.Storage.Save(s.ctx, "coaches", []byte(`not json`)))

	logger, logs := testutil.BufferLogger()
	st, err := New(s.ctx, s.gateway, s.clock, DefaultConfig(), logger)
	s.Require().NoError(err)
	defer func() { s.NoError(st.Close(s.ctx)) }()

	s.Empty(st.Registrations().Items)
	s.Empty(st.Coaches().Items)
	s.Contains(logs.String(), "ignoring unreadable snapshot")
	s.Contains(logs.String(), `"collection":"registrations"`)
	s.Contains(logs.String(), `"collection":"coaches"`)
}

func (s *StoreSuite) TestPersistFailureKeepsMemoryState() {
	s.gateway.setFailing(true)

	s.store.AddRegistration(player(1, "Jane Doe"))
	err := s.store.Flush(s.ctx)
	s.ErrorIs(err, errDiskFull)

	s.Len(s.store.Registrations().Items, 1)

	// The failed snapshot is retried on the next flush
	s.gateway.setFailing(false)
	s.Require().NoError(s.store.Flush(s.ctx))

	_, err = s.gateway.Load(s.ctx, "registrations")
	s.NoError(err)
}

func (s *StoreSuite) TestPurge() {
	s.store.AddRegistration(player(1, "Jane Doe"))
	s.store.AddTodo("Buy cleats")
	s.store.Increment()
	s.Require().NoError(s.store.Flush(s.ctx))

	s.Require().NoError(s.store.Purge(s.ctx))

	s.Empty(s.store.Registrations().Items)
	s.Empty(s.store.Todos().Items)
	s.Equal(0, s.store.Counter())

	for _, kind := range model.CollectionKinds {
		_, err := s.gateway.Load(s.ctx, string(kind))
		s.ErrorIs(err, model.ErrSnapshotNotFound, kind)
	}
}

func (s *StoreSuite) TestCloseFlushesPending() {
	s.store.AddCoach(coach(9))
	s.Require().NoError(s.store.Close(s.ctx))

	_, err := s.gateway.Load(s.ctx, "coaches")
	s.NoError(err)

	s.ErrorIs(s.store.Purge(s.ctx), model.ErrStoreClosed)
	s.NoError(s.store.Close(s.ctx))
}

func (s *StoreSuite) TestConcurrentMutations() {
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.store.AddTodo("drill")
			s.store.Increment()
		}()
	}
	wg.Wait()

	s.Len(s.store.Todos().Items, 50)
	s.Equal(50, s.store.Counter())

	st := s.reopen()
	s.Len(st.Todos().Items, 50)
	s.Equal(50, st.Counter())
}
