package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/kdfca/academy/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndLoad() {
	blob := []byte(`{"version":1,"items":[]}`)

	err := s.storage.Save(s.ctx, "registrations", blob)
	s.Require().NoError(err)

	loaded, err := s.storage.Load(s.ctx, "registrations")
	s.Require().NoError(err)
	s.Equal(blob, loaded)
}

func (s *StorageSuite) TestKeyLayout() {
	_ = s.storage.Save(s.ctx, "coaches", []byte("x"))

	s.True(s.mini.Exists("kdfca:persist:coaches"))
	got, err := s.mini.Get("kdfca:persist:coaches")
	s.Require().NoError(err)
	s.Equal("x", got)
}

func (s *StorageSuite) TestLoadNotFound() {
	_, err := s.storage.Load(s.ctx, "todo")
	s.ErrorIs(err, model.ErrSnapshotNotFound)
}

func (s *StorageSuite) TestDelete() {
	_ = s.storage.Save(s.ctx, "auth", []byte("x"))

	s.Require().NoError(s.storage.Delete(s.ctx, "auth"))
	_, err := s.storage.Load(s.ctx, "auth")
	s.ErrorIs(err, model.ErrSnapshotNotFound)
}

func (s *StorageSuite) TestNoTTLByDefault() {
	_ = s.storage.Save(s.ctx, "counter", []byte("3"))
	s.Equal(time.Duration(0), s.mini.TTL(snapshotKey("kdfca", "counter")))
}

func (s *StorageSuite) TestSnapshotTTL() {
	cfg := DefaultConfig()
	cfg.SnapshotTTL = time.Hour
	cfg.KeyPrefix = "test"
	st := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer st.Close()

	_ = st.Save(s.ctx, "counter", []byte("3"))
	s.True(s.mini.TTL(snapshotKey("test", "counter")) > 0, "snapshot should have TTL")
}

func (s *StorageSuite) TestNewParsesURL() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()

	st, err := New(cfg)
	s.Require().NoError(err)
	defer st.Close()

	s.Require().NoError(st.Save(s.ctx, "todo", []byte("[]")))
	loaded, err := s.storage.Load(s.ctx, "todo")
	s.Require().NoError(err)
	s.Equal("[]", string(loaded))
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url"
	_, err := New(cfg)
	s.Error(err)
}
