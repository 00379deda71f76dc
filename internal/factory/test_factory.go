package factory

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kdfca/academy/internal/dependencies/mocks"
	"github.com/kdfca/academy/internal/services/account"
	"github.com/kdfca/academy/internal/storage/memory"
	"github.com/kdfca/academy/internal/store"
	"github.com/kdfca/academy/internal/testutil"
	"github.com/kdfca/academy/internal/validation"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithPolicy(validation.DefaultPolicy())
}

// NewTestAppWithPolicy creates a test App using the given validation policy
func NewTestAppWithPolicy(policy validation.Policy) *TestApp {
	gateway := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(
		context.Background(),
		gateway,
		mockClock,
		store.DefaultConfig(),
		policy,
		account.Config{BcryptCost: bcrypt.MinCost},
		testutil.NopLogger(),
	)
	if err != nil {
		// An empty memory gateway cannot fail to load
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    gateway,
	}
}
