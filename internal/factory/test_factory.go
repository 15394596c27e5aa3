package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/Rishivarshney100/kuchbhi/internal/dependencies/mocks"
	"github.com/Rishivarshney100/kuchbhi/internal/services/generator"
	"github.com/Rishivarshney100/kuchbhi/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MockScheduler *mocks.MockScheduler
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The generator runs keyless, so games always play the built-in content.
func NewTestApp() *TestApp {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockScheduler := mocks.NewMockScheduler()
	gen := generator.New(generator.Config{}, logger)

	app := newWithDependencies(store, mockClock, mockRandom, mockScheduler, gen, "http://localhost:8080", logger)

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MockScheduler: mockScheduler,
	}
}
