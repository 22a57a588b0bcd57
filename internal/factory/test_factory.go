package factory

import (
	"time"

	"github.com/SK1028846/fantasy-football-pipeline/internal/dependencies/mocks"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/auth"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/grading"
	"github.com/SK1028846/fantasy-football-pipeline/internal/storage/memory"
	"github.com/SK1028846/fantasy-football-pipeline/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIdent *mocks.MockGenerator
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIdent := mocks.NewMockGenerator()
	grader := grading.NewStaticGrader(grading.DefaultGrade)

	app := newWithDependencies(store, mockClock, mockIdent, grader, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIdent: mockIdent,
	}
}
