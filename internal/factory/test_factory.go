package factory

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/quiplash-go/internal/dependencies/mocks"
	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/services/prompt"
	"github.com/mcoot/quiplash-go/internal/storage/memory"
	"github.com/mcoot/quiplash-go/internal/testutil"
)

// StubTranslator returns a canned localization set without calling out
type StubTranslator struct {
	// Err, if set, is returned from every call
	Err error
	// Languages to localize into; defaults to en and es
	Languages []string
}

// TranslateToAll returns the text tagged with each configured language
func (s *StubTranslator) TranslateToAll(_ context.Context, text string) ([]model.LocalizedText, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	langs := s.Languages
	if len(langs) == 0 {
		langs = []string{"en", "es"}
	}
	texts := make([]model.LocalizedText, 0, len(langs))
	for _, lang := range langs {
		texts = append(texts, model.LocalizedText{Language: lang, Text: text})
	}
	return texts, nil
}

// StubAnalyzer returns a fixed severity without calling out
type StubAnalyzer struct {
	// Severity returned for every text
	Severity float64
	// Err, if set, is returned from every call
	Err error
}

// AnalyzeText returns the configured severity
func (s *StubAnalyzer) AnalyzeText(_ context.Context, _ string) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Severity, nil
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockIdent  *mocks.MockIdent
	Translator *StubTranslator
	Analyzer   *StubAnalyzer
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithLogger(testutil.NopLogger())
}

// NewTestAppWithLogger creates a test App with the given logger
func NewTestAppWithLogger(logger *slog.Logger) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIdent := mocks.NewMockIdent()
	stubTranslator := &StubTranslator{}
	stubAnalyzer := &StubAnalyzer{Severity: 0}

	app := newWithDependencies(store, stubTranslator, stubAnalyzer, mockClock, mockIdent, prompt.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockIdent:  mockIdent,
		Translator: stubTranslator,
		Analyzer:   stubAnalyzer,
	}
}
