package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quiplash-go/internal/dependencies/mocks"
	"github.com/mcoot/quiplash-go/internal/model"
	"github.com/mcoot/quiplash-go/internal/storage/memory"
	"github.com/mcoot/quiplash-go/internal/testutil"
)

type stubTranslator struct {
	err   error
	langs []string
}

func (t *stubTranslator) TranslateToAll(_ context.Context, text string) ([]model.LocalizedText, error) {
	if t.err != nil {
		return nil, t.err
	}
	langs := t.langs
	if len(langs) == 0 {
		langs = []string{"en", "es", "it"}
	}
	texts := make([]model.LocalizedText, 0, len(langs))
	for _, lang := range langs {
		texts = append(texts, model.LocalizedText{Language: lang, Text: text})
	}
	return texts, nil
}

type stubAnalyzer struct {
	severity float64
	err      error

	lastText string
}

func (a *stubAnalyzer) AnalyzeText(_ context.Context, text string) (float64, error) {
	a.lastText = text
	if a.err != nil {
		return 0, a.err
	}
	return a.severity, nil
}

type ServiceSuite struct {
	suite.Suite
	storage    *memory.Storage
	translator *stubTranslator
	analyzer   *stubAnalyzer
	clock      *mocks.MockClock
	ident      *mocks.MockIdent
	service    *Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.translator = &stubTranslator{}
	s.analyzer = &stubAnalyzer{}
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ident = mocks.NewMockIdent()
	s.service = New(s.storage, s.translator, s.analyzer, s.clock, s.ident, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) registerOwner(username string) {
	err := s.storage.SavePlayer(s.ctx, &model.Player{
		ID:       model.PlayerID("id-" + username),
		Username: username,
	})
	s.Require().NoError(err)
}

// Create tests

func (s *ServiceSuite) TestCreateSucceeds() {
	s.registerOwner("alice7")
	s.ident.QueueID("prompt-1")

	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	s.Equal(model.PromptID("prompt-1"), p.ID)
	s.Equal("alice7", p.Username)
	s.Equal(model.PromptStatusPending, p.Status)
	s.Len(p.Texts, 3)
	s.Equal(s.clock.Now(), p.CreatedAt)
}

func (s *ServiceSuite) TestCreatePersistsPrompt() {
	s.registerOwner("alice7")

	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	stored, err := s.storage.GetPrompt(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)
	s.Equal(p.ID, stored.ID)
}

func (s *ServiceSuite) TestCreateFailsForUnknownOwner() {
	_, err := s.service.Create(s.ctx, "ghost77", "The weirdest use for a banana")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestCreateTextLengthValidation() {
	s.registerOwner("alice7")

	// 19 characters is too short
	_, err := s.service.Create(s.ctx, "alice7", strings.Repeat("a", 19))
	s.ErrorIs(err, model.ErrPromptLength)

	// 101 characters is too long
	_, err = s.service.Create(s.ctx, "alice7", strings.Repeat("a", 101))
	s.ErrorIs(err, model.ErrPromptLength)

	// Boundary lengths (20 and 100) are fine
	_, err = s.service.Create(s.ctx, "alice7", strings.Repeat("a", 20))
	s.NoError(err)

	_, err = s.service.Create(s.ctx, "alice7", strings.Repeat("a", 100))
	s.NoError(err)
}

func (s *ServiceSuite) TestCreateDegradesWhenTranslationFails() {
	s.registerOwner("alice7")
	s.translator.err = errors.New("translator down")

	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	s.Require().Len(p.Texts, 1)
	s.Equal("en", p.Texts[0].Language)
	s.Equal("The weirdest use for a banana", p.Texts[0].Text)
}

// Delete tests

func (s *ServiceSuite) TestDeleteSucceeds() {
	s.registerOwner("alice7")

	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	err = s.service.Delete(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetPrompt(s.ctx, "alice7", p.ID)
	s.ErrorIs(err, model.ErrPromptNotFound)
}

func (s *ServiceSuite) TestDeleteFailsForUnknownPrompt() {
	err := s.service.Delete(s.ctx, "alice7", "nonexistent")
	s.ErrorIs(err, model.ErrPromptNotFound)
}

// Moderate tests

func (s *ServiceSuite) TestModerateApprovesAtOrBelowThreshold() {
	s.registerOwner("alice7")
	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	s.analyzer.severity = 2.0
	moderated, err := s.service.Moderate(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)
	s.Equal(model.PromptStatusApproved, moderated.Status)
	s.InDelta(2.0, moderated.Severity, 0.001)
}

func (s *ServiceSuite) TestModerateRejectsAboveThreshold() {
	s.registerOwner("alice7")
	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	s.analyzer.severity = 2.25
	moderated, err := s.service.Moderate(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)
	s.Equal(model.PromptStatusRejected, moderated.Status)
}

func (s *ServiceSuite) TestModerateAnalyzesEnglishText() {
	s.registerOwner("alice7")
	s.translator.langs = []string{"es", "en"}

	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	_, err = s.service.Moderate(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)
	s.Equal("The weirdest use for a banana", s.analyzer.lastText)
}

func (s *ServiceSuite) TestModeratePersistsDecision() {
	s.registerOwner("alice7")
	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	s.analyzer.severity = 0.5
	_, err = s.service.Moderate(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)

	stored, err := s.storage.GetPrompt(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)
	s.Equal(model.PromptStatusApproved, stored.Status)
	s.InDelta(0.5, stored.Severity, 0.001)
}

func (s *ServiceSuite) TestModerateSurfacesAnalyzerError() {
	s.registerOwner("alice7")
	p, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	s.analyzer.err = errors.New("safety service down")
	_, err = s.service.Moderate(s.ctx, "alice7", p.ID)
	s.Error(err)

	stored, err := s.storage.GetPrompt(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)
	s.Equal(model.PromptStatusPending, stored.Status)
}

func (s *ServiceSuite) TestModerateFailsForUnknownPrompt() {
	_, err := s.service.Moderate(s.ctx, "alice7", "nonexistent")
	s.ErrorIs(err, model.ErrPromptNotFound)
}

func (s *ServiceSuite) TestCustomThreshold() {
	s.registerOwner("alice7")
	svc := New(s.storage, s.translator, s.analyzer, s.clock, s.ident, Config{ModerationThreshold: 4.0}, testutil.NopLogger())

	p, err := svc.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)

	s.analyzer.severity = 3.5
	moderated, err := svc.Moderate(s.ctx, "alice7", p.ID)
	s.Require().NoError(err)
	s.Equal(model.PromptStatusApproved, moderated.Status)
}

// Listing tests

func (s *ServiceSuite) TestListForPlayer() {
	s.registerOwner("alice7")
	s.registerOwner("bobby5")

	_, err := s.service.Create(s.ctx, "alice7", "The weirdest use for a banana")
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, "bobby5", "A terrible name for a restaurant")
	s.Require().NoError(err)

	prompts, err := s.service.ListForPlayer(s.ctx, "alice7")
	s.Require().NoError(err)
	s.Len(prompts, 1)

	all, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}
