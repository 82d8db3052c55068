package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/quiplash-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:           "player-1",
		Username:     "alice7",
		PasswordHash: "hash123",
		GamesPlayed:  2,
		TotalScore:   17,
		CreatedAt:    time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Username, retrieved.Username)
	s.Equal(player.TotalScore, retrieved.TotalScore)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerByUsername() {
	player := &model.Player{ID: "player-1", Username: "alice7"}
	_ = s.storage.SavePlayer(s.ctx, player)

	retrieved, err := s.storage.GetPlayerByUsername(s.ctx, "alice7")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetPlayerByUsernameNotFound() {
	_, err := s.storage.GetPlayerByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", Username: "alice7"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	_, err = s.storage.GetPlayerByUsername(s.ctx, "alice7")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayers() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", Username: "alice7"})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", Username: "bobby5"})

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

// Prompt tests

func (s *StorageSuite) TestSaveAndGetPrompt() {
	prompt := &model.Prompt{
		ID:       "prompt-1",
		Username: "alice7",
		Texts: []model.LocalizedText{
			{Language: "en", Text: "The weirdest use for a banana"},
		},
		Status:    model.PromptStatusPending,
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePrompt(s.ctx, prompt)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPrompt(s.ctx, "alice7", "prompt-1")
	s.Require().NoError(err)
	s.Equal(prompt.ID, retrieved.ID)
	s.Equal(model.PromptStatusPending, retrieved.Status)
}

func (s *StorageSuite) TestGetPromptNotFound() {
	_, err := s.storage.GetPrompt(s.ctx, "alice7", "nonexistent")
	s.ErrorIs(err, model.ErrPromptNotFound)
}

func (s *StorageSuite) TestGetPromptWrongOwner() {
	prompt := &model.Prompt{ID: "prompt-1", Username: "alice7"}
	_ = s.storage.SavePrompt(s.ctx, prompt)

	_, err := s.storage.GetPrompt(s.ctx, "bobby5", "prompt-1")
	s.ErrorIs(err, model.ErrPromptNotFound)
}

func (s *StorageSuite) TestDeletePrompt() {
	prompt := &model.Prompt{ID: "prompt-1", Username: "alice7"}
	_ = s.storage.SavePrompt(s.ctx, prompt)

	err := s.storage.DeletePrompt(s.ctx, "alice7", "prompt-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPrompt(s.ctx, "alice7", "prompt-1")
	s.ErrorIs(err, model.ErrPromptNotFound)
}

func (s *StorageSuite) TestDeletePromptNotFound() {
	err := s.storage.DeletePrompt(s.ctx, "alice7", "nonexistent")
	s.ErrorIs(err, model.ErrPromptNotFound)
}

func (s *StorageSuite) TestListPromptsForPlayer() {
	_ = s.storage.SavePrompt(s.ctx, &model.Prompt{ID: "prompt-1", Username: "alice7"})
	_ = s.storage.SavePrompt(s.ctx, &model.Prompt{ID: "prompt-2", Username: "alice7"})
	_ = s.storage.SavePrompt(s.ctx, &model.Prompt{ID: "prompt-3", Username: "bobby5"})

	prompts, err := s.storage.ListPromptsForPlayer(s.ctx, "alice7")
	s.Require().NoError(err)
	s.Len(prompts, 2)
}

func (s *StorageSuite) TestListPrompts() {
	_ = s.storage.SavePrompt(s.ctx, &model.Prompt{ID: "prompt-1", Username: "alice7"})
	_ = s.storage.SavePrompt(s.ctx, &model.Prompt{ID: "prompt-2", Username: "bobby5"})

	prompts, err := s.storage.ListPrompts(s.ctx)
	s.Require().NoError(err)
	s.Len(prompts, 2)
}
