package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsedash/pulse/internal/markdown"
	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
)

type NoteService struct {
	repo   repository.NoteRepository
	parser *markdown.Parser
}

func NewNoteService(repo repository.NoteRepository, parser *markdown.Parser) *NoteService {
	return &NoteService{
		repo:   repo,
		parser: parser,
	}
}

func (s *NoteService) Create(userID, content string, tags []string) (*model.Note, error) {
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	note := &model.Note{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (s *NoteService) Notes(userID string) ([]*model.Note, error) {
	return s.repo.Notes(userID)
}

func (s *NoteService) ByID(userID, noteID string) (*model.Note, error) {
	return s.repo.ByID(userID, noteID)
}

// NoteUpdate carries the fields of a partial update; nil fields are left
// unchanged.
type NoteUpdate struct {
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
}

func (s *NoteService) Update(userID, noteID string, update NoteUpdate) (*model.Note, error) {
	note, err := s.repo.ByID(userID, noteID)
	if err != nil {
		return nil, err
	}

	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.Tags != nil {
		note.Tags = update.Tags
	}
	note.UpdatedAt = time.Now()

	err = s.repo.Update(note)
	if err != nil {
		return nil, err
	}

	return note, nil
}

// RenderHTML converts a note's markdown content to HTML.
func (s *NoteService) RenderHTML(userID, noteID string) (string, error) {
	note, err := s.repo.ByID(userID, noteID)
	if err != nil {
		return "", err
	}

	html, err := s.parser.Parse([]byte(note.Content))
	if err != nil {
		return "", fmt.Errorf("failed to render note: %w", err)
	}

	return string(html), nil
}
