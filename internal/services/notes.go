package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rohits-web03/notedrop/internal/logger"
	"github.com/rohits-web03/notedrop/internal/models"
	"github.com/rohits-web03/notedrop/internal/repositories"
)

const maxTitleLength = 255

// NoteService implements owner-scoped note CRUD and search. The owner id
// always comes from the authenticated request context, never from the client
// payload, and a note owned by someone else is indistinguishable from a
// missing one.
type NoteService struct {
	notes repositories.NoteRepository
}

func NewNoteService(notes repositories.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

type NoteInput struct {
	Title   string
	Content string
}

type NoteUpdate struct {
	Title   *string
	Content *string
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", NewValidationError("Title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", NewValidationError("Title cannot exceed 255 characters")
	}
	return title, nil
}

func (s *NoteService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Note, error) {
	notes, err := s.notes.ByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	logger.Log.Infof("Retrieved %d notes for user: %s", len(notes), ownerID)
	return notes, nil
}

func (s *NoteService) GetByID(ctx context.Context, noteID, ownerID uuid.UUID) (*models.Note, error) {
	note, err := s.notes.ByID(ctx, noteID, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching note: %w", err)
	}
	return note, nil
}

func (s *NoteService) Create(ctx context.Context, ownerID uuid.UUID, in NoteInput) (*models.Note, error) {
	title, err := validateTitle(in.Title)
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		UserID:  ownerID,
		Title:   title,
		Content: in.Content,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	logger.Log.Infof("Note created: %s by user: %s", note.ID, ownerID)
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, noteID, ownerID uuid.UUID, update NoteUpdate) (*models.Note, error) {
	note, err := s.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title, err := validateTitle(*update.Title)
		if err != nil {
			return nil, err
		}
		note.Title = title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}

	if err := s.notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	logger.Log.Infof("Note updated: %s by user: %s", note.ID, ownerID)
	return note, nil
}

// Delete flags the note as deleted. The row stays; every subsequent operation
// on the id returns ErrNotFound.
func (s *NoteService) Delete(ctx context.Context, noteID, ownerID uuid.UUID) error {
	note, err := s.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return err
	}

	note.Deleted = true
	if err := s.notes.Update(ctx, note); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	logger.Log.Infof("Note deleted: %s by user: %s", note.ID, ownerID)
	return nil
}

func (s *NoteService) Search(ctx context.Context, ownerID uuid.UUID, query string) ([]models.Note, error) {
	notes, err := s.notes.Search(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("searching notes: %w", err)
	}
	logger.Log.Infof("Search for %q returned %d notes for user: %s", query, len(notes), ownerID)
	return notes, nil
}
