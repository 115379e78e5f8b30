package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/notedrop/internal/models"
	"gorm.io/gorm"
)

// NoteRepository scopes every read and write by owner id and hides
// soft-deleted rows. Callers never see another user's notes.
type NoteRepository interface {
	Create(ctx context.Context, n *models.Note) error
	ByOwner(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	ByID(ctx context.Context, id, userID uuid.UUID) (*models.Note, error)
	Update(ctx context.Context, n *models.Note) error
	Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Note, error)
}

type noteRepo struct{ db *gorm.DB }

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepo{db: db}
}

func (r *noteRepo) Create(ctx context.Context, n *models.Note) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noteRepo) ByOwner(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false).
		Order("updated_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *noteRepo) ByID(ctx context.Context, id, userID uuid.UUID) (*models.Note, error) {
	var n models.Note
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND deleted = ?", id, userID, false).
		First(&n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *noteRepo) Update(ctx context.Context, n *models.Note) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *noteRepo) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Note, error) {
	var notes []models.Note
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false).
		Where("title ILIKE ? OR content ILIKE ?", pattern, pattern).
		Order("updated_at DESC").
		Find(&notes).Error
	return notes, err
}
