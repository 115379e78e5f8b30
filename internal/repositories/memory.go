package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/notedrop/internal/models"
)

// In-memory repositories back the server when DB_URL is unset. They are also
// what the service tests run against.

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryUserRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) ByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.UpdatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

type MemoryNoteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]models.Note
}

func NewMemoryNoteRepository() *MemoryNoteRepository {
	return &MemoryNoteRepository{notes: make(map[uuid.UUID]models.Note)}
}

func (r *MemoryNoteRepository) Create(ctx context.Context, n *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	r.notes[n.ID] = *n
	return nil
}

func (r *MemoryNoteRepository) ByOwner(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var notes []models.Note
	for _, n := range r.notes {
		if n.UserID == userID && !n.Deleted {
			notes = append(notes, n)
		}
	}
	sortByUpdatedDesc(notes)
	return notes, nil
}

func (r *MemoryNoteRepository) ByID(ctx context.Context, id, userID uuid.UUID) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notes[id]
	if !ok || n.UserID != userID || n.Deleted {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (r *MemoryNoteRepository) Update(ctx context.Context, n *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.UpdatedAt = time.Now()
	r.notes[n.ID] = *n
	return nil
}

func (r *MemoryNoteRepository) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var notes []models.Note
	for _, n := range r.notes {
		if n.UserID != userID || n.Deleted {
			continue
		}
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			notes = append(notes, n)
		}
	}
	sortByUpdatedDesc(notes)
	return notes, nil
}

func sortByUpdatedDesc(notes []models.Note) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
