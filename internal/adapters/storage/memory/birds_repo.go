package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"birds-api/internal/domain/birds"
)

type birdRepo struct {
	mu   sync.RWMutex
	byID map[string]birds.Bird
}

func NewBirdRepo() birds.Repository {
	return &birdRepo{
		byID: make(map[string]birds.Bird),
	}
}

func (r *birdRepo) Create(ctx context.Context, b birds.Bird) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("bird id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("bird already exists")
	}
	if b.Likes < 0 {
		return errors.New("likes must be >= 0")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *birdRepo) Update(ctx context.Context, b birds.Bird) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; !exists {
		return birds.ErrNotFound
	}
	if b.Likes < 0 {
		return errors.New("likes must be >= 0")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *birdRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return birds.Bird{}, birds.ErrNotFound
	}
	return b, nil
}

func (r *birdRepo) List(ctx context.Context) ([]birds.Bird, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]birds.Bird, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

// IncrementLikes muta bajo el write lock: leer y escribir en la misma
// sección crítica es lo que hace que no se pierdan likes concurrentes.
func (r *birdRepo) IncrementLikes(ctx context.Context, id string, now time.Time) (birds.Bird, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return birds.Bird{}, birds.ErrNotFound
	}

	b.Likes++
	b.UpdatedAt = now
	r.byID[id] = b

	return b, nil
}
