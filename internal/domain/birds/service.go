package birds

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("bird not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	Species string
	// nil = no enviado => default 0.
	Likes *int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Bird, error) {
	likes := 0
	if in.Likes != nil {
		if *in.Likes < 0 {
			return Bird{}, ErrInvalidInput
		}
		likes = *in.Likes
	}

	now := s.now()
	b := Bird{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Likes:     likes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Bird{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Bird, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Bird, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name    *string
	Species *string
	Likes   *int
}

// Update sobreescribe solo los campos enviados (semántica de update parcial).
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Bird, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Bird{}, err
	}

	if in.Name != nil {
		current.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		current.Species = strings.TrimSpace(*in.Species)
	}
	if in.Likes != nil {
		if *in.Likes < 0 {
			return Bird{}, ErrInvalidInput
		}
		current.Likes = *in.Likes
	}

	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Bird{}, err
	}
	return current, nil
}

// Like suma exactamente 1 al contador, solo si el registro existe.
func (s *Service) Like(ctx context.Context, id string) (Bird, error) {
	if strings.TrimSpace(id) == "" {
		return Bird{}, ErrNotFound
	}
	return s.repo.IncrementLikes(ctx, id, s.now())
}
