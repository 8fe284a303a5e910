package shelters

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("shelter not found")
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

type ProfileInput struct {
	Name      string
	Email     string
	Latitude  *float64
	Longitude *float64
}

// UpsertProfile guarda el perfil del refugio autenticado.
func (s *Service) UpsertProfile(ctx context.Context, shelterID string, in ProfileInput) (Shelter, error) {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" || strings.TrimSpace(in.Name) == "" {
		return Shelter{}, ErrInvalidInput
	}
	// lat/lng van juntas
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return Shelter{}, ErrInvalidInput
	}
	if in.Latitude != nil && !validCoords(*in.Latitude, *in.Longitude) {
		return Shelter{}, ErrInvalidInput
	}

	now := s.now()
	sh := Shelter{
		ID:        shelterID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if current, err := s.repo.GetByID(ctx, shelterID); err == nil {
		sh.CreatedAt = current.CreatedAt
		sh.Verified = current.Verified
		sh.VerifiedAt = current.VerifiedAt
	} else if !errors.Is(err, ErrNotFound) {
		return Shelter{}, err
	}

	if err := s.repo.Upsert(ctx, sh); err != nil {
		return Shelter{}, err
	}
	return sh, nil
}

func (s *Service) Get(ctx context.Context, id string) (Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Shelter{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Verify marca el refugio como verificado (acción de admin). Idempotente.
func (s *Service) Verify(ctx context.Context, id string) (Shelter, error) {
	sh, err := s.Get(ctx, id)
	if err != nil {
		return Shelter{}, err
	}
	if sh.Verified {
		return sh, nil
	}

	now := s.now()
	sh.Verified = true
	sh.VerifiedAt = &now
	sh.UpdatedAt = now
	if err := s.repo.Update(ctx, sh); err != nil {
		return Shelter{}, err
	}
	return sh, nil
}

func (s *Service) ListVerified(ctx context.Context) ([]Shelter, error) {
	return s.repo.ListVerified(ctx)
}

func validCoords(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
