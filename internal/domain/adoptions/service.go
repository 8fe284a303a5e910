package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/platform/metrics"
	"pet-adoption-welfare/internal/ports/notify"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("adoption not found")
	ErrBadState             = errors.New("invalid state")
	ErrDuplicateApplication = errors.New("duplicate application")

	// ErrTransitionConflict: la unidad de approve abortó y se revirtió. Se puede reintentar.
	ErrTransitionConflict = errors.New("transition conflict")
)

type Service struct {
	repo      Repository
	pets      PetLookup
	tx        TxRunner
	escalator *escalation.Escalator
	metrics   *metrics.Recorder
	now       func() time.Time
}

func NewService(repo Repository, petLookup PetLookup, tx TxRunner) *Service {
	return &Service{
		repo: repo,
		pets: petLookup,
		tx:   tx,
		now:  time.Now,
	}
}

// WithEscalator habilita los avisos al adoptante/refugio en cada transición.
func (s *Service) WithEscalator(e *escalation.Escalator) *Service {
	s.escalator = e
	return s
}

func (s *Service) WithMetrics(m *metrics.Recorder) *Service {
	s.metrics = m
	return s
}

// Apply crea una solicitud pending. La mascota no cambia.
func (s *Service) Apply(ctx context.Context, adopterID, petID string) (Adoption, error) {
	adopterID = strings.TrimSpace(adopterID)
	petID = strings.TrimSpace(petID)
	if adopterID == "" || petID == "" {
		return Adoption{}, ErrInvalidInput
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Adoption{}, ErrNotFound
		}
		return Adoption{}, err
	}
	if p.Status == pets.StatusAdopted {
		return Adoption{}, ErrBadState
	}

	existing, err := s.repo.ListByUserAndPet(ctx, adopterID, petID)
	if err != nil {
		return Adoption{}, err
	}
	for _, a := range existing {
		if a.Status.blocksReapply() {
			return Adoption{}, ErrDuplicateApplication
		}
	}

	now := s.now()
	a := Adoption{
		ID:        uuid.NewString(),
		UserID:    adopterID,
		PetID:     petID,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, err
	}

	s.escalator.Raise(ctx, escalation.Notice{
		Kind:        notify.KindAdoptionUpdated,
		RecipientID: p.ShelterID,
		Subject:     fmt.Sprintf("New adoption application for %s", p.Name),
		Metadata:    map[string]string{"adoption_id": a.ID, "pet_id": p.ID, "status": string(a.Status)},
	})
	return a, nil
}

// Approve activa la adopción y marca la mascota como adoptada en una sola unidad.
// Una adopción ya activa se devuelve tal cual.
func (s *Service) Approve(ctx context.Context, adoptionID, shelterID string) (Adoption, error) {
	a, p, err := s.loadOwned(ctx, adoptionID, shelterID)
	if err != nil {
		return Adoption{}, err
	}
	if a.Status == StatusActive {
		return a, nil
	}
	if a.Status.IsTerminal() {
		return Adoption{}, ErrBadState
	}

	now := s.now()
	var out Adoption
	err = s.tx.InTx(ctx, func(tx TxStores) error {
		cur, err := tx.Adoptions.GetByID(ctx, a.ID)
		if err != nil {
			return err
		}
		if cur.Status.IsTerminal() {
			return ErrBadState
		}

		pet, err := tx.Pets.GetByID(ctx, cur.PetID)
		if err != nil {
			return err
		}
		// Otra adopción ya se quedó con la mascota.
		if pet.Status == pets.StatusAdopted && cur.Status == StatusPending {
			return ErrBadState
		}

		cur.Status = StatusActive
		if cur.AdoptionDate == nil {
			cur.AdoptionDate = &now
		}
		cur.UpdatedAt = now
		if err := tx.Adoptions.Update(ctx, cur); err != nil {
			return err
		}
		if err := tx.Pets.SetStatus(ctx, cur.PetID, pets.StatusAdopted, now); err != nil {
			return err
		}
		out = cur
		return nil
	})
	if err != nil {
		s.metrics.AdoptionTransition(string(StatusActive), false)
		if errors.Is(err, ErrBadState) {
			return Adoption{}, ErrBadState
		}
		return Adoption{}, fmt.Errorf("%w: %v", ErrTransitionConflict, err)
	}
	s.metrics.AdoptionTransition(string(StatusActive), true)

	s.escalator.Raise(ctx, escalation.Notice{
		Kind:        notify.KindAdoptionUpdated,
		RecipientID: out.UserID,
		Subject:     fmt.Sprintf("Your adoption of %s was approved", p.Name),
		Body:        "Your 90 day welfare check-in starts today.",
		Metadata:    map[string]string{"adoption_id": out.ID, "pet_id": out.PetID, "status": string(out.Status)},
	})
	return out, nil
}

// Reject: pending -> rejected, por el refugio dueño.
func (s *Service) Reject(ctx context.Context, adoptionID, shelterID string) (Adoption, error) {
	a, _, err := s.loadOwned(ctx, adoptionID, shelterID)
	if err != nil {
		return Adoption{}, err
	}
	return s.transition(ctx, a, StatusRejected, StatusPending)
}

// Complete: active -> completed, por el refugio dueño. La mascota sigue adoptada.
func (s *Service) Complete(ctx context.Context, adoptionID, shelterID string) (Adoption, error) {
	a, _, err := s.loadOwned(ctx, adoptionID, shelterID)
	if err != nil {
		return Adoption{}, err
	}
	return s.transition(ctx, a, StatusCompleted, StatusActive, StatusApproved)
}

// Cancel: pending -> cancelled, por el propio adoptante.
func (s *Service) Cancel(ctx context.Context, adoptionID, adopterID string) (Adoption, error) {
	adoptionID = strings.TrimSpace(adoptionID)
	adopterID = strings.TrimSpace(adopterID)
	if adoptionID == "" || adopterID == "" {
		return Adoption{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, adoptionID)
	if err != nil {
		return Adoption{}, err
	}
	if a.UserID != adopterID {
		return Adoption{}, ErrForbidden
	}
	return s.transition(ctx, a, StatusCancelled, StatusPending)
}

func (s *Service) Get(ctx context.Context, id string) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByAdopter(ctx context.Context, adopterID string) ([]Adoption, error) {
	adopterID = strings.TrimSpace(adopterID)
	if adopterID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, adopterID)
}

func (s *Service) ListByShelter(ctx context.Context, shelterID string) ([]Adoption, error) {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByShelter(ctx, shelterID)
}

// loadOwned trae adopción y mascota; si la mascota no es del refugio responde
// ErrNotFound para no filtrar existencia.
func (s *Service) loadOwned(ctx context.Context, adoptionID, shelterID string) (Adoption, pets.Pet, error) {
	adoptionID = strings.TrimSpace(adoptionID)
	shelterID = strings.TrimSpace(shelterID)
	if adoptionID == "" || shelterID == "" {
		return Adoption{}, pets.Pet{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, adoptionID)
	if err != nil {
		return Adoption{}, pets.Pet{}, err
	}
	p, err := s.pets.GetByID(ctx, a.PetID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Adoption{}, pets.Pet{}, ErrNotFound
		}
		return Adoption{}, pets.Pet{}, err
	}
	if p.ShelterID != shelterID {
		return Adoption{}, pets.Pet{}, ErrNotFound
	}
	return a, p, nil
}

func (s *Service) transition(ctx context.Context, a Adoption, to Status, from ...Status) (Adoption, error) {
	// Idempotente
	if a.Status == to {
		return a, nil
	}
	allowed := false
	for _, f := range from {
		if a.Status == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return Adoption{}, ErrBadState
	}

	a.Status = to
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		s.metrics.AdoptionTransition(string(to), false)
		return Adoption{}, err
	}
	s.metrics.AdoptionTransition(string(to), true)

	s.escalator.Raise(ctx, escalation.Notice{
		Kind:        notify.KindAdoptionUpdated,
		RecipientID: a.UserID,
		Subject:     fmt.Sprintf("Adoption %s", to),
		Metadata:    map[string]string{"adoption_id": a.ID, "pet_id": a.PetID, "status": string(a.Status)},
	})
	return a, nil
}
