package welfare

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pet-adoption-welfare/internal/domain/adoptions"
	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/platform/metrics"
	"pet-adoption-welfare/internal/platform/sanitize"
	"pet-adoption-welfare/internal/ports/auth"
	"pet-adoption-welfare/internal/ports/notify"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("forbidden")
	ErrNotMonitoring = errors.New("adoption is not in its monitoring window")
)

const (
	DefaultRecentLimit = 30
	MaxRecentLimit     = 200

	maxNoteRunes = 2000
)

type AdoptionLookup interface {
	Get(ctx context.Context, id string) (adoptions.Adoption, error)
}

type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo      Repository
	adoptions AdoptionLookup
	pets      PetLookup
	sentinel  *Sentinel

	escalator *escalation.Escalator
	metrics   *metrics.Recorder
	log       logger.Logger

	now func() time.Time
}

func NewService(repo Repository, adoptionLookup AdoptionLookup, petLookup PetLookup) *Service {
	return &Service{
		repo:      repo,
		adoptions: adoptionLookup,
		pets:      petLookup,
		sentinel:  NewSentinel(),
		log:       logger.NewNop(),
		now:       time.Now,
	}
}

func (s *Service) WithEscalator(e *escalation.Escalator) *Service {
	s.escalator = e
	return s
}

func (s *Service) WithMetrics(m *metrics.Recorder) *Service {
	s.metrics = m
	return s
}

func (s *Service) WithLogger(l logger.Logger) *Service {
	if l != nil {
		s.log = l.With(map[string]any{"component": "welfare"})
	}
	return s
}

type AppendInput struct {
	Checklist Checklist
	Mood      string
	Notes     string
}

type AppendResult struct {
	Entry        Entry
	RiskDetected bool
}

// Append guarda la entrada sin marcar, corre el sentinel y, si marca, hace el
// update de riesgo y avisa al refugio. Un sentinel degradado no falla el alta.
func (s *Service) Append(ctx context.Context, adoptionID, adopterID string, in AppendInput) (AppendResult, error) {
	adoptionID = strings.TrimSpace(adoptionID)
	adopterID = strings.TrimSpace(adopterID)
	if adoptionID == "" || adopterID == "" {
		return AppendResult{}, ErrInvalidInput
	}

	a, err := s.getAdoption(ctx, adoptionID)
	if err != nil {
		return AppendResult{}, err
	}
	if a.UserID != adopterID {
		return AppendResult{}, ErrForbidden
	}
	if !a.Status.IsMonitoring() {
		return AppendResult{}, ErrNotMonitoring
	}

	mood, err := ParseMood(in.Mood)
	if err != nil {
		return AppendResult{}, err
	}
	notes := sanitize.Text(in.Notes)
	if utf8.RuneCountInString(notes) > maxNoteRunes {
		return AppendResult{}, ErrInvalidInput
	}

	e := Entry{
		ID:         uuid.NewString(),
		AdoptionID: a.ID,
		Checklist:  in.Checklist,
		Mood:       mood,
		Notes:      notes,
		Status:     StatusPending,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return AppendResult{}, err
	}
	s.metrics.LogAppended()

	// El sentinel lee lo que escribió el adoptante; el markup quitado puede tapar palabras clave.
	judged := e
	judged.Notes = strings.TrimSpace(in.Notes)
	verdict, err := s.sentinel.Evaluate(ctx, judged, func(ctx context.Context) ([]Entry, error) {
		return s.repo.Recent(ctx, a.ID, SentinelWindow)
	})
	if err != nil {
		s.log.Warn("sentinel degraded, entry saved unflagged", map[string]any{
			"adoption_id": a.ID,
			"log_id":      e.ID,
			"error":       err,
		})
		s.metrics.SentinelDegraded()
		return AppendResult{Entry: e}, nil
	}
	if !verdict.Flagged {
		return AppendResult{Entry: e}, nil
	}

	verdict.Reason = sanitize.Text(verdict.Reason)
	if err := s.repo.MarkRisk(ctx, e.ID, verdict.Reason); err != nil {
		s.log.Error("could not persist risk flag", map[string]any{
			"log_id": e.ID,
			"rule":   verdict.Rule,
			"error":  err,
		})
		s.metrics.SentinelDegraded()
		return AppendResult{Entry: e}, nil
	}
	reason := verdict.Reason
	e.RiskFlagged = true
	e.RiskReason = &reason
	s.metrics.RiskFlagged(verdict.Rule)

	s.raiseRisk(ctx, a, e, verdict)
	return AppendResult{Entry: e, RiskDetected: true}, nil
}

func (s *Service) raiseRisk(ctx context.Context, a adoptions.Adoption, e Entry, v Verdict) {
	p, err := s.pets.GetByID(ctx, a.PetID)
	if err != nil {
		s.log.Warn("risk notice skipped, pet lookup failed", map[string]any{"pet_id": a.PetID, "error": err})
		return
	}
	s.escalator.Raise(ctx, escalation.Notice{
		Kind:        notify.KindWelfareRisk,
		RecipientID: p.ShelterID,
		Subject:     fmt.Sprintf("Welfare alert for %s", p.Name),
		Body:        v.Reason,
		Metadata: map[string]string{
			"adoption_id": a.ID,
			"log_id":      e.ID,
			"pet_id":      p.ID,
			"rule":        v.Rule,
		},
	})
}

// Recent devuelve las últimas entradas; limit<=0 usa DefaultRecentLimit.
func (s *Service) Recent(ctx context.Context, adoptionID string, limit int) ([]Entry, error) {
	if strings.TrimSpace(adoptionID) == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.Recent(ctx, adoptionID, limit)
}

// RecentFor valida que el lector pueda ver la adopción.
func (s *Service) RecentFor(ctx context.Context, adoptionID string, viewer auth.Claims, limit int) ([]Entry, error) {
	if _, _, err := s.authorizeRead(ctx, adoptionID, viewer); err != nil {
		return nil, err
	}
	return s.Recent(ctx, adoptionID, limit)
}

// Summary es lo que consume el dashboard del adoptante.
type Summary struct {
	AdoptionID   string
	PetName      string
	PetImageURL  string
	AdoptionDate time.Time
	Progress     Progress
	Logs         []Entry
}

func (s *Service) Summary(ctx context.Context, adoptionID string, viewer auth.Claims) (Summary, error) {
	a, p, err := s.authorizeRead(ctx, adoptionID, viewer)
	if err != nil {
		return Summary{}, err
	}
	if a.AdoptionDate == nil {
		return Summary{}, ErrNotMonitoring
	}

	now := s.now()
	logs, err := s.repo.Recent(ctx, a.ID, DefaultRecentLimit)
	if err != nil {
		return Summary{}, err
	}
	lastWeek, err := s.repo.ListSince(ctx, a.ID, now.Add(-StreakWindow))
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		AdoptionID:   a.ID,
		PetName:      p.Name,
		PetImageURL:  p.ImageURL,
		AdoptionDate: *a.AdoptionDate,
		Progress:     Compute(*a.AdoptionDate, now, lastWeek),
		Logs:         logs,
	}, nil
}

// authorizeRead: adoptante, refugio dueño de la mascota o admin.
func (s *Service) authorizeRead(ctx context.Context, adoptionID string, viewer auth.Claims) (adoptions.Adoption, pets.Pet, error) {
	adoptionID = strings.TrimSpace(adoptionID)
	if adoptionID == "" || strings.TrimSpace(viewer.UserID) == "" {
		return adoptions.Adoption{}, pets.Pet{}, ErrInvalidInput
	}

	a, err := s.getAdoption(ctx, adoptionID)
	if err != nil {
		return adoptions.Adoption{}, pets.Pet{}, err
	}
	p, err := s.getPet(ctx, a.PetID)
	if err != nil {
		return adoptions.Adoption{}, pets.Pet{}, err
	}

	switch {
	case viewer.IsAdmin():
	case a.UserID == viewer.UserID:
	case viewer.IsShelter() && p.ShelterID == viewer.UserID:
	default:
		return adoptions.Adoption{}, pets.Pet{}, ErrForbidden
	}
	return a, p, nil
}

func (s *Service) getAdoption(ctx context.Context, id string) (adoptions.Adoption, error) {
	a, err := s.adoptions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, adoptions.ErrNotFound) {
			return adoptions.Adoption{}, ErrNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (s *Service) getPet(ctx context.Context, id string) (pets.Pet, error) {
	p, err := s.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}
