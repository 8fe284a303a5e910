package distress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/domain/shelters"
	"pet-adoption-welfare/internal/platform/sanitize"
	"pet-adoption-welfare/internal/ports/notify"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("report not found")
	ErrNoShelterAvailable = errors.New("no verified shelter with a location")
)

const (
	reportSubject       = "distress_report"
	maxDescriptionRunes = 2000
)

// Mismo patrón flag -> notify -> resolve que las alertas de bienestar.
var reportFlow = escalation.NewFlow(reportSubject, map[Status][]Status{
	StatusOpen:       {StatusDispatched, StatusNotified, StatusResolved},
	StatusDispatched: {StatusNotified, StatusResolved},
	StatusNotified:   {StatusResolved},
})

// ShelterDirectory lista candidatos para la derivación.
type ShelterDirectory interface {
	ListVerified(ctx context.Context) ([]shelters.Shelter, error)
}

type Service struct {
	repo      Repository
	shelters  ShelterDirectory
	escalator *escalation.Escalator
	now       func() time.Time
}

func NewService(repo Repository, dir ShelterDirectory) *Service {
	return &Service{
		repo:     repo,
		shelters: dir,
		now:      time.Now,
	}
}

func (s *Service) WithEscalator(e *escalation.Escalator) *Service {
	s.escalator = e
	return s
}

type SubmitInput struct {
	ReporterUserID string
	Description    string
	Latitude       float64
	Longitude      float64
	ImageURL       string
}

// Submit es público: ReporterUserID puede venir vacío.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Report, error) {
	desc := sanitize.Text(in.Description)
	if desc == "" || utf8.RuneCountInString(desc) > maxDescriptionRunes {
		return Report{}, ErrInvalidInput
	}
	if !validCoords(in.Latitude, in.Longitude) {
		return Report{}, ErrInvalidInput
	}

	now := s.now()
	r := Report{
		ID:             uuid.NewString(),
		ReporterUserID: strings.TrimSpace(in.ReporterUserID),
		Description:    desc,
		Latitude:       in.Latitude,
		Longitude:      in.Longitude,
		ImageURL:       strings.TrimSpace(in.ImageURL),
		Status:         StatusOpen,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Report{}, err
	}
	s.escalator.Transitioned(reportSubject, string(StatusOpen))
	return r, nil
}

func (s *Service) List(ctx context.Context, status string) ([]Report, error) {
	st := Status(strings.ToLower(strings.TrimSpace(status)))
	switch st {
	case "", StatusOpen, StatusDispatched, StatusNotified, StatusResolved:
	default:
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, st)
}

func (s *Service) Get(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Report{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Dispatch: un admin tomó el caso.
func (s *Service) Dispatch(ctx context.Context, id string) (Report, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if err := reportFlow.Check(r.Status, StatusDispatched); err != nil {
		return Report{}, err
	}

	r.Status = StatusDispatched
	r.UpdatedAt = s.now()
	return s.save(ctx, r)
}

// Notify busca el refugio verificado más cercano, lo asigna y le manda un
// único aviso. Si el aviso falla la transición igual queda hecha.
func (s *Service) Notify(ctx context.Context, id string) (Report, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if err := reportFlow.Check(r.Status, StatusNotified); err != nil {
		return Report{}, err
	}

	candidates, err := s.shelters.ListVerified(ctx)
	if err != nil {
		return Report{}, err
	}
	nearest, dist, ok := Nearest(r.Latitude, r.Longitude, candidates)
	if !ok {
		return Report{}, ErrNoShelterAvailable
	}

	now := s.now()
	r.Status = StatusNotified
	r.AssignedShelterID = nearest.ID
	r.DistanceKM = &dist
	r.NotifiedAt = &now
	r.UpdatedAt = now

	r, err = s.save(ctx, r)
	if err != nil {
		return Report{}, err
	}

	s.escalator.Raise(ctx, escalation.Notice{
		Kind:        notify.KindDistressReport,
		RecipientID: nearest.ID,
		Subject:     fmt.Sprintf("Animal in distress reported %.1f km from your shelter", dist),
		Body:        r.Description,
		Metadata: map[string]string{
			"report_id": r.ID,
			"latitude":  fmt.Sprintf("%.6f", r.Latitude),
			"longitude": fmt.Sprintf("%.6f", r.Longitude),
		},
	})
	return r, nil
}

// Resolve cierra el reporte desde cualquier estado no resuelto.
func (s *Service) Resolve(ctx context.Context, id, note string) (Report, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return Report{}, err
	}
	if err := reportFlow.Check(r.Status, StatusResolved); err != nil {
		return Report{}, err
	}

	now := s.now()
	r.Status = StatusResolved
	r.ResolutionNote = sanitize.Text(note)
	r.ResolvedAt = &now
	r.UpdatedAt = now
	return s.save(ctx, r)
}

func (s *Service) save(ctx context.Context, r Report) (Report, error) {
	if err := s.repo.Update(ctx, r); err != nil {
		return Report{}, err
	}
	s.escalator.Transitioned(reportSubject, string(r.Status))
	return r, nil
}

// Nearest elige el refugio verificado con ubicación más cercano al punto.
// Empate: gana el primero de la lista.
func Nearest(lat, lng float64, candidates []shelters.Shelter) (shelters.Shelter, float64, bool) {
	best := shelters.Shelter{}
	bestDist := math.Inf(1)
	found := false
	for _, c := range candidates {
		if !c.Verified || !c.HasLocation() {
			continue
		}
		d := haversineKM(lat, lng, *c.Latitude, *c.Longitude)
		if d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	if !found {
		return shelters.Shelter{}, 0, false
	}
	return best, bestDist, true
}
