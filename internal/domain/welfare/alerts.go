package welfare

import (
	"context"
	"fmt"
	"strings"

	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/platform/sanitize"
	"pet-adoption-welfare/internal/ports/notify"
)

const alertSubject = "welfare_alert"

// No hay estado terminal: responded puede volver a pending (reapertura del admin).
var alertFlow = escalation.NewFlow(alertSubject, map[Status][]Status{
	StatusPending:   {StatusResponded},
	StatusResponded: {StatusPending, StatusResponded},
})

func (s *Service) ListFlagged(ctx context.Context, shelterID string) ([]Alert, error) {
	shelterID = strings.TrimSpace(shelterID)
	if shelterID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListFlaggedByShelter(ctx, shelterID)
}

// Respond registra la respuesta del refugio dueño. No toca RiskFlagged.
func (s *Service) Respond(ctx context.Context, logID, shelterID, text string) (Entry, error) {
	logID = strings.TrimSpace(logID)
	shelterID = strings.TrimSpace(shelterID)
	text = sanitize.Text(text)
	if logID == "" || shelterID == "" {
		return Entry{}, ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		return Entry{}, err
	}
	a, err := s.getAdoption(ctx, e.AdoptionID)
	if err != nil {
		return Entry{}, err
	}
	p, err := s.getPet(ctx, a.PetID)
	if err != nil {
		return Entry{}, err
	}
	if p.ShelterID != shelterID {
		return Entry{}, ErrForbidden
	}
	if text == "" {
		return Entry{}, ErrInvalidInput
	}

	e, err = s.applyStatus(ctx, e, StatusResponded, &text)
	if err != nil {
		return Entry{}, err
	}

	s.escalator.Raise(ctx, escalation.Notice{
		Kind:        notify.KindAlertResponse,
		RecipientID: a.UserID,
		Subject:     fmt.Sprintf("%s's shelter answered your check-in", p.Name),
		Body:        text,
		Metadata:    map[string]string{"adoption_id": a.ID, "log_id": e.ID},
	})
	return e, nil
}

// SetStatus es el override del admin: sin chequeo de ownership, puede reabrir.
// Reabrir deja RiskFlagged y la respuesta anterior como estaban.
func (s *Service) SetStatus(ctx context.Context, logID, status string, text *string) (Entry, error) {
	logID = strings.TrimSpace(logID)
	if logID == "" {
		return Entry{}, ErrInvalidInput
	}
	to, err := ParseStatus(status)
	if err != nil {
		return Entry{}, err
	}
	if text != nil {
		clean := sanitize.Text(*text)
		text = &clean
	}

	e, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		return Entry{}, err
	}
	return s.applyStatus(ctx, e, to, text)
}

func (s *Service) applyStatus(ctx context.Context, e Entry, to Status, text *string) (Entry, error) {
	if e.Status != to || to == StatusResponded {
		if err := alertFlow.Check(e.Status, to); err != nil {
			return Entry{}, err
		}
	}

	if text != nil {
		e.ResponseText = text
	}
	if to == StatusResponded {
		now := s.now()
		e.RespondedAt = &now
	}
	e.Status = to

	if err := s.repo.UpdateResponse(ctx, e.ID, e.Status, e.ResponseText, e.RespondedAt); err != nil {
		return Entry{}, err
	}
	s.escalator.Transitioned(alertSubject, string(to))
	return e, nil
}
