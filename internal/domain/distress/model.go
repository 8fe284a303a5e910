package distress

import "time"

// Status del reporte: open -> dispatched -> notified -> resolved.
// @Enum open, dispatched, notified, resolved
type Status string

const (
	StatusOpen       Status = "open"
	StatusDispatched Status = "dispatched"
	StatusNotified   Status = "notified"
	StatusResolved   Status = "resolved"
)

// Report es un aviso público de un animal en peligro; no está atado a una adopción.
type Report struct {
	ID string

	// Vacío si lo envió alguien sin cuenta.
	ReporterUserID string

	Description string
	Latitude    float64
	Longitude   float64
	ImageURL    string

	Status            Status
	AssignedShelterID string
	DistanceKM        *float64
	ResolutionNote    string

	CreatedAt  time.Time
	UpdatedAt  time.Time
	NotifiedAt *time.Time
	ResolvedAt *time.Time
}
