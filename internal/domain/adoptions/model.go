package adoptions

import "time"

// Status de la adopción. approved queda como alias histórico de active.
// @Enum pending, approved, active, rejected, completed, cancelled
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsMonitoring: la ventana de 90 días está corriendo.
func (s Status) IsMonitoring() bool {
	return s == StatusActive || s == StatusApproved
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// blocksReapply: una solicitud en estos estados impide otra para el mismo par adoptante-mascota.
func (s Status) blocksReapply() bool {
	switch s {
	case StatusPending, StatusApproved, StatusActive, StatusCompleted:
		return true
	default:
		return false
	}
}

type Adoption struct {
	ID     string
	UserID string // adoptante
	PetID  string

	Status Status

	// Se fija al aprobar; ancla el cálculo de día y fase.
	AdoptionDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
