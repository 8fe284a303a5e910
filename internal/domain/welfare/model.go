package welfare

import (
	"strings"
	"time"
)

// Mood es el estado de ánimo reportado por el adoptante.
// @Enum anxious, cautious, curious, playful, happy, content, lethargic, withdrawn
type Mood string

const (
	MoodAnxious   Mood = "anxious"
	MoodCautious  Mood = "cautious"
	MoodCurious   Mood = "curious"
	MoodPlayful   Mood = "playful"
	MoodHappy     Mood = "happy"
	MoodContent   Mood = "content"
	MoodLethargic Mood = "lethargic"
	MoodWithdrawn Mood = "withdrawn"
)

// ParseMood acepta vacío (sin ánimo registrado) y rechaza valores fuera del enum.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "", MoodAnxious, MoodCautious, MoodCurious, MoodPlayful, MoodHappy, MoodContent, MoodLethargic, MoodWithdrawn:
		return m, nil
	default:
		return "", ErrInvalidInput
	}
}

func (m Mood) isAnxious() bool {
	return m == MoodAnxious || m == MoodWithdrawn
}

// Status de respuesta del refugio. Independiente de RiskFlagged.
// @Enum pending, responded
type Status string

const (
	StatusPending   Status = "pending"
	StatusResponded Status = "responded"
)

func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusResponded:
		return StatusResponded, nil
	default:
		return "", ErrInvalidInput
	}
}

// Entry es un registro diario de bienestar. Nunca se borra; después del alta
// solo cambian Status, ResponseText y RespondedAt.
type Entry struct {
	ID         string
	AdoptionID string

	Checklist Checklist
	Mood      Mood
	Notes     string

	RiskFlagged bool
	RiskReason  *string

	Status       Status
	ResponseText *string
	RespondedAt  *time.Time

	CreatedAt time.Time
}

// Alert es una entrada marcada con los datos de mascota y adoptante para el refugio.
type Alert struct {
	Entry

	PetID       string
	PetName     string
	PetImageURL string
	AdopterID   string
	ShelterID   string
}
