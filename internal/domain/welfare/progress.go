package welfare

import (
	"math"
	"time"
)

const (
	// TotalDays es la ventana de seguimiento.
	TotalDays = 90

	phase1End = 3
	phase2End = 21

	StreakWindow = 7 * 24 * time.Hour
)

// PhaseInfo describe la fase actual y el avance dentro de ella.
type PhaseInfo struct {
	Phase    int    `json:"phase"`
	Name     string `json:"name"`
	StartDay int    `json:"start_day"`
	EndDay   int    `json:"end_day"`
	Progress int    `json:"progress"`
}

// Progress son los valores derivados que se recalculan en cada lectura.
type Progress struct {
	CurrentDay      int       `json:"current_day"`
	Phase           PhaseInfo `json:"phase_info"`
	OverallProgress int       `json:"overall_progress"`
	Streak          int       `json:"streak"`
	IsCompleted     bool      `json:"is_completed"`
}

// CurrentDay = max(1, ceil(días transcurridos)). now antes de adoptionDate da 1.
func CurrentDay(adoptionDate, now time.Time) int {
	elapsed := now.Sub(adoptionDate)
	if elapsed <= 0 {
		return 1
	}
	day := int(math.Ceil(elapsed.Hours() / 24))
	if day < 1 {
		return 1
	}
	return day
}

func PhaseFor(day int) PhaseInfo {
	switch {
	case day <= phase1End:
		return PhaseInfo{Phase: 1, Name: "Decompression", StartDay: 1, EndDay: phase1End, Progress: PhaseProgress(day)}
	case day <= phase2End:
		return PhaseInfo{Phase: 2, Name: "Learning & Routine", StartDay: phase1End + 1, EndDay: phase2End, Progress: PhaseProgress(day)}
	default:
		return PhaseInfo{Phase: 3, Name: "Bonding & Confidence", StartDay: phase2End + 1, EndDay: TotalDays, Progress: PhaseProgress(day)}
	}
}

// PhaseProgress es el % dentro de la fase, redondeado y acotado a [0,100].
func PhaseProgress(day int) int {
	var pct float64
	switch {
	case day <= phase1End:
		pct = float64(day) / phase1End * 100
	case day <= phase2End:
		pct = float64(day-phase1End) / (phase2End - phase1End) * 100
	default:
		pct = float64(day-phase2End) / (TotalDays - phase2End) * 100
	}
	return clampPct(math.Round(pct))
}

func OverallProgress(day int) int {
	return clampPct(math.Round(float64(day) / TotalDays * 100))
}

// Streak cuenta entradas en (now-7d, now]. No exige días consecutivos.
func Streak(entries []Entry, now time.Time) int {
	since := now.Add(-StreakWindow)
	n := 0
	for _, e := range entries {
		if e.CreatedAt.After(since) && !e.CreatedAt.After(now) {
			n++
		}
	}
	return n
}

func IsCompleted(day int) bool {
	return day > TotalDays
}

func Compute(adoptionDate, now time.Time, lastWeek []Entry) Progress {
	day := CurrentDay(adoptionDate, now)
	return Progress{
		CurrentDay:      day,
		Phase:           PhaseFor(day),
		OverallProgress: OverallProgress(day),
		Streak:          Streak(lastWeek, now),
		IsCompleted:     IsCompleted(day),
	}
}

func clampPct(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
