package welfare

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Ventana de patrón: las 3 entradas más recientes, incluida la nueva.
const SentinelWindow = 3

var ErrDegradedSentinel = errors.New("sentinel degraded: pattern window unavailable")

var healthKeywords = []string{"sick", "vomit", "blood", "injury", "hurt"}

const excerptRunes = 50

// Rule es un predicado puro. Match devuelve el motivo si la regla aplica.
// window solo viene cargada si NeedsWindow es true.
type Rule struct {
	Name        string
	NeedsWindow bool
	Match       func(e Entry, window []Entry) (string, bool)
}

// DefaultRules en orden de prioridad: gana la primera que aplica.
var DefaultRules = []Rule{
	{
		Name: "lethargic_mood",
		Match: func(e Entry, _ []Entry) (string, bool) {
			if e.Mood != MoodLethargic {
				return "", false
			}
			return "Lethargic mood reported; the pet may need a vet check", true
		},
	},
	{
		Name: "health_keyword",
		Match: func(e Entry, _ []Entry) (string, bool) {
			lower := strings.ToLower(e.Notes)
			for _, kw := range healthKeywords {
				if strings.Contains(lower, kw) {
					return fmt.Sprintf("Health concern mentioned in notes: %q", excerpt(e.Notes, excerptRunes)), true
				}
			}
			return "", false
		},
	},
	{
		Name: "missed_meals",
		Match: func(e Entry, _ []Entry) (string, bool) {
			if !e.Checklist.MissedBothFeeds() {
				return "", false
			}
			return "Animal has not eaten all day: morning and evening feeds were both missed", true
		},
	},
	{
		Name:        "persistent_anxiety",
		NeedsWindow: true,
		Match: func(_ Entry, window []Entry) (string, bool) {
			if len(window) != SentinelWindow {
				return "", false
			}
			for _, w := range window {
				if !w.Mood.isAnxious() {
					return "", false
				}
			}
			return "Persistent anxiety: the last 3 logs all report an anxious or withdrawn mood", true
		},
	},
}

// Verdict es el resultado de evaluar una entrada.
type Verdict struct {
	Flagged bool
	Rule    string
	Reason  string
}

// WindowLoader trae las entradas más recientes de la adopción (nueva incluida).
type WindowLoader func(ctx context.Context) ([]Entry, error)

type Sentinel struct {
	rules []Rule
}

func NewSentinel(rules ...Rule) *Sentinel {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Sentinel{rules: rules}
}

// Evaluate recorre las reglas en orden. La ventana se pide una sola vez y solo
// al llegar a la primera regla que la necesita. Si falla la carga devuelve
// ErrDegradedSentinel y un veredicto sin marcar.
func (s *Sentinel) Evaluate(ctx context.Context, e Entry, load WindowLoader) (Verdict, error) {
	var (
		window []Entry
		loaded bool
	)
	for _, r := range s.rules {
		if r.NeedsWindow && !loaded {
			if load == nil {
				return Verdict{}, ErrDegradedSentinel
			}
			w, err := load(ctx)
			if err != nil {
				return Verdict{}, fmt.Errorf("%w: %v", ErrDegradedSentinel, err)
			}
			if len(w) > SentinelWindow {
				w = w[:SentinelWindow]
			}
			window, loaded = w, true
		}
		if reason, ok := r.Match(e, window); ok {
			return Verdict{Flagged: true, Rule: r.Name, Reason: reason}, nil
		}
	}
	return Verdict{}, nil
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
