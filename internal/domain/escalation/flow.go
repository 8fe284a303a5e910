package escalation

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Flow es una tabla de transiciones permitidas para un tipo de estado.
// Alertas de bienestar y reportes de rescate comparten la misma mecánica.
type Flow[S ~string] struct {
	subject string
	next    map[S]map[S]struct{}
}

func NewFlow[S ~string](subject string, edges map[S][]S) Flow[S] {
	next := make(map[S]map[S]struct{}, len(edges))
	for from, tos := range edges {
		set := make(map[S]struct{}, len(tos))
		for _, to := range tos {
			set[to] = struct{}{}
		}
		next[from] = set
	}
	return Flow[S]{subject: subject, next: next}
}

func (f Flow[S]) Subject() string { return f.subject }

func (f Flow[S]) Can(from, to S) bool {
	_, ok := f.next[from][to]
	return ok
}

// Check devuelve ErrInvalidTransition envuelto si from -> to no está en la tabla.
func (f Flow[S]) Check(from, to S) error {
	if f.Can(from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s %s -> %s", ErrInvalidTransition, f.subject, from, to)
}
