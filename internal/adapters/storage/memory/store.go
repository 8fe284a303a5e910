package memory

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-adoption-welfare/internal/domain/adoptions"
	"pet-adoption-welfare/internal/domain/distress"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/domain/shelters"
	"pet-adoption-welfare/internal/domain/welfare"
)

// Store guarda todo en memoria detrás de un único lock. Pensado para dev y tests.
type Store struct {
	mu sync.RWMutex

	pets      map[string]pets.Pet
	shelters  map[string]shelters.Shelter
	adoptions map[string]adoptions.Adoption
	welfare   map[string]welfare.Entry
	distress  map[string]distress.Report
}

func NewStore() *Store {
	return &Store{
		pets:      make(map[string]pets.Pet),
		shelters:  make(map[string]shelters.Shelter),
		adoptions: make(map[string]adoptions.Adoption),
		welfare:   make(map[string]welfare.Entry),
		distress:  make(map[string]distress.Report),
	}
}

func (s *Store) Pets() pets.Repository           { return petRepo{s} }
func (s *Store) Shelters() shelters.Repository   { return shelterRepo{s} }
func (s *Store) Adoptions() adoptions.Repository { return adoptionRepo{s} }
func (s *Store) Welfare() welfare.Repository     { return welfareRepo{s} }
func (s *Store) Distress() distress.Repository   { return distressRepo{s} }

// InTx corre fn sobre copias de adopciones y mascotas y las publica solo si fn
// termina sin error. El lock de escritura se mantiene durante todo fn.
func (s *Store) InTx(ctx context.Context, fn func(adoptions.TxStores) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stagedAdoptions := maps.Clone(s.adoptions)
	stagedPets := maps.Clone(s.pets)

	err := fn(adoptions.TxStores{
		Adoptions: stagedAdoptionWriter(stagedAdoptions),
		Pets:      stagedPetWriter(stagedPets),
	})
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.adoptions = stagedAdoptions
	s.pets = stagedPets
	return nil
}

// ---- pets ----

type petRepo struct{ s *Store }

func (r petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[p.ID]; exists {
		return pets.ErrInvalidInput
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r petRepo) ListAvailable(ctx context.Context) ([]pets.Pet, error) {
	return r.list(func(p pets.Pet) bool { return p.Status == pets.StatusAvailable }), nil
}

func (r petRepo) ListByShelter(ctx context.Context, shelterID string) ([]pets.Pet, error) {
	return r.list(func(p pets.Pet) bool { return p.ShelterID == shelterID }), nil
}

func (r petRepo) SetStatus(ctx context.Context, id string, status pets.Status, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return stagedPetWriter(r.s.pets).SetStatus(ctx, id, status, at)
}

func (r petRepo) list(keep func(pets.Pet) bool) []pets.Pet {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if keep(p) {
			out = append(out, p)
		}
	}
	// Orden estable por created_at asc
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// stagedPetWriter opera sobre un mapa sin tomar el lock; el caller ya lo tiene.
type stagedPetWriter map[string]pets.Pet

func (m stagedPetWriter) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := m[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (m stagedPetWriter) SetStatus(ctx context.Context, id string, status pets.Status, at time.Time) error {
	p, ok := m[id]
	if !ok {
		return pets.ErrNotFound
	}
	p.Status = status
	p.UpdatedAt = at
	m[id] = p
	return nil
}

// ---- shelters ----

type shelterRepo struct{ s *Store }

func (r shelterRepo) Upsert(ctx context.Context, sh shelters.Shelter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if cur, ok := r.s.shelters[sh.ID]; ok {
		sh.Verified = cur.Verified
		sh.VerifiedAt = cur.VerifiedAt
		sh.CreatedAt = cur.CreatedAt
	}
	r.s.shelters[sh.ID] = sh
	return nil
}

func (r shelterRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sh, ok := r.s.shelters[id]
	if !ok {
		return shelters.Shelter{}, shelters.ErrNotFound
	}
	return sh, nil
}

func (r shelterRepo) Update(ctx context.Context, sh shelters.Shelter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.shelters[sh.ID]; !ok {
		return shelters.ErrNotFound
	}
	r.s.shelters[sh.ID] = sh
	return nil
}

func (r shelterRepo) ListVerified(ctx context.Context) ([]shelters.Shelter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]shelters.Shelter, 0)
	for _, sh := range r.s.shelters {
		if sh.Verified {
			out = append(out, sh)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- adoptions ----

type adoptionRepo struct{ s *Store }

func (r adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Igual que el índice único parcial de Postgres.
	for _, cur := range r.s.adoptions {
		if cur.UserID == a.UserID && cur.PetID == a.PetID && holdsApplication(cur.Status) {
			return adoptions.ErrDuplicateApplication
		}
	}
	r.s.adoptions[a.ID] = a
	return nil
}

func (r adoptionRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return stagedAdoptionWriter(r.s.adoptions).Update(ctx, a)
}

func (r adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return stagedAdoptionWriter(r.s.adoptions).GetByID(ctx, id)
}

func (r adoptionRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return r.list(func(a adoptions.Adoption) bool { return a.UserID == userID }), nil
}

func (r adoptionRepo) ListByUserAndPet(ctx context.Context, userID, petID string) ([]adoptions.Adoption, error) {
	return r.list(func(a adoptions.Adoption) bool { return a.UserID == userID && a.PetID == petID }), nil
}

func (r adoptionRepo) ListByShelter(ctx context.Context, shelterID string) ([]adoptions.Adoption, error) {
	r.s.mu.RLock()
	owned := make(map[string]bool)
	for _, p := range r.s.pets {
		if p.ShelterID == shelterID {
			owned[p.ID] = true
		}
	}
	r.s.mu.RUnlock()

	return r.list(func(a adoptions.Adoption) bool { return owned[a.PetID] }), nil
}

// list devuelve más nuevas primero.
func (r adoptionRepo) list(keep func(adoptions.Adoption) bool) []adoptions.Adoption {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]adoptions.Adoption, 0)
	for _, a := range r.s.adoptions {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func holdsApplication(s adoptions.Status) bool {
	switch s {
	case adoptions.StatusPending, adoptions.StatusApproved, adoptions.StatusActive, adoptions.StatusCompleted:
		return true
	default:
		return false
	}
}

type stagedAdoptionWriter map[string]adoptions.Adoption

func (m stagedAdoptionWriter) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	a, ok := m[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (m stagedAdoptionWriter) Update(ctx context.Context, a adoptions.Adoption) error {
	if _, ok := m[a.ID]; !ok {
		return adoptions.ErrNotFound
	}
	m[a.ID] = a
	return nil
}

// ---- welfare ----

type welfareRepo struct{ s *Store }

func (r welfareRepo) Create(ctx context.Context, e welfare.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return welfare.ErrInvalidInput
	}
	r.s.welfare[e.ID] = e
	return nil
}

func (r welfareRepo) GetByID(ctx context.Context, id string) (welfare.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.welfare[id]
	if !ok {
		return welfare.Entry{}, welfare.ErrNotFound
	}
	return e, nil
}

func (r welfareRepo) Recent(ctx context.Context, adoptionID string, limit int) ([]welfare.Entry, error) {
	out := r.list(func(e welfare.Entry) bool { return e.AdoptionID == adoptionID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r welfareRepo) ListSince(ctx context.Context, adoptionID string, since time.Time) ([]welfare.Entry, error) {
	return r.list(func(e welfare.Entry) bool {
		return e.AdoptionID == adoptionID && e.CreatedAt.After(since)
	}), nil
}

func (r welfareRepo) MarkRisk(ctx context.Context, id, reason string) error {
	return r.update(id, func(e *welfare.Entry) {
		e.RiskFlagged = true
		e.RiskReason = &reason
	})
}

func (r welfareRepo) UpdateResponse(ctx context.Context, id string, status welfare.Status, text *string, respondedAt *time.Time) error {
	return r.update(id, func(e *welfare.Entry) {
		e.Status = status
		e.ResponseText = text
		e.RespondedAt = respondedAt
	})
}

func (r welfareRepo) ListFlaggedByShelter(ctx context.Context, shelterID string) ([]welfare.Alert, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]welfare.Alert, 0)
	for _, e := range r.s.welfare {
		if !e.RiskFlagged {
			continue
		}
		a, ok := r.s.adoptions[e.AdoptionID]
		if !ok {
			continue
		}
		p, ok := r.s.pets[a.PetID]
		if !ok || p.ShelterID != shelterID {
			continue
		}
		out = append(out, welfare.Alert{
			Entry:       e,
			PetID:       p.ID,
			PetName:     p.Name,
			PetImageURL: p.ImageURL,
			AdopterID:   a.UserID,
			ShelterID:   p.ShelterID,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return newerEntry(out[i].Entry, out[j].Entry)
	})
	return out, nil
}

func (r welfareRepo) list(keep func(welfare.Entry) bool) []welfare.Entry {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]welfare.Entry, 0)
	for _, e := range r.s.welfare {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return newerEntry(out[i], out[j]) })
	return out
}

func (r welfareRepo) update(id string, apply func(*welfare.Entry)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.welfare[id]
	if !ok {
		return welfare.ErrNotFound
	}
	apply(&e)
	r.s.welfare[id] = e
	return nil
}

// newerEntry: created_at desc; empate por id para que el orden sea estable.
func newerEntry(a, b welfare.Entry) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// ---- distress ----

type distressRepo struct{ s *Store }

func (r distressRepo) Create(ctx context.Context, rep distress.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.distress[rep.ID] = rep
	return nil
}

func (r distressRepo) Update(ctx context.Context, rep distress.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.distress[rep.ID]; !ok {
		return distress.ErrNotFound
	}
	r.s.distress[rep.ID] = rep
	return nil
}

func (r distressRepo) GetByID(ctx context.Context, id string) (distress.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rep, ok := r.s.distress[id]
	if !ok {
		return distress.Report{}, distress.ErrNotFound
	}
	return rep, nil
}

func (r distressRepo) List(ctx context.Context, status distress.Status) ([]distress.Report, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]distress.Report, 0)
	for _, rep := range r.s.distress {
		if status == "" || rep.Status == status {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
