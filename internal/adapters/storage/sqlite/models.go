package sqlite

import (
	"time"

	"gorm.io/datatypes"

	"pet-adoption-welfare/internal/domain/adoptions"
	"pet-adoption-welfare/internal/domain/distress"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/domain/shelters"
	"pet-adoption-welfare/internal/domain/welfare"
)

// Los timestamps los pone el dominio; gorm no los toca.

type shelterRow struct {
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Email      string
	Latitude   *float64
	Longitude  *float64
	Verified   bool `gorm:"not null;default:false;index"`
	VerifiedAt *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false"`
}

func (shelterRow) TableName() string { return "shelters" }

type petRow struct {
	ID        string `gorm:"primaryKey"`
	ShelterID string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Species   string `gorm:"not null"`
	Breed     string
	Sex       string
	ImageURL  string
	Notes     string
	Status    string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (petRow) TableName() string { return "pets" }

type adoptionRow struct {
	ID           string `gorm:"primaryKey"`
	UserID       string `gorm:"not null;index"`
	PetID        string `gorm:"not null;index"`
	Status       string `gorm:"not null"`
	AdoptionDate *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (adoptionRow) TableName() string { return "adoptions" }

type welfareRow struct {
	ID           string                                `gorm:"primaryKey"`
	AdoptionID   string                                `gorm:"not null;index:idx_welfare_adoption_created,priority:1"`
	Checklist    datatypes.JSONType[welfare.Checklist] `gorm:"not null"`
	Mood         string
	Notes        string
	RiskFlagged  bool `gorm:"not null;default:false"`
	RiskReason   *string
	Status       string `gorm:"not null"`
	ResponseText *string
	RespondedAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime:false;index:idx_welfare_adoption_created,priority:2"`
}

func (welfareRow) TableName() string { return "welfare_logs" }

type distressRow struct {
	ID                string `gorm:"primaryKey"`
	ReporterUserID    string
	Description       string  `gorm:"not null"`
	Latitude          float64 `gorm:"not null"`
	Longitude         float64 `gorm:"not null"`
	ImageURL          string
	Status            string `gorm:"not null;index"`
	AssignedShelterID string
	DistanceKM        *float64
	ResolutionNote    string
	CreatedAt         time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`
	NotifiedAt        *time.Time
	ResolvedAt        *time.Time
}

func (distressRow) TableName() string { return "distress_reports" }

// sqlite compara timestamps como texto: todo se guarda en UTC.
func utc(t time.Time) time.Time { return t.UTC() }

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toShelterRow(s shelters.Shelter) shelterRow {
	return shelterRow{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		Verified:   s.Verified,
		VerifiedAt: utcPtr(s.VerifiedAt),
		CreatedAt:  utc(s.CreatedAt),
		UpdatedAt:  utc(s.UpdatedAt),
	}
}

func (r shelterRow) toDomain() shelters.Shelter {
	return shelters.Shelter{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Verified:   r.Verified,
		VerifiedAt: r.VerifiedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toPetRow(p pets.Pet) petRow {
	return petRow{
		ID:        p.ID,
		ShelterID: p.ShelterID,
		Name:      p.Name,
		Species:   string(p.Species),
		Breed:     p.Breed,
		Sex:       string(p.Sex),
		ImageURL:  p.ImageURL,
		Notes:     p.Notes,
		Status:    string(p.Status),
		CreatedAt: utc(p.CreatedAt),
		UpdatedAt: utc(p.UpdatedAt),
	}
}

func (r petRow) toDomain() pets.Pet {
	return pets.Pet{
		ID:        r.ID,
		ShelterID: r.ShelterID,
		Name:      r.Name,
		Species:   pets.Species(r.Species),
		Breed:     r.Breed,
		Sex:       pets.Sex(r.Sex),
		ImageURL:  r.ImageURL,
		Notes:     r.Notes,
		Status:    pets.Status(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toAdoptionRow(a adoptions.Adoption) adoptionRow {
	return adoptionRow{
		ID:           a.ID,
		UserID:       a.UserID,
		PetID:        a.PetID,
		Status:       string(a.Status),
		AdoptionDate: utcPtr(a.AdoptionDate),
		CreatedAt:    utc(a.CreatedAt),
		UpdatedAt:    utc(a.UpdatedAt),
	}
}

func (r adoptionRow) toDomain() adoptions.Adoption {
	return adoptions.Adoption{
		ID:           r.ID,
		UserID:       r.UserID,
		PetID:        r.PetID,
		Status:       adoptions.Status(r.Status),
		AdoptionDate: r.AdoptionDate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toWelfareRow(e welfare.Entry) welfareRow {
	return welfareRow{
		ID:           e.ID,
		AdoptionID:   e.AdoptionID,
		Checklist:    datatypes.NewJSONType(e.Checklist),
		Mood:         string(e.Mood),
		Notes:        e.Notes,
		RiskFlagged:  e.RiskFlagged,
		RiskReason:   e.RiskReason,
		Status:       string(e.Status),
		ResponseText: e.ResponseText,
		RespondedAt:  utcPtr(e.RespondedAt),
		CreatedAt:    utc(e.CreatedAt),
	}
}

func (r welfareRow) toDomain() welfare.Entry {
	return welfare.Entry{
		ID:           r.ID,
		AdoptionID:   r.AdoptionID,
		Checklist:    r.Checklist.Data(),
		Mood:         welfare.Mood(r.Mood),
		Notes:        r.Notes,
		RiskFlagged:  r.RiskFlagged,
		RiskReason:   r.RiskReason,
		Status:       welfare.Status(r.Status),
		ResponseText: r.ResponseText,
		RespondedAt:  r.RespondedAt,
		CreatedAt:    r.CreatedAt,
	}
}

func toDistressRow(rep distress.Report) distressRow {
	return distressRow{
		ID:                rep.ID,
		ReporterUserID:    rep.ReporterUserID,
		Description:       rep.Description,
		Latitude:          rep.Latitude,
		Longitude:         rep.Longitude,
		ImageURL:          rep.ImageURL,
		Status:            string(rep.Status),
		AssignedShelterID: rep.AssignedShelterID,
		DistanceKM:        rep.DistanceKM,
		ResolutionNote:    rep.ResolutionNote,
		CreatedAt:         utc(rep.CreatedAt),
		UpdatedAt:         utc(rep.UpdatedAt),
		NotifiedAt:        utcPtr(rep.NotifiedAt),
		ResolvedAt:        utcPtr(rep.ResolvedAt),
	}
}

func (r distressRow) toDomain() distress.Report {
	return distress.Report{
		ID:                r.ID,
		ReporterUserID:    r.ReporterUserID,
		Description:       r.Description,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		ImageURL:          r.ImageURL,
		Status:            distress.Status(r.Status),
		AssignedShelterID: r.AssignedShelterID,
		DistanceKM:        r.DistanceKM,
		ResolutionNote:    r.ResolutionNote,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		NotifiedAt:        r.NotifiedAt,
		ResolvedAt:        r.ResolvedAt,
	}
}
