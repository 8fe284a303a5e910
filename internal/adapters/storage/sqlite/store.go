package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pet-adoption-welfare/internal/domain/adoptions"
	"pet-adoption-welfare/internal/domain/distress"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/domain/shelters"
	"pet-adoption-welfare/internal/domain/welfare"
)

// Índices parciales que AutoMigrate no sabe expresar. Mismos que en Postgres.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS adoptions_open_application_uidx
		ON adoptions (user_id, pet_id)
		WHERE status IN ('pending', 'approved', 'active', 'completed')`,
	`CREATE UNIQUE INDEX IF NOT EXISTS adoptions_monitoring_pet_uidx
		ON adoptions (pet_id)
		WHERE status IN ('approved', 'active')`,
}

// Open abre (o crea) la base y aplica el esquema. dsn acepta lo mismo que
// el driver, p.ej. "welfare.db" o "file::memory:?cache=shared".
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite admite un solo escritor
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&shelterRow{}, &petRow{}, &adoptionRow{}, &welfareRow{}, &distressRow{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// Store implementa los repos de dominio sobre gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Pets() pets.Repository           { return petRepo{s.db} }
func (s *Store) Shelters() shelters.Repository   { return shelterRepo{s.db} }
func (s *Store) Adoptions() adoptions.Repository { return adoptionRepo{s.db} }
func (s *Store) Welfare() welfare.Repository     { return welfareRepo{s.db} }
func (s *Store) Distress() distress.Repository   { return distressRepo{s.db} }

func (s *Store) InTx(ctx context.Context, fn func(adoptions.TxStores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(adoptions.TxStores{
			Adoptions: adoptionRepo{tx},
			Pets:      petRepo{tx},
		})
	})
}

// ---- pets ----

type petRepo struct{ db *gorm.DB }

func (r petRepo) Create(ctx context.Context, p pets.Pet) error {
	row := toPetRow(p)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var row petRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return pets.Pet{}, notFound(err, pets.ErrNotFound)
	}
	return row.toDomain(), nil
}

func (r petRepo) ListAvailable(ctx context.Context) ([]pets.Pet, error) {
	return r.list(r.db.WithContext(ctx).Where("status = ?", string(pets.StatusAvailable)))
}

func (r petRepo) ListByShelter(ctx context.Context, shelterID string) ([]pets.Pet, error) {
	return r.list(r.db.WithContext(ctx).Where("shelter_id = ?", shelterID))
}

func (r petRepo) SetStatus(ctx context.Context, id string, status pets.Status, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&petRow{}).Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": utc(at)})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r petRepo) list(q *gorm.DB) ([]pets.Pet, error) {
	var rows []petRow
	if err := q.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ---- shelters ----

type shelterRepo struct{ db *gorm.DB }

func (r shelterRepo) Upsert(ctx context.Context, s shelters.Shelter) error {
	row := toShelterRow(s)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur shelterRow
		err := tx.First(&cur, "id = ?", s.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&row).Error
		case err != nil:
			return err
		}
		return tx.Model(&shelterRow{}).Where("id = ?", s.ID).Updates(map[string]any{
			"name":       row.Name,
			"email":      row.Email,
			"latitude":   row.Latitude,
			"longitude":  row.Longitude,
			"updated_at": row.UpdatedAt,
		}).Error
	})
}

func (r shelterRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	var row shelterRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return shelters.Shelter{}, notFound(err, shelters.ErrNotFound)
	}
	return row.toDomain(), nil
}

func (r shelterRepo) Update(ctx context.Context, s shelters.Shelter) error {
	row := toShelterRow(s)
	res := r.db.WithContext(ctx).Model(&shelterRow{}).Where("id = ?", s.ID).Select("*").Omit("id", "created_at").Updates(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shelters.ErrNotFound
	}
	return nil
}

func (r shelterRepo) ListVerified(ctx context.Context) ([]shelters.Shelter, error) {
	var rows []shelterRow
	if err := r.db.WithContext(ctx).Where("verified = ?", true).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]shelters.Shelter, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ---- adoptions ----

type adoptionRepo struct{ db *gorm.DB }

func (r adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	row := toAdoptionRow(a)
	err := r.db.WithContext(ctx).Create(&row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return adoptions.ErrDuplicateApplication
	}
	return err
}

func (r adoptionRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	res := r.db.WithContext(ctx).Model(&adoptionRow{}).Where("id = ?", a.ID).Updates(map[string]any{
		"status":        string(a.Status),
		"adoption_date": utcPtr(a.AdoptionDate),
		"updated_at":    utc(a.UpdatedAt),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	var row adoptionRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return adoptions.Adoption{}, notFound(err, adoptions.ErrNotFound)
	}
	return row.toDomain(), nil
}

func (r adoptionRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r adoptionRepo) ListByUserAndPet(ctx context.Context, userID, petID string) ([]adoptions.Adoption, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ? AND pet_id = ?", userID, petID))
}

func (r adoptionRepo) ListByShelter(ctx context.Context, shelterID string) ([]adoptions.Adoption, error) {
	return r.list(r.db.WithContext(ctx).
		Where("pet_id IN (?)", r.db.Model(&petRow{}).Select("id").Where("shelter_id = ?", shelterID)))
}

func (r adoptionRepo) list(q *gorm.DB) ([]adoptions.Adoption, error) {
	var rows []adoptionRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]adoptions.Adoption, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ---- welfare ----

type welfareRepo struct{ db *gorm.DB }

func (r welfareRepo) Create(ctx context.Context, e welfare.Entry) error {
	row := toWelfareRow(e)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r welfareRepo) GetByID(ctx context.Context, id string) (welfare.Entry, error) {
	var row welfareRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return welfare.Entry{}, notFound(err, welfare.ErrNotFound)
	}
	return row.toDomain(), nil
}

func (r welfareRepo) Recent(ctx context.Context, adoptionID string, limit int) ([]welfare.Entry, error) {
	q := r.db.WithContext(ctx).Where("adoption_id = ?", adoptionID)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.list(q)
}

func (r welfareRepo) ListSince(ctx context.Context, adoptionID string, since time.Time) ([]welfare.Entry, error) {
	return r.list(r.db.WithContext(ctx).Where("adoption_id = ? AND created_at > ?", adoptionID, utc(since)))
}

func (r welfareRepo) MarkRisk(ctx context.Context, id, reason string) error {
	return r.update(ctx, id, map[string]any{"risk_flagged": true, "risk_reason": reason})
}

func (r welfareRepo) UpdateResponse(ctx context.Context, id string, status welfare.Status, text *string, respondedAt *time.Time) error {
	return r.update(ctx, id, map[string]any{
		"status":        string(status),
		"response_text": text,
		"responded_at":  utcPtr(respondedAt),
	})
}

// gorm ignora embebidos no exportados al escanear; va como campo con tag embedded.
type flaggedRow struct {
	Log         welfareRow `gorm:"embedded"`
	PetID       string
	PetName     string
	PetImageURL string
	AdopterID   string
	ShelterID   string
}

func (r welfareRepo) ListFlaggedByShelter(ctx context.Context, shelterID string) ([]welfare.Alert, error) {
	var rows []flaggedRow
	err := r.db.WithContext(ctx).
		Table("welfare_logs AS w").
		Select(`w.*, p.id AS pet_id, p.name AS pet_name, p.image_url AS pet_image_url,
			a.user_id AS adopter_id, p.shelter_id AS shelter_id`).
		Joins("JOIN adoptions a ON a.id = w.adoption_id").
		Joins("JOIN pets p ON p.id = a.pet_id").
		Where("w.risk_flagged = ? AND p.shelter_id = ?", true, shelterID).
		Order("w.created_at DESC, w.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]welfare.Alert, 0, len(rows))
	for _, row := range rows {
		out = append(out, welfare.Alert{
			Entry:       row.Log.toDomain(),
			PetID:       row.PetID,
			PetName:     row.PetName,
			PetImageURL: row.PetImageURL,
			AdopterID:   row.AdopterID,
			ShelterID:   row.ShelterID,
		})
	}
	return out, nil
}

func (r welfareRepo) list(q *gorm.DB) ([]welfare.Entry, error) {
	var rows []welfareRow
	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]welfare.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r welfareRepo) update(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&welfareRow{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return welfare.ErrNotFound
	}
	return nil
}

// ---- distress ----

type distressRepo struct{ db *gorm.DB }

func (r distressRepo) Create(ctx context.Context, rep distress.Report) error {
	row := toDistressRow(rep)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r distressRepo) Update(ctx context.Context, rep distress.Report) error {
	row := toDistressRow(rep)
	res := r.db.WithContext(ctx).Model(&distressRow{}).Where("id = ?", rep.ID).Select("*").Omit("id", "created_at").Updates(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return distress.ErrNotFound
	}
	return nil
}

func (r distressRepo) GetByID(ctx context.Context, id string) (distress.Report, error) {
	var row distressRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return distress.Report{}, notFound(err, distress.ErrNotFound)
	}
	return row.toDomain(), nil
}

func (r distressRepo) List(ctx context.Context, status distress.Status) ([]distress.Report, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var rows []distressRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]distress.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
