package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption-welfare/internal/domain/distress"
)

const reportColumns = `
	id, reporter_user_id,
	description, latitude, longitude, image_url,
	status, assigned_shelter_id, distance_km, resolution_note,
	created_at, updated_at, notified_at, resolved_at`

type DistressRepo struct {
	db dbtx
}

func NewDistressRepo(db dbtx) *DistressRepo {
	return &DistressRepo{db: db}
}

func (r *DistressRepo) Create(ctx context.Context, rep distress.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO distress_reports (`+reportColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		rep.ID,
		rep.ReporterUserID,
		rep.Description,
		rep.Latitude,
		rep.Longitude,
		rep.ImageURL,
		rep.Status,
		rep.AssignedShelterID,
		nullFloat(rep.DistanceKM),
		rep.ResolutionNote,
		rep.CreatedAt,
		rep.UpdatedAt,
		nullTime(rep.NotifiedAt),
		nullTime(rep.ResolvedAt),
	)
	return err
}

func (r *DistressRepo) Update(ctx context.Context, rep distress.Report) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE distress_reports
		SET
			status = $2,
			assigned_shelter_id = $3,
			distance_km = $4,
			resolution_note = $5,
			updated_at = $6,
			notified_at = $7,
			resolved_at = $8
		WHERE id = $1
	`,
		rep.ID,
		rep.Status,
		rep.AssignedShelterID,
		nullFloat(rep.DistanceKM),
		rep.ResolutionNote,
		rep.UpdatedAt,
		nullTime(rep.NotifiedAt),
		nullTime(rep.ResolvedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return distress.ErrNotFound
	}
	return nil
}

func (r *DistressRepo) GetByID(ctx context.Context, id string) (distress.Report, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM distress_reports WHERE id = $1`, id)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return distress.Report{}, distress.ErrNotFound
		}
		return distress.Report{}, err
	}
	return rep, nil
}

func (r *DistressRepo) List(ctx context.Context, status distress.Status) ([]distress.Report, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reportColumns+`
		FROM distress_reports
		WHERE $1::text = '' OR status = $1
		ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]distress.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func scanReport(s scanner) (distress.Report, error) {
	var (
		rep        distress.Report
		dist       sql.NullFloat64
		notifiedAt sql.NullTime
		resolvedAt sql.NullTime
	)
	if err := s.Scan(
		&rep.ID,
		&rep.ReporterUserID,
		&rep.Description,
		&rep.Latitude,
		&rep.Longitude,
		&rep.ImageURL,
		&rep.Status,
		&rep.AssignedShelterID,
		&dist,
		&rep.ResolutionNote,
		&rep.CreatedAt,
		&rep.UpdatedAt,
		&notifiedAt,
		&resolvedAt,
	); err != nil {
		return distress.Report{}, err
	}
	rep.DistanceKM = fromNullFloat(dist)
	rep.NotifiedAt = fromNullTime(notifiedAt)
	rep.ResolvedAt = fromNullTime(resolvedAt)
	return rep, nil
}
