package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pet-adoption-welfare/internal/domain/welfare"
)

const welfareColumns = `
	w.id, w.adoption_id,
	w.checklist, w.mood, w.notes,
	w.risk_flagged, w.risk_reason,
	w.status, w.response_text, w.responded_at,
	w.created_at`

type WelfareRepo struct {
	db dbtx
}

func NewWelfareRepo(db dbtx) *WelfareRepo {
	return &WelfareRepo{db: db}
}

func (r *WelfareRepo) Create(ctx context.Context, e welfare.Entry) error {
	checklist, err := json.Marshal(e.Checklist)
	if err != nil {
		return fmt.Errorf("encode checklist: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO welfare_logs (
			id, adoption_id,
			checklist, mood, notes,
			risk_flagged, risk_reason,
			status, response_text, responded_at,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		e.ID,
		e.AdoptionID,
		checklist,
		e.Mood,
		e.Notes,
		e.RiskFlagged,
		nullString(e.RiskReason),
		e.Status,
		nullString(e.ResponseText),
		nullTime(e.RespondedAt),
		e.CreatedAt,
	)
	return err
}

func (r *WelfareRepo) GetByID(ctx context.Context, id string) (welfare.Entry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+welfareColumns+` FROM welfare_logs w WHERE w.id = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return welfare.Entry{}, welfare.ErrNotFound
		}
		return welfare.Entry{}, err
	}
	return e, nil
}

func (r *WelfareRepo) Recent(ctx context.Context, adoptionID string, limit int) ([]welfare.Entry, error) {
	return r.list(ctx, `
		SELECT `+welfareColumns+`
		FROM welfare_logs w
		WHERE w.adoption_id = $1
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT NULLIF($2, 0)
	`, adoptionID, limit)
}

func (r *WelfareRepo) ListSince(ctx context.Context, adoptionID string, since time.Time) ([]welfare.Entry, error) {
	return r.list(ctx, `
		SELECT `+welfareColumns+`
		FROM welfare_logs w
		WHERE w.adoption_id = $1 AND w.created_at > $2
		ORDER BY w.created_at DESC, w.id DESC
	`, adoptionID, since)
}

func (r *WelfareRepo) MarkRisk(ctx context.Context, id, reason string) error {
	return r.exec(ctx, `
		UPDATE welfare_logs SET risk_flagged = TRUE, risk_reason = $2 WHERE id = $1
	`, id, reason)
}

func (r *WelfareRepo) UpdateResponse(ctx context.Context, id string, status welfare.Status, text *string, respondedAt *time.Time) error {
	return r.exec(ctx, `
		UPDATE welfare_logs
		SET status = $2, response_text = $3, responded_at = $4
		WHERE id = $1
	`, id, status, nullString(text), nullTime(respondedAt))
}

func (r *WelfareRepo) ListFlaggedByShelter(ctx context.Context, shelterID string) ([]welfare.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+welfareColumns+`,
			p.id, p.name, p.image_url, a.user_id, p.shelter_id
		FROM welfare_logs w
		JOIN adoptions a ON a.id = w.adoption_id
		JOIN pets p ON p.id = a.pet_id
		WHERE w.risk_flagged AND p.shelter_id = $1
		ORDER BY w.created_at DESC, w.id DESC
	`, shelterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]welfare.Alert, 0)
	for rows.Next() {
		var a welfare.Alert
		e, err := scanEntry(rows, &a.PetID, &a.PetName, &a.PetImageURL, &a.AdopterID, &a.ShelterID)
		if err != nil {
			return nil, err
		}
		a.Entry = e
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *WelfareRepo) list(ctx context.Context, query string, args ...any) ([]welfare.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]welfare.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *WelfareRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return welfare.ErrNotFound
	}
	return nil
}

// scanEntry lee las columnas de welfareColumns y después extra, en ese orden.
func scanEntry(s scanner, extra ...any) (welfare.Entry, error) {
	var (
		e           welfare.Entry
		checklist   []byte
		reason      sql.NullString
		response    sql.NullString
		respondedAt sql.NullTime
	)
	dest := []any{
		&e.ID,
		&e.AdoptionID,
		&checklist,
		&e.Mood,
		&e.Notes,
		&e.RiskFlagged,
		&reason,
		&e.Status,
		&response,
		&respondedAt,
		&e.CreatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return welfare.Entry{}, err
	}

	if len(checklist) > 0 {
		if err := json.Unmarshal(checklist, &e.Checklist); err != nil {
			return welfare.Entry{}, fmt.Errorf("decode checklist %s: %w", e.ID, err)
		}
	}
	e.RiskReason = fromNullString(reason)
	e.ResponseText = fromNullString(response)
	e.RespondedAt = fromNullTime(respondedAt)
	return e, nil
}
