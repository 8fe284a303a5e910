package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pet-adoption-welfare/internal/domain/adoptions"
	"pet-adoption-welfare/internal/domain/distress"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/domain/shelters"
	"pet-adoption-welfare/internal/domain/welfare"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	s := NewStore(db)
	ctx := context.Background()
	if err := s.Pets().Create(ctx, pets.Pet{ID: "pet-1", ShelterID: "shelter-1", Name: "Luna", Species: pets.SpeciesDog, Status: pets.StatusAvailable, CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	if err := s.Adoptions().Create(ctx, adoptions.Adoption{ID: "ad-1", UserID: "u-1", PetID: "pet-1", Status: adoptions.StatusPending, CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("seed adoption: %v", err)
	}
	return s
}

func TestStore_ApproveCommitsBothWrites(t *testing.T) {
	s := setupTestStore(t)
	svc := adoptions.NewService(s.Adoptions(), s.Pets(), s)

	a, err := svc.Approve(context.Background(), "ad-1", "shelter-1")
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	got, _ := s.Adoptions().GetByID(context.Background(), a.ID)
	if got.Status != adoptions.StatusActive || got.AdoptionDate == nil {
		t.Fatalf("unexpected adoption: %+v", got)
	}
	p, _ := s.Pets().GetByID(context.Background(), "pet-1")
	if p.Status != pets.StatusAdopted {
		t.Fatalf("expected adopted pet, got %s", p.Status)
	}
}

func TestStore_InTx_RollsBack(t *testing.T) {
	s := setupTestStore(t)
	boom := errors.New("boom")

	err := s.InTx(context.Background(), func(tx adoptions.TxStores) error {
		a, _ := tx.Adoptions.GetByID(context.Background(), "ad-1")
		a.Status = adoptions.StatusActive
		a.AdoptionDate = &t0
		if err := tx.Adoptions.Update(context.Background(), a); err != nil {
			return err
		}
		if err := tx.Pets.SetStatus(context.Background(), "pet-1", pets.StatusAdopted, t0); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	a, _ := s.Adoptions().GetByID(context.Background(), "ad-1")
	p, _ := s.Pets().GetByID(context.Background(), "pet-1")
	if a.Status != adoptions.StatusPending || a.AdoptionDate != nil || p.Status != pets.StatusAvailable {
		t.Fatalf("writes leaked: adoption=%+v pet=%s", a, p.Status)
	}
}

func TestStore_DuplicateApplicationIndex(t *testing.T) {
	s := setupTestStore(t)
	err := s.Adoptions().Create(context.Background(), adoptions.Adoption{ID: "ad-2", UserID: "u-1", PetID: "pet-1", Status: adoptions.StatusPending, CreatedAt: t0})
	if !errors.Is(err, adoptions.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestStore_NotFoundSentinels(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	if _, err := s.Pets().GetByID(ctx, "ghost"); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("pets: %v", err)
	}
	if _, err := s.Adoptions().GetByID(ctx, "ghost"); !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("adoptions: %v", err)
	}
	if err := s.Pets().SetStatus(ctx, "ghost", pets.StatusAdopted, t0); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("SetStatus: %v", err)
	}
	if _, err := s.Welfare().GetByID(ctx, "ghost"); !errors.Is(err, welfare.ErrNotFound) {
		t.Fatalf("welfare: %v", err)
	}
	if _, err := s.Distress().GetByID(ctx, "ghost"); !errors.Is(err, distress.ErrNotFound) {
		t.Fatalf("distress: %v", err)
	}
	if _, err := s.Shelters().GetByID(ctx, "ghost"); !errors.Is(err, shelters.ErrNotFound) {
		t.Fatalf("shelters: %v", err)
	}
}

func TestStore_WelfareChecklistAndAlerts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	repo := s.Welfare()

	no := false
	yes := true
	e := welfare.Entry{
		ID:         "w-1",
		AdoptionID: "ad-1",
		Checklist:  welfare.Checklist{MorningFeed: &no, EveningFeed: &no, Walk: &yes, Extra: map[string]bool{"brushing": true}},
		Mood:       welfare.MoodLethargic,
		Status:     welfare.StatusPending,
		CreatedAt:  t0,
	}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := repo.Create(ctx, welfare.Entry{ID: "w-2", AdoptionID: "ad-1", Status: welfare.StatusPending, CreatedAt: t0.Add(time.Hour)}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByID(ctx, "w-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if !got.Checklist.MissedBothFeeds() || got.Checklist.Walk == nil || !*got.Checklist.Walk || !got.Checklist.Extra["brushing"] {
		t.Fatalf("checklist lost in storage: %+v", got.Checklist)
	}

	recent, _ := repo.Recent(ctx, "ad-1", 1)
	if len(recent) != 1 || recent[0].ID != "w-2" {
		t.Fatalf("expected newest first, got %+v", recent)
	}
	since, _ := repo.ListSince(ctx, "ad-1", t0)
	if len(since) != 1 || since[0].ID != "w-2" {
		t.Fatalf("ListSince must be exclusive, got %+v", since)
	}

	if err := repo.MarkRisk(ctx, "w-1", "Lethargic mood reported"); err != nil {
		t.Fatalf("MarkRisk error: %v", err)
	}
	alerts, err := repo.ListFlaggedByShelter(ctx, "shelter-1")
	if err != nil {
		t.Fatalf("ListFlaggedByShelter error: %v", err)
	}
	if len(alerts) != 1 || alerts[0].ID != "w-1" || alerts[0].PetName != "Luna" || alerts[0].AdopterID != "u-1" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
	if alerts[0].RiskReason == nil || *alerts[0].RiskReason != "Lethargic mood reported" {
		t.Fatalf("reason lost: %+v", alerts[0].Entry)
	}
	if alerts[0].Status != welfare.StatusPending || !alerts[0].CreatedAt.Equal(t0) || !alerts[0].RiskFlagged {
		t.Fatalf("joined entry columns lost: %+v", alerts[0].Entry)
	}

	text := "we will call you"
	at := t0.Add(2 * time.Hour)
	if err := repo.UpdateResponse(ctx, "w-1", welfare.StatusResponded, &text, &at); err != nil {
		t.Fatalf("UpdateResponse error: %v", err)
	}
	got, _ = repo.GetByID(ctx, "w-1")
	if got.Status != welfare.StatusResponded || !got.RiskFlagged || got.ResponseText == nil || got.RespondedAt == nil {
		t.Fatalf("unexpected responded entry: %+v", got)
	}
}

func TestStore_SheltersUpsertKeepsVerification(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	repo := s.Shelters()

	lat, lng := -12.05, -77.04
	if err := repo.Upsert(ctx, shelters.Shelter{ID: "shelter-1", Name: "Patitas", Latitude: &lat, Longitude: &lng, CreatedAt: t0, UpdatedAt: t0}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	sh, _ := repo.GetByID(ctx, "shelter-1")
	sh.Verified = true
	sh.VerifiedAt = &t0
	if err := repo.Update(ctx, sh); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if err := repo.Upsert(ctx, shelters.Shelter{ID: "shelter-1", Name: "Patitas Lima", CreatedAt: t0, UpdatedAt: t0.Add(time.Hour)}); err != nil {
		t.Fatalf("second Upsert error: %v", err)
	}
	verified, _ := repo.ListVerified(ctx)
	if len(verified) != 1 || verified[0].Name != "Patitas Lima" || !verified[0].Verified {
		t.Fatalf("unexpected verified list: %+v", verified)
	}
}

func TestStore_DistressListFilters(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	repo := s.Distress()

	for i, st := range []distress.Status{distress.StatusOpen, distress.StatusResolved, distress.StatusOpen} {
		rep := distress.Report{ID: fmt.Sprintf("r-%d", i), Description: "x", Status: st, CreatedAt: t0.Add(time.Duration(i) * time.Minute), UpdatedAt: t0}
		if err := repo.Create(ctx, rep); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	open, _ := repo.List(ctx, distress.StatusOpen)
	if len(open) != 2 || open[0].ID != "r-2" {
		t.Fatalf("unexpected open list: %+v", open)
	}
	all, _ := repo.List(ctx, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(all))
	}

	rep := open[0]
	d := 4.2
	rep.Status = distress.StatusNotified
	rep.AssignedShelterID = "shelter-1"
	rep.DistanceKM = &d
	if err := repo.Update(ctx, rep); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	got, _ := repo.GetByID(ctx, rep.ID)
	if got.Status != distress.StatusNotified || got.DistanceKM == nil || *got.DistanceKM != d {
		t.Fatalf("unexpected report: %+v", got)
	}
}
