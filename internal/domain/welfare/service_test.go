package welfare

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"pet-adoption-welfare/internal/domain/adoptions"
	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/domain/pets"
	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/ports/auth"
	"pet-adoption-welfare/internal/ports/notify"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byID       map[string]Entry
	adoptions  map[string]adoptions.Adoption
	pets       map[string]pets.Pet
	failRecent bool
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:      map[string]Entry{},
		adoptions: map[string]adoptions.Adoption{},
		pets:      map[string]pets.Pet{},
	}
}

func (r *testRepo) Create(ctx context.Context, e Entry) error {
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	e, ok := r.byID[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) sorted(adoptionID string) []Entry {
	out := make([]Entry, 0)
	for _, e := range r.byID {
		if e.AdoptionID == adoptionID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *testRepo) Recent(ctx context.Context, adoptionID string, limit int) ([]Entry, error) {
	if r.failRecent {
		return nil, errors.New("recent: connection reset")
	}
	out := r.sorted(adoptionID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *testRepo) ListSince(ctx context.Context, adoptionID string, since time.Time) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, e := range r.sorted(adoptionID) {
		if e.CreatedAt.After(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) MarkRisk(ctx context.Context, id, reason string) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	e.RiskFlagged = true
	e.RiskReason = &reason
	r.byID[id] = e
	return nil
}

func (r *testRepo) UpdateResponse(ctx context.Context, id string, status Status, text *string, respondedAt *time.Time) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = status
	e.ResponseText = text
	e.RespondedAt = respondedAt
	r.byID[id] = e
	return nil
}

func (r *testRepo) ListFlaggedByShelter(ctx context.Context, shelterID string) ([]Alert, error) {
	out := make([]Alert, 0)
	for _, e := range r.byID {
		if !e.RiskFlagged {
			continue
		}
		a := r.adoptions[e.AdoptionID]
		p := r.pets[a.PetID]
		if p.ShelterID != shelterID {
			continue
		}
		out = append(out, Alert{Entry: e, PetID: p.ID, PetName: p.Name, AdopterID: a.UserID, ShelterID: p.ShelterID})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type adoptionView struct{ r *testRepo }

func (v adoptionView) Get(ctx context.Context, id string) (adoptions.Adoption, error) {
	a, ok := v.r.adoptions[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

type petView struct{ r *testRepo }

func (v petView) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	p, ok := v.r.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

type recordingNotifier struct {
	got []notify.Notification
	err error
}

func (n *recordingNotifier) Notify(ctx context.Context, msg notify.Notification) error {
	n.got = append(n.got, msg)
	return n.err
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

var (
	adopter = auth.Claims{UserID: "adopter-1", Role: auth.RoleAdopter}
	shelter = auth.Claims{UserID: "shelter-1", Role: auth.RoleShelter}
	admin   = auth.Claims{UserID: "admin-1", Role: auth.RoleAdmin}
)

func newTestService(t *testing.T) (*Service, *testRepo, *recordingNotifier, *clock) {
	t.Helper()
	r := newTestRepo()
	adoptedAt := day0
	r.pets["pet-1"] = pets.Pet{ID: "pet-1", ShelterID: "shelter-1", Name: "Luna", ImageURL: "https://img/luna.jpg", Status: pets.StatusAdopted}
	r.adoptions["ad-1"] = adoptions.Adoption{ID: "ad-1", UserID: "adopter-1", PetID: "pet-1", Status: adoptions.StatusActive, AdoptionDate: &adoptedAt}
	r.adoptions["ad-pending"] = adoptions.Adoption{ID: "ad-pending", UserID: "adopter-1", PetID: "pet-1", Status: adoptions.StatusPending}

	n := &recordingNotifier{}
	c := &clock{t: day0.Add(time.Hour)}
	svc := NewService(r, adoptionView{r: r}, petView{r: r}).
		WithEscalator(escalation.NewEscalator(n, logger.NewNop()))
	svc.now = c.now
	return svc, r, n, c
}

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

// -------------------------
// Append
// -------------------------

func TestService_Append_LethargicAlwaysFlags(t *testing.T) {
	svc, r, n, _ := newTestService(t)

	res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{
		Mood:      "lethargic",
		Checklist: Checklist{MorningFeed: boolp(true), EveningFeed: boolp(true)},
		Notes:     "all good otherwise",
	})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if !res.RiskDetected || !res.Entry.RiskFlagged || res.Entry.RiskReason == nil {
		t.Fatalf("expected flagged entry, got %+v", res)
	}
	stored := r.byID[res.Entry.ID]
	if !stored.RiskFlagged {
		t.Fatalf("flag must be persisted")
	}
	if len(n.got) != 1 || n.got[0].Kind != notify.KindWelfareRisk || n.got[0].RecipientID != "shelter-1" {
		t.Fatalf("expected welfare_risk notice to shelter, got %+v", n.got)
	}
}

func TestService_Append_VomitNotesFlagWithExcerpt(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "happy", Notes: "She did VOMIT after dinner"})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if !res.RiskDetected || res.Entry.RiskReason == nil {
		t.Fatalf("expected flag")
	}
	if want := "She did VOMIT"; !strings.Contains(*res.Entry.RiskReason, want) {
		t.Fatalf("reason %q should contain notes prefix", *res.Entry.RiskReason)
	}
}

func TestService_Append_MissedMealsScenario(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{
		Checklist: Checklist{MorningFeed: boolp(false), EveningFeed: boolp(false), Walk: boolp(true), Mood: boolp(true), Bedtime: boolp(true)},
		Mood:      "content",
		Notes:     "",
	})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if !res.RiskDetected || !strings.Contains(*res.Entry.RiskReason, "not eaten") {
		t.Fatalf("expected feeding failure flag, got %+v", res)
	}
}

func TestService_Append_ThirdAnxiousFlags(t *testing.T) {
	svc, _, n, c := newTestService(t)

	for i := 0; i < 2; i++ {
		res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "anxious"})
		if err != nil {
			t.Fatalf("Append #%d error: %v", i+1, err)
		}
		if res.RiskDetected {
			t.Fatalf("append #%d must not flag", i+1)
		}
		c.advance(24 * time.Hour)
	}

	res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "withdrawn"})
	if err != nil {
		t.Fatalf("Append #3 error: %v", err)
	}
	if !res.RiskDetected {
		t.Fatalf("third anxious/withdrawn append must flag")
	}
	if len(n.got) != 1 {
		t.Fatalf("expected a single risk notice, got %d", len(n.got))
	}
}

func TestService_Append_DegradedSentinelStillSaves(t *testing.T) {
	svc, r, _, _ := newTestService(t)
	r.failRecent = true

	res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "anxious"})
	if err != nil {
		t.Fatalf("degraded sentinel must not fail append, got %v", err)
	}
	if res.RiskDetected {
		t.Fatalf("degraded sentinel must leave entry unflagged")
	}
	if _, ok := r.byID[res.Entry.ID]; !ok {
		t.Fatalf("entry must be stored")
	}
}

func TestService_Append_Guards(t *testing.T) {
	svc, r, _, _ := newTestService(t)

	if _, err := svc.Append(context.Background(), "ghost", "adopter-1", AppendInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Append(context.Background(), "ad-1", "intruder", AppendInput{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Append(context.Background(), "ad-pending", "adopter-1", AppendInput{}); !errors.Is(err, ErrNotMonitoring) {
		t.Fatalf("expected ErrNotMonitoring, got %v", err)
	}
	if _, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "grumpy"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown mood, got %v", err)
	}
	if len(r.byID) != 0 {
		t.Fatalf("rejected appends must not store anything")
	}
}

func TestService_Append_SanitizesNotes(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "playful", Notes: "<b>fetch</b> champion"})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if res.Entry.Notes != "fetch champion" {
		t.Fatalf("expected sanitized notes, got %q", res.Entry.Notes)
	}
}

func TestService_Append_KeywordInsideMarkupStillFlags(t *testing.T) {
	svc, r, _, _ := newTestService(t)

	res, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "happy", Notes: "found <blood> on the rug"})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if !res.RiskDetected || !r.byID[res.Entry.ID].RiskFlagged {
		t.Fatalf("health keyword must flag regardless of markup, got %+v", res)
	}
	if strings.Contains(res.Entry.Notes, "<") || strings.Contains(*res.Entry.RiskReason, "<") {
		t.Fatalf("stored text must stay sanitized: notes=%q reason=%q", res.Entry.Notes, *res.Entry.RiskReason)
	}
}

// -------------------------
// Reads
// -------------------------

func TestService_Summary(t *testing.T) {
	svc, _, _, c := newTestService(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "happy"}); err != nil {
			t.Fatalf("Append error: %v", err)
		}
		c.advance(24 * time.Hour)
	}
	c.t = day0.Add(48 * time.Hour)

	sum, err := svc.Summary(context.Background(), "ad-1", adopter)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if sum.PetName != "Luna" || sum.Progress.CurrentDay != 2 || sum.Progress.Phase.Phase != 1 || sum.Progress.OverallProgress != 2 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if len(sum.Logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(sum.Logs))
	}

	if _, err := svc.Summary(context.Background(), "ad-1", shelter); err != nil {
		t.Fatalf("owning shelter must read summary, got %v", err)
	}
	if _, err := svc.Summary(context.Background(), "ad-1", admin); err != nil {
		t.Fatalf("admin must read summary, got %v", err)
	}
	other := auth.Claims{UserID: "shelter-2", Role: auth.RoleShelter}
	if _, err := svc.Summary(context.Background(), "ad-1", other); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other shelter, got %v", err)
	}
	if _, err := svc.Summary(context.Background(), "ad-pending", adopter); !errors.Is(err, ErrNotMonitoring) {
		t.Fatalf("expected ErrNotMonitoring for pending adoption, got %v", err)
	}
}

func TestService_Recent_DefaultAndCap(t *testing.T) {
	svc, _, _, c := newTestService(t)
	for i := 0; i < 35; i++ {
		_, _ = svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "happy"})
		c.advance(time.Hour)
	}

	items, err := svc.Recent(context.Background(), "ad-1", 0)
	if err != nil || len(items) != DefaultRecentLimit {
		t.Fatalf("expected %d items, got %d (%v)", DefaultRecentLimit, len(items), err)
	}
	if !items[0].CreatedAt.After(items[1].CreatedAt) {
		t.Fatalf("expected newest first")
	}
}

// -------------------------
// Alerts
// -------------------------

func TestService_Respond(t *testing.T) {
	svc, r, n, _ := newTestService(t)
	res, _ := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "lethargic"})
	n.got = nil

	if _, err := svc.Respond(context.Background(), res.Entry.ID, "shelter-2", "hi"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	untouched := r.byID[res.Entry.ID]
	if untouched.Status != StatusPending || untouched.ResponseText != nil {
		t.Fatalf("forbidden respond must not change the entry: %+v", untouched)
	}

	if _, err := svc.Respond(context.Background(), res.Entry.ID, "shelter-1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank text, got %v", err)
	}
	if _, err := svc.Respond(context.Background(), "ghost", "shelter-1", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	e, err := svc.Respond(context.Background(), res.Entry.ID, "shelter-1", "We'll call you today")
	if err != nil {
		t.Fatalf("Respond error: %v", err)
	}
	if e.Status != StatusResponded || e.ResponseText == nil || e.RespondedAt == nil || !e.RiskFlagged {
		t.Fatalf("unexpected responded entry: %+v", e)
	}
	if len(n.got) != 1 || n.got[0].RecipientID != "adopter-1" || n.got[0].Kind != notify.KindAlertResponse {
		t.Fatalf("expected alert_response notice to adopter, got %+v", n.got)
	}
}

func TestService_Respond_NotifierFailureDoesNotFail(t *testing.T) {
	svc, _, n, _ := newTestService(t)
	res, _ := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "lethargic"})
	n.err = errors.New("mail relay down")

	if _, err := svc.Respond(context.Background(), res.Entry.ID, "shelter-1", "ok"); err != nil {
		t.Fatalf("notifier failure must not fail respond, got %v", err)
	}
}

// Reabrir no limpia risk_flagged ni la respuesta previa: comportamiento heredado.
func TestService_SetStatus_ReopenKeepsFlag(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	res, _ := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "lethargic"})
	_, _ = svc.Respond(context.Background(), res.Entry.ID, "shelter-1", "checked")

	e, err := svc.SetStatus(context.Background(), res.Entry.ID, "pending", nil)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if e.Status != StatusPending || !e.RiskFlagged {
		t.Fatalf("reopened entry must be pending and still flagged: %+v", e)
	}
	if e.ResponseText == nil || e.RespondedAt == nil {
		t.Fatalf("reopen keeps previous response fields")
	}

	text := "closed by admin"
	e, err = svc.SetStatus(context.Background(), res.Entry.ID, "responded", &text)
	if err != nil || e.Status != StatusResponded || *e.ResponseText != text {
		t.Fatalf("SetStatus responded = %+v, %v", e, err)
	}

	if _, err := svc.SetStatus(context.Background(), res.Entry.ID, "archived", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestService_ListFlagged(t *testing.T) {
	svc, _, _, c := newTestService(t)
	_, _ = svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "happy"})
	c.advance(time.Hour)
	first, _ := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Mood: "lethargic"})
	c.advance(time.Hour)
	second, _ := svc.Append(context.Background(), "ad-1", "adopter-1", AppendInput{Notes: "hurt paw"})

	items, err := svc.ListFlagged(context.Background(), "shelter-1")
	if err != nil {
		t.Fatalf("ListFlagged error: %v", err)
	}
	if len(items) != 2 || items[0].ID != second.Entry.ID || items[1].ID != first.Entry.ID {
		t.Fatalf("expected 2 flagged newest first, got %+v", items)
	}
	if items[0].PetName != "Luna" || items[0].AdopterID != "adopter-1" {
		t.Fatalf("expected joined pet/adopter data, got %+v", items[0])
	}
}
