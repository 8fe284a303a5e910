package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"pet-adoption-welfare/internal/adapters/auth/jwtauth"
	"pet-adoption-welfare/internal/platform/logger"
	"pet-adoption-welfare/internal/platform/metrics"
	"pet-adoption-welfare/internal/ports/auth"
	"pet-adoption-welfare/internal/ports/notify"
	"pet-adoption-welfare/internal/router"
)

type caller struct {
	id   string
	role string
}

var (
	anon      = caller{}
	shelter1  = caller{"shelter-1", "shelter"}
	shelter2  = caller{"shelter-2", "shelter"}
	adopter1  = caller{"adopter-1", "adopter"}
	adopter2  = caller{"adopter-2", "adopter"}
	adminUser = caller{"admin-1", "admin"}
)

func TestHTTP_EndToEnd_AdoptionWelfareFlow(t *testing.T) {
	reg := prometheus.NewRegistry()
	ts := httptest.NewServer(router.NewRouter(router.Options{Metrics: metrics.New(reg)}))
	defer ts.Close()

	// 1) Refugio con ubicación, verificado por admin
	{
		st, body := doReq(t, ts.URL, "POST", "/shelters/me", shelter1, map[string]any{
			"name": "Patitas", "email": "hola@patitas.pe", "latitude": -12.0566, "longitude": -77.1181,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 upsert shelter, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "POST", "/admin/shelters/shelter-1/verify", adminUser, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 verify, got %d body=%s", st, string(body))
		}
	}

	// 2) Refugio publica mascota
	petID := createPet(t, ts.URL, shelter1, map[string]any{
		"name": "Luna", "species": "dog", "breed": "mixed", "sex": "female",
	})

	// 3) Dos adoptantes aplican
	ad1 := applyFor(t, ts.URL, adopter1, petID)
	ad2 := applyFor(t, ts.URL, adopter2, petID)

	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/adoptions", adopter1, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate application, got %d", st)
		}
	}

	// 4) Otro refugio no ve la adopción
	{
		st, _ := doReq(t, ts.URL, "POST", "/adoptions/"+ad1+"/approve", shelter2, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for foreign shelter, got %d", st)
		}
	}

	// 5) Aprobación: adopción activa y mascota adoptada
	{
		st, body := doReq(t, ts.URL, "POST", "/adoptions/"+ad1+"/approve", shelter1, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 approve, got %d body=%s", st, string(body))
		}
		var a map[string]any
		mustJSON(t, body, &a)
		if a["status"] != "active" || a["adoption_date"] == nil {
			t.Fatalf("unexpected approved adoption: %v", a)
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID, adopter2, nil)
		var p map[string]any
		mustJSON(t, body, &p)
		if st != http.StatusOK || p["status"] != "adopted" {
			t.Fatalf("expected adopted pet, got %d %v", st, p)
		}

		st, _ = doReq(t, ts.URL, "POST", "/adoptions/"+ad2+"/approve", shelter1, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 approving a second applicant, got %d", st)
		}
	}

	// 6) Registro con ánimo letárgico => alerta
	{
		st, body := doReq(t, ts.URL, "POST", "/adoptions/"+ad1+"/welfare-logs", adopter1, map[string]any{
			"checklist": map[string]any{"morning_feed": true, "walk": false},
			"mood":      "lethargic",
			"notes":     "slept all day",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 append, got %d body=%s", st, string(body))
		}
		var res struct {
			Success      bool           `json:"success"`
			RiskDetected bool           `json:"risk_detected"`
			Log          map[string]any `json:"log"`
		}
		mustJSON(t, body, &res)
		if !res.Success || !res.RiskDetected || res.Log["risk_flagged"] != true {
			t.Fatalf("expected flagged log, got %s", string(body))
		}

		st, _ = doReq(t, ts.URL, "POST", "/adoptions/"+ad1+"/welfare-logs", adopter2, map[string]any{"mood": "happy"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for a different adopter, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/adoptions/"+ad2+"/welfare-logs", adopter2, map[string]any{"mood": "happy"})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for non monitoring adoption, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/adoptions/"+ad1+"/welfare-logs", adopter1, map[string]any{"mood": "ecstatic"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown mood, got %d", st)
		}
	}

	// 7) Resumen
	{
		st, body := doReq(t, ts.URL, "GET", "/adoptions/"+ad1+"/welfare-summary", adopter1, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var s struct {
			PetName    string           `json:"pet_name"`
			CurrentDay int              `json:"current_day"`
			Streak     int              `json:"streak"`
			PhaseInfo  map[string]any   `json:"phase_info"`
			Logs       []map[string]any `json:"logs"`
		}
		mustJSON(t, body, &s)
		if s.PetName != "Luna" || s.CurrentDay != 1 || s.Streak != 1 || len(s.Logs) != 1 || s.PhaseInfo["phase"] != float64(1) {
			t.Fatalf("unexpected summary: %s", string(body))
		}
	}

	// 8) El refugio ve y responde la alerta
	var logID string
	{
		st, body := doReq(t, ts.URL, "GET", "/shelters/shelter-1/alerts", shelter1, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 alerts, got %d body=%s", st, string(body))
		}
		var alerts []map[string]any
		mustJSON(t, body, &alerts)
		if len(alerts) != 1 || alerts[0]["pet_name"] != "Luna" || alerts[0]["adopter_id"] != "adopter-1" {
			t.Fatalf("unexpected alerts: %s", string(body))
		}
		logID, _ = alerts[0]["id"].(string)

		st, _ = doReq(t, ts.URL, "GET", "/shelters/shelter-1/alerts", shelter2, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for another shelter's alerts, got %d", st)
		}

		st, body = doReq(t, ts.URL, "POST", "/alerts/"+logID+"/respond", shelter1, map[string]any{"response_text": "We will call you today"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 respond, got %d body=%s", st, string(body))
		}
		var e map[string]any
		mustJSON(t, body, &e)
		if e["status"] != "responded" || e["risk_flagged"] != true {
			t.Fatalf("unexpected responded log: %v", e)
		}
	}

	// 9) Admin reabre la alerta
	{
		st, body := doReq(t, ts.URL, "PUT", "/admin/alerts/"+logID+"/status", adminUser, map[string]any{"status": "pending"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin status, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "PUT", "/admin/alerts/"+logID+"/status", shelter1, map[string]any{"status": "pending"})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for non admin, got %d", st)
		}
	}

	// 10) Métricas expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", anon, nil)
		if st != http.StatusOK || !strings.Contains(string(body), "welfare_risk_flags_total") {
			t.Fatalf("expected risk flag metric, got %d", st)
		}
	}
}

func TestHTTP_DistressReport_NotifiesNearestShelter(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, s := range []struct {
		who      caller
		lat, lng float64
	}{
		{shelter1, -12.0566, -77.1181}, // Callao
		{shelter2, -13.5319, -71.9675}, // Cusco
	} {
		if st, body := doReq(t, ts.URL, "POST", "/shelters/me", s.who, map[string]any{"name": s.who.id, "latitude": s.lat, "longitude": s.lng}); st != http.StatusOK {
			t.Fatalf("upsert shelter: %d %s", st, string(body))
		}
		if st, _ := doReq(t, ts.URL, "POST", "/admin/shelters/"+s.who.id+"/verify", adminUser, nil); st != http.StatusOK {
			t.Fatalf("verify shelter: %d", st)
		}
	}

	st, body := doReq(t, ts.URL, "POST", "/distress-reports", anon, map[string]any{
		"description": "injured dog near the cathedral", "latitude": -13.5164, "longitude": -71.9785,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 public report, got %d body=%s", st, string(body))
	}
	var rep map[string]any
	mustJSON(t, body, &rep)
	id, _ := rep["id"].(string)

	if st, _ := doReq(t, ts.URL, "POST", "/admin/distress-reports/"+id+"/notify", adopter1, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for non admin, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/admin/distress-reports/"+id+"/notify", adminUser, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 notify, got %d body=%s", st, string(body))
	}
	mustJSON(t, body, &rep)
	if rep["status"] != "notified" || rep["assigned_shelter_id"] != "shelter-2" {
		t.Fatalf("expected shelter-2 assigned, got %v", rep)
	}

	st, body = doReq(t, ts.URL, "GET", "/admin/distress-reports?status=notified", adminUser, nil)
	var list []map[string]any
	mustJSON(t, body, &list)
	if st != http.StatusOK || len(list) != 1 {
		t.Fatalf("expected one notified report, got %d %s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "POST", "/admin/distress-reports/"+id+"/dispatch", adminUser, nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 going back to dispatched, got %d", st)
	}
}

func TestHTTP_RequiresClaims(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, path := range []string{"/me/adoptions", "/shelter/adoptions", "/admin/distress-reports"} {
		if st, _ := doReq(t, ts.URL, "GET", path, anon, nil); st != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, st)
		}
	}
	if st, _ := doReq(t, ts.URL, "GET", "/health", anon, nil); st != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", st)
	}
}

func TestHTTP_JWTMode(t *testing.T) {
	v, err := jwtauth.NewVerifier("test-secret", "")
	if err != nil {
		t.Fatalf("NewVerifier error: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: v}))
	defer ts.Close()

	tok, _ := v.Sign("shelter-9", auth.RoleShelter, time.Hour)

	req, _ := http.NewRequest("GET", ts.URL+"/shelter/pets", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with bearer token, got %d", res.StatusCode)
	}

	// En modo jwt los headers de debug no autentican.
	if st, _ := doReq(t, ts.URL, "GET", "/shelter/pets", shelter1, nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug headers in jwt mode, got %d", st)
	}
}

type downNotifier struct{}

func (downNotifier) Notify(context.Context, notify.Notification) error {
	return errors.New("broker down")
}

func TestHTTP_LogLinesCarryComponentOnce(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Logger:   logger.Wrap(zap.New(core)),
		Notifier: downNotifier{},
	}))
	defer ts.Close()

	petID := createPet(t, ts.URL, shelter1, map[string]any{"name": "Milo", "species": "cat", "sex": "male"})
	ad := applyFor(t, ts.URL, adopter1, petID)
	if st, body := doReq(t, ts.URL, "POST", "/adoptions/"+ad+"/approve", shelter1, nil); st != http.StatusOK {
		t.Fatalf("expected 200 approve, got %d body=%s", st, string(body))
	}
	st, body := doReq(t, ts.URL, "POST", "/adoptions/"+ad+"/welfare-logs", adopter1, map[string]any{"mood": "lethargic"})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 append despite notifier failure, got %d body=%s", st, string(body))
	}

	failed := logs.FilterMessage("notification failed").All()
	if len(failed) == 0 {
		t.Fatalf("expected escalation failure to be logged")
	}
	for _, entry := range failed {
		n := 0
		for _, f := range entry.Context {
			if f.Key == "component" {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("expected a single component field, got %d in %+v", n, entry.Context)
		}
	}
}

func createPet(t *testing.T, baseURL string, who caller, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", who, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	var out struct {
		ID string `json:"id"`
	}
	mustJSON(t, body, &out)
	if out.ID == "" {
		t.Fatalf("expected pet id in response")
	}
	return out.ID
}

func applyFor(t *testing.T, baseURL string, who caller, petID string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID+"/adoptions", who, nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 apply, got %d body=%s", st, string(body))
	}
	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	mustJSON(t, body, &out)
	if out.Status != "pending" {
		t.Fatalf("expected pending application, got %q", out.Status)
	}
	return out.ID
}

func mustJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, who caller, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if who.id != "" {
		req.Header.Set("X-Debug-User-ID", who.id)
		req.Header.Set("X-Debug-Role", who.role)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
