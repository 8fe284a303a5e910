package distress

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-welfare/internal/domain/escalation"
	"pet-adoption-welfare/internal/middleware"
	"pet-adoption-welfare/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}

	// Público, sin auth
	r.Post("/distress-reports", submitReportHandler(svc, log))

	r.Get("/admin/distress-reports", listReportsHandler(svc, log))
	r.Post("/admin/distress-reports/{reportID}/dispatch", adminActionHandler(log, func(r *http.Request) (Report, error) {
		return svc.Dispatch(r.Context(), chi.URLParam(r, "reportID"))
	}))
	r.Post("/admin/distress-reports/{reportID}/notify", adminActionHandler(log, func(r *http.Request) (Report, error) {
		return svc.Notify(r.Context(), chi.URLParam(r, "reportID"))
	}))
	r.Post("/admin/distress-reports/{reportID}/resolve", adminActionHandler(log, func(r *http.Request) (Report, error) {
		var req resolveRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return Report{}, errInvalidJSON
			}
		}
		return svc.Resolve(r.Context(), chi.URLParam(r, "reportID"), req.Note)
	}))
}

var errInvalidJSON = errors.New("invalid json")

type submitReportRequest struct {
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
}

type resolveRequest struct {
	Note string `json:"note"`
}

// reportResponse es el reporte de animal en peligro.
type reportResponse struct {
	ID                string     `json:"id"`
	ReporterUserID    string     `json:"reporter_user_id,omitempty"`
	Description       string     `json:"description"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	ImageURL          string     `json:"image_url,omitempty"`
	Status            Status     `json:"status"`
	AssignedShelterID string     `json:"assigned_shelter_id,omitempty"`
	DistanceKM        *float64   `json:"distance_km,omitempty"`
	ResolutionNote    string     `json:"resolution_note,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	NotifiedAt        *time.Time `json:"notified_at,omitempty"`
	ResolvedAt        *time.Time `json:"resolved_at,omitempty"`
}

// submitReportHandler godoc
// @Summary Reportar animal en peligro
// @Description Endpoint público. Si viene identidad se guarda como reportante.
// @Tags distress
// @Accept json
// @Produce json
// @Param payload body submitReportRequest true "Reporte"
// @Success 201 {object} reportResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /distress-reports [post]
func submitReportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		reporter := ""
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			reporter = claims.UserID
		}

		rep, err := svc.Submit(r.Context(), SubmitInput{
			ReporterUserID: reporter,
			Description:    req.Description,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			ImageURL:       req.ImageURL,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

// listReportsHandler godoc
// @Summary Listar reportes (admin)
// @Tags admin
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: admin"
// @Param status query string false "open, dispatched, notified o resolved"
// @Success 200 {array} reportResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /admin/distress-reports [get]
func listReportsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		items, err := svc.List(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// adminActionHandler godoc
// @Summary Transiciones del reporte (admin)
// @Description dispatch marca el caso como tomado; notify deriva al refugio verificado más cercano (409 si no hay ninguno); resolve cierra el caso con una nota opcional.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: admin"
// @Param reportID path string true "ID del reporte"
// @Param payload body resolveRequest false "Solo para resolve"
// @Success 200 {object} reportResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "report not found"
// @Failure 409 {string} string "invalid status transition / no verified shelter"
// @Router /admin/distress-reports/{reportID}/dispatch [post]
// @Router /admin/distress-reports/{reportID}/notify [post]
// @Router /admin/distress-reports/{reportID}/resolve [post]
func adminActionHandler(log logger.Logger, action func(r *http.Request) (Report, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		rep, err := action(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	if !claims.IsAdmin() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, errInvalidJSON):
		http.Error(w, "invalid json", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "report not found", http.StatusNotFound)
	case errors.Is(err, escalation.ErrInvalidTransition), errors.Is(err, ErrNoShelterAvailable):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error("distress request failed", map[string]any{"path": r.URL.Path, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toReportResponse(r Report) reportResponse {
	return reportResponse{
		ID:                r.ID,
		ReporterUserID:    r.ReporterUserID,
		Description:       r.Description,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		ImageURL:          r.ImageURL,
		Status:            r.Status,
		AssignedShelterID: r.AssignedShelterID,
		DistanceKM:        r.DistanceKM,
		ResolutionNote:    r.ResolutionNote,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		NotifiedAt:        r.NotifiedAt,
		ResolvedAt:        r.ResolvedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
