package welfare

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
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

	r.Get("/adoptions/{adoptionID}/welfare-summary", summaryHandler(svc, log))
	r.Post("/adoptions/{adoptionID}/welfare-logs", appendLogHandler(svc, log))
	r.Get("/adoptions/{adoptionID}/welfare-logs", listLogsHandler(svc, log))

	registerAlertRoutes(r, svc, log)
}

// appendLogRequest es el check-in diario del adoptante.
type appendLogRequest struct {
	Checklist Checklist `json:"checklist" swaggertype:"object,boolean"`
	Mood      string    `json:"mood" enums:"anxious,cautious,curious,playful,happy,content,lethargic,withdrawn"`
	Notes     string    `json:"notes"`
}

// logResponse es una entrada del historial de bienestar.
type logResponse struct {
	ID           string     `json:"id"`
	AdoptionID   string     `json:"adoption_id"`
	Checklist    Checklist  `json:"checklist" swaggertype:"object,boolean"`
	Mood         Mood       `json:"mood,omitempty"`
	Notes        string     `json:"notes"`
	RiskFlagged  bool       `json:"risk_flagged"`
	RiskReason   *string    `json:"risk_reason"`
	Status       Status     `json:"status"`
	ResponseText *string    `json:"response_text"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type appendLogResponse struct {
	Success      bool        `json:"success"`
	RiskDetected bool        `json:"risk_detected"`
	Log          logResponse `json:"log"`
}

// summaryResponse alimenta el dashboard de seguimiento.
type summaryResponse struct {
	AdoptionID      string        `json:"adoption_id"`
	PetName         string        `json:"pet_name"`
	PetImage        string        `json:"pet_image,omitempty"`
	AdoptionDate    time.Time     `json:"adoption_date"`
	CurrentDay      int           `json:"current_day"`
	OverallProgress int           `json:"overall_progress"`
	Streak          int           `json:"streak"`
	IsCompleted     bool          `json:"is_completed"`
	PhaseInfo       PhaseInfo     `json:"phase_info"`
	Logs            []logResponse `json:"logs"`
}

// summaryHandler godoc
// @Summary Resumen de bienestar
// @Description Día actual, fase, progreso, racha de los últimos 7 días y últimos 30 registros. Lo ven el adoptante, el refugio dueño y el admin.
// @Tags welfare
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: adopter, shelter o admin"
// @Param adoptionID path string true "ID de la adopción"
// @Success 200 {object} summaryResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "adoption is not in its monitoring window"
// @Router /adoptions/{adoptionID}/welfare-summary [get]
func summaryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sum, err := svc.Summary(r.Context(), chi.URLParam(r, "adoptionID"), claims)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, summaryResponse{
			AdoptionID:      sum.AdoptionID,
			PetName:         sum.PetName,
			PetImage:        sum.PetImageURL,
			AdoptionDate:    sum.AdoptionDate,
			CurrentDay:      sum.Progress.CurrentDay,
			OverallProgress: sum.Progress.OverallProgress,
			Streak:          sum.Progress.Streak,
			IsCompleted:     sum.Progress.IsCompleted,
			PhaseInfo:       sum.Progress.Phase,
			Logs:            toLogResponses(sum.Logs),
		})
	}
}

// appendLogHandler godoc
// @Summary Registrar check-in diario
// @Description El adoptante registra checklist, ánimo y notas. El sentinel evalúa la entrada al momento y, si detecta riesgo, avisa al refugio.
// @Tags welfare
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param adoptionID path string true "ID de la adopción"
// @Param payload body appendLogRequest true "Check-in"
// @Success 201 {object} appendLogResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "adoption is not in its monitoring window"
// @Router /adoptions/{adoptionID}/welfare-logs [post]
func appendLogHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req appendLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Append(r.Context(), chi.URLParam(r, "adoptionID"), claims.UserID, AppendInput{
			Checklist: req.Checklist,
			Mood:      req.Mood,
			Notes:     req.Notes,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusCreated, appendLogResponse{
			Success:      true,
			RiskDetected: res.RiskDetected,
			Log:          toLogResponse(res.Entry),
		})
	}
}

// listLogsHandler godoc
// @Summary Historial de check-ins
// @Tags welfare
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param adoptionID path string true "ID de la adopción"
// @Param limit query int false "Máximo de registros (1-200). Por defecto 30"
// @Success 200 {array} logResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /adoptions/{adoptionID}/welfare-logs [get]
func listLogsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit := DefaultRecentLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > MaxRecentLimit {
				http.Error(w, "limit must be between 1 and 200", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.RecentFor(r.Context(), chi.URLParam(r, "adoptionID"), claims, limit)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toLogResponses(items))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrNotMonitoring), errors.Is(err, escalation.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error("welfare request failed", map[string]any{"path": r.URL.Path, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toLogResponses(items []Entry) []logResponse {
	out := make([]logResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toLogResponse(e))
	}
	return out
}

func toLogResponse(e Entry) logResponse {
	return logResponse{
		ID:           e.ID,
		AdoptionID:   e.AdoptionID,
		Checklist:    e.Checklist,
		Mood:         e.Mood,
		Notes:        e.Notes,
		RiskFlagged:  e.RiskFlagged,
		RiskReason:   e.RiskReason,
		Status:       e.Status,
		ResponseText: e.ResponseText,
		RespondedAt:  e.RespondedAt,
		CreatedAt:    e.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
