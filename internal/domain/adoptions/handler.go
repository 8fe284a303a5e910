package adoptions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-welfare/internal/middleware"
	"pet-adoption-welfare/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}

	r.Post("/pets/{petID}/adoptions", applyHandler(svc, log))
	r.Get("/me/adoptions", listMyAdoptionsHandler(svc, log))
	r.Get("/shelter/adoptions", listShelterAdoptionsHandler(svc, log))

	// welfare también cuelga rutas de /adoptions/{adoptionID}, por eso no hay Route/Mount.
	r.Post("/adoptions/{adoptionID}/approve", shelterActionHandler(svc.Approve, log))
	r.Post("/adoptions/{adoptionID}/reject", shelterActionHandler(svc.Reject, log))
	r.Post("/adoptions/{adoptionID}/complete", shelterActionHandler(svc.Complete, log))
	r.Post("/adoptions/{adoptionID}/cancel", cancelHandler(svc, log))
}

// adoptionResponse es la adopción tal como la ve la API.
type adoptionResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	PetID        string     `json:"pet_id"`
	Status       Status     `json:"status"`
	AdoptionDate *time.Time `json:"adoption_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// applyHandler godoc
// @Summary Solicitar adopción
// @Description El adoptante autenticado solicita adoptar la mascota. Queda en estado pending; la mascota no cambia hasta la aprobación.
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 201 {object} adoptionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "duplicate application / invalid state"
// @Router /pets/{petID}/adoptions [post]
func applyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.Apply(r.Context(), claims.UserID, chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

// listMyAdoptionsHandler godoc
// @Summary Mis adopciones
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {array} adoptionResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/adoptions [get]
func listMyAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByAdopter(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

// listShelterAdoptionsHandler godoc
// @Summary Adopciones del refugio
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: shelter"
// @Success 200 {array} adoptionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /shelter/adoptions [get]
func listShelterAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsShelter() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListByShelter(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

// shelterActionHandler godoc
// @Summary Aprobar / rechazar / completar adopción
// @Description Acciones del refugio dueño de la mascota. approve activa la adopción y marca la mascota como adoptada en una sola unidad; si la unidad falla responde 503 y se puede reintentar.
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: shelter"
// @Param adoptionID path string true "ID de la adopción"
// @Success 200 {object} adoptionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "invalid state"
// @Failure 503 {string} string "transition conflict, retry"
// @Router /adoptions/{adoptionID}/approve [post]
// @Router /adoptions/{adoptionID}/reject [post]
// @Router /adoptions/{adoptionID}/complete [post]
func shelterActionHandler(action func(ctx context.Context, adoptionID, shelterID string) (Adoption, error), log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsShelter() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		a, err := action(r.Context(), chi.URLParam(r, "adoptionID"), claims.UserID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

// cancelHandler godoc
// @Summary Cancelar solicitud
// @Description El adoptante retira una solicitud pending.
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param adoptionID path string true "ID de la adopción"
// @Success 200 {object} adoptionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "invalid state"
// @Router /adoptions/{adoptionID}/cancel [post]
func cancelHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.Cancel(r.Context(), chi.URLParam(r, "adoptionID"), claims.UserID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponse(a))
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
	case errors.Is(err, ErrDuplicateApplication), errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrTransitionConflict):
		log.Warn("adoption transition aborted", map[string]any{"path": r.URL.Path, "error": err})
		http.Error(w, "transition conflict, retry", http.StatusServiceUnavailable)
	default:
		log.Error("adoption request failed", map[string]any{"path": r.URL.Path, "error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAdoptionResponses(items []Adoption) []adoptionResponse {
	out := make([]adoptionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAdoptionResponse(a))
	}
	return out
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		PetID:        a.PetID,
		Status:       a.Status,
		AdoptionDate: a.AdoptionDate,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
