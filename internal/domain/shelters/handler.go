package shelters

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-welfare/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/shelters/me", upsertMyShelterHandler(svc))
	r.Get("/shelters/{shelterID}", getShelterHandler(svc))
	r.Post("/admin/shelters/{shelterID}/verify", verifyShelterHandler(svc))
}

type upsertShelterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type shelterResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Latitude   *float64   `json:"latitude,omitempty"`
	Longitude  *float64   `json:"longitude,omitempty"`
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// upsertMyShelterHandler godoc
// @Summary Guardar perfil del refugio
// @Description Crea o actualiza el perfil del refugio autenticado. La ubicación se usa para derivar reportes de animales en peligro al refugio verificado más cercano.
// @Tags shelters
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: adopter, shelter o admin"
// @Param payload body upsertShelterRequest true "Perfil"
// @Success 200 {object} shelterResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /shelters/me [post]
func upsertMyShelterHandler(svc *Service) http.HandlerFunc {
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

		var req upsertShelterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sh, err := svc.UpsertProfile(r.Context(), claims.UserID, ProfileInput{
			Name:      req.Name,
			Email:     req.Email,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

// getShelterHandler godoc
// @Summary Ver refugio
// @Tags shelters
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param shelterID path string true "ID del refugio"
// @Success 200 {object} shelterResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "shelter not found"
// @Router /shelters/{shelterID} [get]
func getShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sh, err := svc.Get(r.Context(), chi.URLParam(r, "shelterID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

// verifyShelterHandler godoc
// @Summary Verificar refugio
// @Tags admin
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: admin"
// @Param shelterID path string true "ID del refugio"
// @Success 200 {object} shelterResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "shelter not found"
// @Router /admin/shelters/{shelterID}/verify [post]
func verifyShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		sh, err := svc.Verify(r.Context(), chi.URLParam(r, "shelterID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "shelter not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toShelterResponse(s Shelter) shelterResponse {
	return shelterResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		Verified:   s.Verified,
		VerifiedAt: s.VerifiedAt,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
