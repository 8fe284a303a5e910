package welfare

import (
	"encoding/json"
	"net/http"
	"strings"

	"pet-adoption-welfare/internal/middleware"
	"pet-adoption-welfare/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func registerAlertRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/shelters/{shelterID}/alerts", listAlertsHandler(svc, log))
	r.Post("/alerts/{logID}/respond", respondAlertHandler(svc, log))
	r.Put("/admin/alerts/{logID}/status", setAlertStatusHandler(svc, log))
}

type alertResponse struct {
	logResponse
	PetID     string `json:"pet_id"`
	PetName   string `json:"pet_name"`
	PetImage  string `json:"pet_image,omitempty"`
	AdopterID string `json:"adopter_id"`
	ShelterID string `json:"shelter_id"`
}

type respondAlertRequest struct {
	ResponseText string `json:"response_text"`
}

type setAlertStatusRequest struct {
	Status       string  `json:"status" enums:"pending,responded"`
	ResponseText *string `json:"response_text"`
}

// listAlertsHandler godoc
// @Summary Alertas de bienestar del refugio
// @Description Registros marcados por el sentinel para mascotas del refugio, más nuevos primero. Solo el propio refugio o un admin.
// @Tags alerts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: shelter o admin"
// @Param shelterID path string true "ID del refugio"
// @Success 200 {array} alertResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /shelters/{shelterID}/alerts [get]
func listAlertsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		shelterID := chi.URLParam(r, "shelterID")
		if !claims.IsAdmin() && !(claims.IsShelter() && claims.UserID == shelterID) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListFlagged(r.Context(), shelterID)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]alertResponse, 0, len(items))
		for _, a := range items {
			out = append(out, alertResponse{
				logResponse: toLogResponse(a.Entry),
				PetID:       a.PetID,
				PetName:     a.PetName,
				PetImage:    a.PetImageURL,
				AdopterID:   a.AdopterID,
				ShelterID:   a.ShelterID,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// respondAlertHandler godoc
// @Summary Responder alerta
// @Description El refugio dueño de la mascota responde un registro. La marca de riesgo se conserva.
// @Tags alerts
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: shelter"
// @Param logID path string true "ID del registro"
// @Param payload body respondAlertRequest true "Respuesta"
// @Success 200 {object} logResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /alerts/{logID}/respond [post]
func respondAlertHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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

		var req respondAlertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.Respond(r.Context(), chi.URLParam(r, "logID"), claims.UserID, req.ResponseText)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toLogResponse(e))
	}
}

// setAlertStatusHandler godoc
// @Summary Override de estado (admin)
// @Description Cambia el estado de respuesta sin chequeo de ownership. Puede reabrir (pending) un registro respondido; la marca de riesgo no cambia.
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-Role header string false "Solo en modo dev: admin"
// @Param logID path string true "ID del registro"
// @Param payload body setAlertStatusRequest true "Nuevo estado"
// @Success 200 {object} logResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "not found"
// @Router /admin/alerts/{logID}/status [put]
func setAlertStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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

		var req setAlertStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		e, err := svc.SetStatus(r.Context(), chi.URLParam(r, "logID"), req.Status, req.ResponseText)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toLogResponse(e))
	}
}

