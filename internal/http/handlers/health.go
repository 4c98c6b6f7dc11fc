package handlers

import (
	"database/sql"
	"net/http"

	"jobzee/internal/database"
	"jobzee/internal/http/response"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !database.Healthy(r.Context(), h.db) {
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
