package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// HealthcheckHandler responde 200 com o horário atual e o tamanho do dataset
func HealthcheckHandler(dataset *domain.Dataset) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":  "ok",
			"time":    time.Now().Format(time.RFC3339),
			"records": dataset.Len(),
		})
	})
}
