package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
)

// GetSales retorna o dataset completo
func GetSales(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetSales())
	})
}

// GetStates retorna os estados distintos, na ordem em que aparecem no dataset
func GetStates(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetStates())
	})
}
