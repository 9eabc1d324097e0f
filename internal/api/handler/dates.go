package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const stateNotFoundMessage = "No sales data found for the selected state"

// GetDateRange retorna {minDate, maxDate} das vendas do estado
func GetDateRange(service querying.Querier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := httprouter.ParamsFromContext(r.Context()).ByName("state")

		dateRange, err := service.GetDateRange(state)
		switch {
		case errors.Is(err, domain.ErrStateRequired):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "state is required", nil)
			return
		case errors.Is(err, domain.ErrStateNotFound):
			log.ForContext(r.Context()).WithField("state", state).Info("sales: no records for state")
			apiErrors.WriteError(w, apiErrors.ErrStateNotFound, stateNotFoundMessage, nil)
			return
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("sales: get date range")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error getting date range", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, dateRange)
	})
}
