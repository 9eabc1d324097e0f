package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type TotalResponse struct {
	State string  `json:"state"`
	Field string  `json:"field"`
	Total float64 `json:"total"`
}

// GetTotalForState soma o campo pedido (padrão Sales) nas vendas do estado
func GetTotalForState(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := httprouter.ParamsFromContext(r.Context()).ByName("state")

		field := r.URL.Query().Get("field")
		if field == "" {
			field = domain.FieldSales
		}

		total, err := service.TotalForState(state, field)
		if errors.Is(err, aggregating.ErrUnsupportedField) {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedField, "unsupported field", map[string]any{
				"field":     field,
				"supported": domain.NumericFields,
			})
			return
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sales: total for state")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error aggregating sales", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, TotalResponse{
			State: state,
			Field: field,
			Total: total,
		})
	})
}

// GetSummary retorna os totais da seleção state/from/to
func GetSummary(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		state := query.Get("state")
		if state == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "state is required", nil)
			return
		}

		from, err := parseOptionalDate(query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid from date", map[string]string{"from": query.Get("from")})
			return
		}

		to, err := parseOptionalDate(query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "invalid to date", map[string]string{"to": query.Get("to")})
			return
		}

		if !from.IsZero() && !to.IsZero() && to.Before(from) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, domain.ErrInvalidDateRange.Error(), nil)
			return
		}

		selection := domain.NewFilterSelection(state, domain.DateRange{MinDate: from, MaxDate: to})

		writeJSON(w, r, http.StatusOK, service.Summarize(selection))
	})
}

func parseOptionalDate(value string) (domain.CalendarDate, error) {
	if strings.TrimSpace(value) == "" {
		return domain.CalendarDate{}, nil
	}
	return domain.ParseCalendarDate(value)
}
