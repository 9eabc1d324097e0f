package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type StateRankingProvider interface {
	GetStateRanking() (*domain.StateRankingSnapshot, error)
}

// GetStateRanking retorna os estados ordenados pelo total de vendas
func GetStateRanking(provider StateRankingProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := provider.GetStateRanking()
		switch {
		case errors.Is(err, scheduler.ErrRankingUnavailable):
			apiErrors.WriteError(w, apiErrors.ErrRankingUnavailable, "ranking is being computed, try again later", nil)
			return
		case errors.Is(err, domain.ErrEmptyDataset):
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "dataset has no records", nil)
			return
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("sales: get state ranking")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error getting state ranking", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}
