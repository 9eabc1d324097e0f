package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/querying"
)

func Healthcheck(dataset *domain.Dataset) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dataset),
		},
	}
}

func Sales(service querying.Querier) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales",
			Method:  http.MethodGet,
			Handler: GetSales(service),
		},
		{
			Path:    "/api/states",
			Method:  http.MethodGet,
			Handler: GetStates(service),
		},
		{
			Path:    "/api/dates/:state",
			Method:  http.MethodGet,
			Handler: GetDateRange(service),
		},
	}
}

func Totals(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/totals/:state",
			Method:  http.MethodGet,
			Handler: GetTotalForState(service),
		},
		{
			Path:    "/api/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
	}
}

func StateRanking(provider StateRankingProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/api/ranking",
			Method:  http.MethodGet,
			Handler: GetStateRanking(provider),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
