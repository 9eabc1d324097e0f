package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// SyncJob é um job agendado que também pode ser disparado manualmente
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices mapeia o tipo da rota para o job
type CronJobServices map[string]SyncJob

func NewCronJobServices(stateRankingSync SyncJob) CronJobServices {
	return CronJobServices{
		scheduler.SyncType: stateRankingSync,
	}
}

// RunCronJob dispara manualmente o job informado na URL
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type", map[string]any{
				"type":     cronType,
				"accepted": services.types(),
			})
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("sales: manual cron job triggered")
		job.TriggerManualSync()

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status de cada job
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			if job == nil {
				continue
			}
			status[cronType] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}

func (c CronJobServices) types() []string {
	types := make([]string, 0, len(c))
	for cronType := range c {
		types = append(types, cronType)
	}
	return types
}
