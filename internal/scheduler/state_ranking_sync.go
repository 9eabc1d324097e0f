// Package scheduler contém os serviços de agendamento do recálculo do ranking
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// SyncType identifica o job nas rotas de cron
const SyncType = "state-ranking"

var ErrRankingUnavailable = errors.New("state ranking is not available yet")

type StateRankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type StateRankingSyncService struct {
	scheduler      *gocron.Scheduler
	rankingService ranking.RankingService
	config         StateRankingSyncConfig

	snapshot      *domain.StateRankingSnapshot
	snapshotMutex sync.RWMutex

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       error
}

func NewStateRankingSyncService(
	rankingService ranking.RankingService,
	cfg *config.Config,
) *StateRankingSyncService {
	syncConfig := StateRankingSyncConfig{
		CronSchedule: cfg.StateRankingSync.CronSchedule,
		SyncEnabled:  cfg.StateRankingSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: state ranking sync configured")

	return &StateRankingSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		rankingService: rankingService,
		config:         syncConfig,
	}
}

func (s *StateRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("scheduler: state ranking cron disabled by configuration")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: starting state ranking cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateStateRanking(); err != nil {
			log.L.WithError(err).Error("scheduler: state ranking update failed")
		}
	})
	if err != nil {
		return errors.Wrap(err, "scheduler: schedule state ranking sync")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping state ranking cron")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateStateRanking recalcula o snapshot. Execuções simultâneas são ignoradas.
func (s *StateRankingSyncService) UpdateStateRanking() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("scheduler: state ranking sync already running")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	snapshot, err := s.rankingService.ComputeStateRanking()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = err
	s.syncMutex.Unlock()

	if err != nil {
		return errors.Wrap(err, "scheduler: compute state ranking")
	}

	s.snapshotMutex.Lock()
	s.snapshot = snapshot
	s.snapshotMutex.Unlock()

	log.L.WithFields(log.Fields{
		"snapshot_id": snapshot.ID,
		"states":      len(snapshot.Ranking),
	}).Info("scheduler: state ranking updated")

	return nil
}

// GetStateRanking devolve o último snapshot; o primeiro é calculado na primeira chamada
func (s *StateRankingSyncService) GetStateRanking() (*domain.StateRankingSnapshot, error) {
	if snapshot := s.currentSnapshot(); snapshot != nil {
		return snapshot, nil
	}

	if err := s.UpdateStateRanking(); err != nil {
		return nil, err
	}

	snapshot := s.currentSnapshot()
	if snapshot == nil {
		return nil, ErrRankingUnavailable
	}
	return snapshot, nil
}

func (s *StateRankingSyncService) currentSnapshot() *domain.StateRankingSnapshot {
	s.snapshotMutex.RLock()
	defer s.snapshotMutex.RUnlock()
	return s.snapshot
}

// TriggerManualSync inicia um recálculo em background
func (s *StateRankingSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("scheduler: state ranking sync in progress, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("scheduler: manual state ranking sync requested")
	go func() {
		if err := s.UpdateStateRanking(); err != nil {
			log.L.WithError(err).Error("scheduler: manual state ranking sync failed")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *StateRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSyncError != nil {
		status["last_sync_error"] = s.lastSyncError.Error()
	}

	return status
}
