// Package scheduler contém os serviços de agendamento de tarefas em
// background da aplicação.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/insightify-api/internal/config"
	"github.com/vfg2006/insightify-api/internal/usecases/insighting"
)

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService recarrega o dataset enriquecido de forma
// periódica, evitando que a primeira requisição após a expiração do TTL
// pague o custo da releitura do arquivo.
type DatasetRefreshService struct {
	scheduler             *gocron.Scheduler
	insightService        insighting.DatasetRefresher
	config                DatasetRefreshConfig
	refreshRunning        bool
	refreshMutex          sync.Mutex
	lastRefreshStartedAt  time.Time
	lastRefreshFinishedAt time.Time
	lastSnapshotID        string
}

func NewDatasetRefreshService(
	insightService insighting.DatasetRefresher,
	cfg *config.Config,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule, // Default: a cada hora cheia
		Enabled:      cfg.DatasetRefresh.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetRefreshService{
		scheduler:      scheduler,
		insightService: insightService,
		config:         refreshConfig,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.refreshDataset(); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DatasetRefreshService) refreshDataset() error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	defer func() {
		s.refreshRunning = false
		s.lastRefreshFinishedAt = time.Now()
	}()

	logrus.Info("Iniciando recarga do dataset enriquecido")

	snapshotID, err := s.insightService.Refresh()
	if err != nil {
		return err
	}

	s.lastSnapshotID = snapshotID

	logrus.WithField("snapshot_id", snapshotID).Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualRefresh inicia manualmente uma recarga do dataset
func (s *DatasetRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.refreshDataset(); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":          s.config.Enabled,
		"refresh_cron":             s.config.CronSchedule,
		"refresh_running":          s.refreshRunning,
		"last_refresh_started_at":  s.lastRefreshStartedAt,
		"last_refresh_finished_at": s.lastRefreshFinishedAt,
		"last_snapshot_id":         s.lastSnapshotID,
	}
}
