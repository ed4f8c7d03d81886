// Package scheduler contém os serviços de agendamento do back-office
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devhub/pinche-admin-api/infrastructure/messaging/rabbit"
	"github.com/devhub/pinche-admin-api/infrastructure/repository"
	"github.com/devhub/pinche-admin-api/internal/config"
	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/devhub/pinche-admin-api/internal/usecases/admin"
	"github.com/devhub/pinche-admin-api/internal/usecases/ranking"
	"github.com/devhub/pinche-admin-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

type OwnerRankingSnapshotConfig struct {
	CronSchedule string
	SyncEnabled  bool
	RoutingKey   string
}

type OwnerRankingSnapshotService struct {
	scheduler           *gocron.Scheduler
	adminService        admin.AdminService
	rankingRepo         repository.OwnerRankingRepository
	publisher           rabbit.EventPublisher
	config              OwnerRankingSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewOwnerRankingSnapshotService cria o agendador. publisher pode ser nil quando o RabbitMQ está desabilitado
func NewOwnerRankingSnapshotService(
	adminService admin.AdminService,
	rankingRepo repository.OwnerRankingRepository,
	publisher rabbit.EventPublisher,
	cfg *config.Config,
) *OwnerRankingSnapshotService {
	snapshotConfig := OwnerRankingSnapshotConfig{
		CronSchedule: cfg.OwnerRankingSnapshot.CronSchedule,
		SyncEnabled:  cfg.OwnerRankingSnapshot.SyncEnabled,
		RoutingKey:   cfg.RabbitMQ.RoutingKey,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"publish":       publisher != nil,
	}).Info("Configuração do agendador do ranking de motoristas carregada")

	return &OwnerRankingSnapshotService{
		scheduler:    gocron.NewScheduler(time.Local),
		adminService: adminService,
		rankingRepo:  rankingRepo,
		publisher:    publisher,
		config:       snapshotConfig,
	}
}

func (s *OwnerRankingSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de motoristas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de motoristas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateOwnerRanking(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de motoristas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o ranking de motoristas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de motoristas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *OwnerRankingSnapshotService) UpdateOwnerRanking(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de motoristas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização do ranking de motoristas")

	_, err := s.processOwnerRankingWithDate(ctx, time.Now())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de motoristas concluída")
	return nil
}

// processOwnerRankingWithDate recalcula o ranking do mês de ontem, do dia 1 até o fim de ontem
func (s *OwnerRankingSnapshotService) processOwnerRankingWithDate(ctx context.Context, processingDate time.Time) ([]*domain.OwnerRankingSnapshot, error) {
	yesterday := processingDate.AddDate(0, 0, -1)
	firstDayOfMonth := utils.GetFirstDayOfMonth(yesterday)
	endOfYesterday := utils.EndOfDay(yesterday)
	month := yesterday.Format(ranking.MonthLayout)

	rankingsBeforeUpdate, err := s.rankingRepo.ListPositionsByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking anterior: %w", err)
	}

	items, err := s.adminService.GetOwnerRanking(&firstDayOfMonth, &endOfYesterday)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular ranking de motoristas: %w", err)
	}

	updatedRankings := make([]*domain.OwnerRankingSnapshot, 0, len(items))
	for _, item := range items {
		updatedRankings = append(updatedRankings, &domain.OwnerRankingSnapshot{
			OwnerID:   item.OwnerID,
			Month:     month,
			OwnerName: item.OwnerName,
			Revenue:   item.Total,
			Position:  item.Position,
		})
	}

	updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdateOwnerRanking(month, updatedRankings); err != nil {
		return updatedRankings, fmt.Errorf("erro ao salvar ranking de motoristas: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"month":  month,
		"owners": len(updatedRankings),
	}).Info("Ranking de motoristas salvo")

	s.publishUpdated(ctx, month, updatedRankings)

	return updatedRankings, nil
}

// updatePositions preenche a posição anterior e a variação. Motorista novo no mês fica com 0 em ambas
func updatePositions(
	updatedRankings []*domain.OwnerRankingSnapshot,
	rankingsBeforeUpdate map[int64]*domain.OwnerRankingSnapshot,
) {
	for _, ranking := range updatedRankings {
		rankingBefore, exists := rankingsBeforeUpdate[ranking.OwnerID]
		if !exists || rankingBefore.Position == 0 {
			continue
		}

		ranking.PreviousPosition = rankingBefore.Position
		ranking.PositionChange = rankingBefore.Position - ranking.Position
	}
}

func (s *OwnerRankingSnapshotService) publishUpdated(ctx context.Context, month string, rankings []*domain.OwnerRankingSnapshot) {
	if s.publisher == nil {
		return
	}

	event := domain.OwnerRankingUpdatedEvent{
		Month:     month,
		Ranking:   make([]domain.OwnerRankingSnapshot, 0, len(rankings)),
		UpdatedAt: time.Now(),
	}
	for _, r := range rankings {
		event.Ranking = append(event.Ranking, *r)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, s.config.RoutingKey, event); err != nil {
		logrus.WithError(err).WithField("month", month).Warn("Falha ao publicar evento do ranking de motoristas")
	}
}

// TriggerManualSync inicia manualmente a atualização do ranking
func (s *OwnerRankingSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de motoristas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de motoristas")
	go func() {
		if err := s.UpdateOwnerRanking(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de motoristas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *OwnerRankingSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
