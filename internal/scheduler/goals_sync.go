package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jmfarina/sales-ops-api/infrastructure/repository"
	"github.com/jmfarina/sales-ops-api/internal/config"
	"github.com/jmfarina/sales-ops-api/internal/domain"
	"github.com/jmfarina/sales-ops-api/internal/usecases/goaltracking"
	"github.com/sirupsen/logrus"
)

// GoalsSyncConfig representa la configuración del agendador de snapshots de objetivos
type GoalsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// GoalsSyncService gestiona el agendamiento y la ejecución de la sincronización
// de snapshots de avance contra el CRM para todos los usuarios activos
type GoalsSyncService struct {
	scheduler           *gocron.Scheduler
	config              GoalsSyncConfig
	userRepo            repository.UserRepository
	goalsService        goaltracking.GoalTracker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSynced      int
	lastSyncFailed      int
}

// NewGoalsSyncService crea una nueva instancia del servicio de sincronización de objetivos
func NewGoalsSyncService(
	userRepo repository.UserRepository,
	goalsService goaltracking.GoalTracker,
	appConfig *config.Config,
) *GoalsSyncService {
	syncConfig := GoalsSyncConfig{
		CronSchedule: appConfig.GoalsSync.CronSchedule,
		SyncEnabled:  appConfig.GoalsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de snapshots de objetivos cargada")

	return &GoalsSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		userRepo:     userRepo,
		goalsService: goalsService,
		syncRunning:  false,
	}
}

// Start inicia el agendador
func (s *GoalsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronización de snapshots de objetivos deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronización de snapshots de objetivos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllUsers()
	})
	if err != nil {
		return fmt.Errorf("error al agendar sincronización de snapshots de objetivos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronización de snapshots de objetivos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllUsers recalcula el snapshot del trimestre corriente para cada usuario activo
func (s *GoalsSyncService) syncAllUsers() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de snapshots de objetivos ya en curso, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronización de snapshots de objetivos para todos los usuarios activos")

	users, err := s.userRepo.ListActiveUsers()
	if err != nil {
		logrus.WithError(err).Error("Error al listar usuarios activos para la sincronización de objetivos")
		return
	}

	if len(users) == 0 {
		logrus.Info("Ningún usuario activo encontrado para la sincronización de objetivos")
		return
	}

	now := time.Now()
	year := now.Year()
	quarter := goaltracking.QuarterOf(int(now.Month()))

	// El agendador corre como sistema, con visibilidad de administrador
	system := domain.Actor{ID: 0, RoleID: domain.RoleAdmin}

	synced := 0
	failed := 0
	for _, user := range users {
		_, err := s.goalsService.SyncUser(system, user.ID, year, quarter)
		if err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"year":    year,
				"quarter": quarter,
				"error":   err.Error(),
			}).Error("Error al sincronizar snapshot de objetivos del usuario")
			continue
		}
		synced++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"users":    len(users),
		"synced":   synced,
		"failed":   failed,
		"year":     year,
		"quarter":  quarter,
	}).Info("Sincronización de snapshots de objetivos concluida")

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncSynced = synced
	s.lastSyncFailed = failed
}

// TriggerManualSync dispara manualmente una sincronización de snapshots
func (s *GoalsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de snapshots de objetivos ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronización manual de snapshots de objetivos")
	go s.syncAllUsers()
}

// Status devuelve el estado actual del agendador
func (s *GoalsSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_synced":       s.lastSyncSynced,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
