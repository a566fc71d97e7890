package goaltracking

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive"
	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
	"github.com/jmfarina/sales-ops-api/infrastructure/repository"
	"github.com/jmfarina/sales-ops-api/internal/config"
	"github.com/jmfarina/sales-ops-api/internal/domain"
	"github.com/jmfarina/sales-ops-api/pkg/utils"
)

// GoalTracker es el motor de conciliación de metas trimestrales contra el
// CRM: trae operaciones ganadas, las atribuye, las filtra por trimestre,
// agrega el avance y lo persiste como snapshot.
type GoalTracker interface {
	MyDeals(claims *domain.Claims, mode string, year, quarter int, force bool) ([]pipedrivedomain.Deal, error)
	TeamDeals(mode string, names []string, year, quarter int, force bool) ([]pipedrivedomain.Deal, error)
	ReadSnapshot(viewer domain.Actor, userID, year, quarter int) (*domain.GoalsProgressSnapshot, error)
	SaveSnapshots(viewer domain.Actor, payloads []domain.SnapshotPayload) (*domain.SnapshotBatchResult, error)
	SyncUser(viewer domain.Actor, userID, year, quarter int) (*domain.GoalsProgressSnapshot, error)
	TeamSnapshots(viewer domain.Actor, team string, year, quarter int) (*domain.TeamSnapshotsReport, error)
	SetQuarterlyGoal(viewer domain.Actor, userID, year, quarter int, amount float64) (*domain.QuarterlyGoal, error)
}

type Service struct {
	cfg          *config.Config
	crm          pipedrive.Integrator
	userRepo     repository.UserRepository
	goalRepo     repository.QuarterlyGoalRepository
	snapshotRepo repository.GoalsSnapshotRepository
	cache        *DealCache
	now          func() time.Time
}

func NewService(
	cfg *config.Config,
	crm pipedrive.Integrator,
	userRepo repository.UserRepository,
	goalRepo repository.QuarterlyGoalRepository,
	snapshotRepo repository.GoalsSnapshotRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		crm:          crm,
		userRepo:     userRepo,
		goalRepo:     goalRepo,
		snapshotRepo: snapshotRepo,
		cache:        NewDealCache(nil),
		now:          time.Now,
	}
}

// WithClock reemplaza el reloj del servicio y del cache. Solo para tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	s.cache = NewDealCache(now)
	return s
}

// MyDeals devuelve las operaciones ganadas del propio usuario para el
// trimestre, ya filtradas. El identificador sale de la sesión según el modo.
func (s *Service) MyDeals(claims *domain.Claims, mode string, year, quarter int, force bool) ([]pipedrivedomain.Deal, error) {
	if err := validateRequest(mode, year, quarter); err != nil {
		return nil, err
	}

	identifier := claims.UserEmail
	if mode == domain.AttributionModeMapache {
		identifier = claims.UserName
	}

	deals, err := s.fetchCached(mode, []string{identifier}, year, quarter, s.cfg.Goals.CacheTTL(), force)
	if err != nil {
		return nil, err
	}

	return FilterByQuarter(deals, year, quarter), nil
}

// TeamDeals es el rollup por equipo: una búsqueda por identificador, unión
// sin deduplicar, cacheada con el TTL largo.
func (s *Service) TeamDeals(mode string, names []string, year, quarter int, force bool) ([]pipedrivedomain.Deal, error) {
	if err := validateRequest(mode, year, quarter); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrMissingNames
	}

	deals, err := s.fetchCached(mode, names, year, quarter, s.cfg.Goals.TeamCacheTTL(), force)
	if err != nil {
		return nil, err
	}

	return FilterByQuarter(deals, year, quarter), nil
}

// fetchCached resuelve el fetch vía cache. Con force se saltea la lectura
// pero el resultado fresco se escribe igual. Un error del CRM no escribe
// nada: no hay fallback a una entrada vieja, el fetch falla cerrado.
func (s *Service) fetchCached(mode string, identifiers []string, year, quarter int, ttl time.Duration, force bool) ([]pipedrivedomain.Deal, error) {
	key := CacheKey(mode, identifiers, year, quarter)

	if !force {
		if deals, ok := s.cache.Get(key); ok {
			return deals, nil
		}
	}

	var deals []pipedrivedomain.Deal
	var err error
	if len(identifiers) == 1 {
		deals, err = s.crm.FetchWonDeals(mode, identifiers[0], year, quarter)
	} else {
		deals, err = s.crm.FetchWonDealsBatch(mode, identifiers, year, quarter)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"mode":        mode,
			"identifiers": identifiers,
			"year":        year,
			"quarter":     quarter,
		}).WithError(err).Error("metas: fallo el fetch de operaciones del CRM")
		return nil, err
	}

	s.cache.Put(key, deals, ttl)
	return deals, nil
}

// ReadSnapshot devuelve el último avance persistido. Un usuario que nunca
// sincronizó recibe un snapshot en cero, no un error.
func (s *Service) ReadSnapshot(viewer domain.Actor, userID, year, quarter int) (*domain.GoalsProgressSnapshot, error) {
	if err := validatePeriod(year, quarter); err != nil {
		return nil, err
	}

	target, err := s.resolveTarget(viewer, userID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshotRepo.GetSnapshot(target.ID, year, quarter)
	if err != nil {
		return nil, NewUserGoalsError(ErrDatabaseOperation, target.ID, err.Error())
	}

	if snapshot == nil {
		return emptySnapshot(target.ID, year, quarter), nil
	}

	return snapshot, nil
}

// SaveSnapshots aplica el lote item por item: un fallo individual no frena
// el resto y se reporta en el resultado. Best-effort, no transacción.
func (s *Service) SaveSnapshots(viewer domain.Actor, payloads []domain.SnapshotPayload) (*domain.SnapshotBatchResult, error) {
	if viewer.RoleID != domain.RoleAdmin && viewer.RoleID != domain.RoleTeamLeader {
		return nil, ErrAccessDenied
	}
	if len(payloads) == 0 {
		return nil, ErrEmptySnapshots
	}

	result := &domain.SnapshotBatchResult{
		Results: make([]domain.SnapshotBatchItemResult, 0, len(payloads)),
	}

	syncedAt := s.now()
	for _, payload := range payloads {
		item := domain.SnapshotBatchItemResult{
			UserID:  payload.UserID,
			Year:    payload.Year,
			Quarter: payload.Quarter,
		}

		if err := s.saveSnapshotItem(viewer, payload, syncedAt); err != nil {
			item.Error = err.Error()
			result.Failed++
		} else {
			item.OK = true
			result.Saved++
		}

		result.Results = append(result.Results, item)
	}

	return result, nil
}

func (s *Service) saveSnapshotItem(viewer domain.Actor, payload domain.SnapshotPayload, syncedAt time.Time) error {
	if err := validatePeriod(payload.Year, payload.Quarter); err != nil {
		return err
	}
	if payload.GoalAmount < 0 || payload.ProgressAmount < 0 {
		return ErrInvalidAmount
	}

	target, err := s.resolveTarget(viewer, payload.UserID)
	if err != nil {
		return err
	}

	source := payload.Source
	if source == "" {
		source = domain.SnapshotSourcePipedrive
	}

	snapshot := &domain.GoalsProgressSnapshot{
		UserID:         target.ID,
		Year:           payload.Year,
		Quarter:        payload.Quarter,
		GoalAmount:     payload.GoalAmount,
		ProgressAmount: payload.ProgressAmount,
		Pct:            payload.Pct,
		DealsCount:     payload.DealsCount,
		LastSyncedAt:   &syncedAt,
		LastSyncedByID: &viewer.ID,
		Source:         source,
	}

	if err := s.snapshotRepo.SaveOrUpdateSnapshot(snapshot); err != nil {
		return NewUserGoalsError(ErrDatabaseOperation, target.ID, err.Error())
	}

	return nil
}

// SyncUser recalcula el avance en vivo contra el CRM y lo persiste en un
// paso. El modo de atribución se decide del lado del servidor según el
// equipo del usuario objetivo.
func (s *Service) SyncUser(viewer domain.Actor, userID, year, quarter int) (*domain.GoalsProgressSnapshot, error) {
	if err := validatePeriod(year, quarter); err != nil {
		return nil, err
	}

	target, err := s.resolveTargetUser(viewer, userID)
	if err != nil {
		return nil, err
	}

	mode := domain.AttributionModeOwner
	identifier := target.Email
	if s.cfg.Goals.IsMapacheTeam(target.Team) {
		mode = domain.AttributionModeMapache
		identifier = target.FullName()
	}

	syncID, _ := utils.GenerateID()
	logger := logrus.WithFields(logrus.Fields{
		"sync_id":    syncID,
		"user_id":    target.ID,
		"mode":       mode,
		"identifier": identifier,
		"year":       year,
		"quarter":    quarter,
	})
	logger.Info("metas: iniciando sync de avance contra el CRM")

	// El sync recalcula en vivo: se saltea la lectura del cache pero el
	// resultado fresco queda cacheado para los lookups que siguen.
	deals, err := s.fetchCached(mode, []string{identifier}, year, quarter, s.cfg.Goals.CacheTTL(), true)
	if err != nil {
		// Fallo del CRM: el sync entero se aborta, sin escritura parcial
		// del snapshot.
		return nil, err
	}

	won := FilterByQuarter(deals, year, quarter)
	progress := Aggregate(won)

	var goalAmount float64
	goal, err := s.goalRepo.GetGoal(target.ID, year, quarter)
	if err != nil {
		return nil, NewUserGoalsError(ErrDatabaseOperation, target.ID, err.Error())
	}
	if goal != nil {
		goalAmount = goal.Amount
	}

	syncedAt := s.now()
	snapshot := &domain.GoalsProgressSnapshot{
		UserID:         target.ID,
		Year:           year,
		Quarter:        quarter,
		GoalAmount:     goalAmount,
		ProgressAmount: progress.ProgressAmount,
		Pct:            Percentage(progress.ProgressAmount, goalAmount),
		DealsCount:     progress.DealsCount,
		LastSyncedAt:   &syncedAt,
		LastSyncedByID: &viewer.ID,
		Source:         domain.SnapshotSourcePipedrive,
	}

	if err := s.snapshotRepo.SaveOrUpdateSnapshot(snapshot); err != nil {
		return nil, NewUserGoalsError(ErrDatabaseOperation, target.ID, err.Error())
	}

	logger.WithFields(logrus.Fields{
		"deals_count":     snapshot.DealsCount,
		"progress_amount": snapshot.ProgressAmount,
		"pct":             snapshot.Pct,
	}).Info("metas: sync de avance completado")

	return snapshot, nil
}

// TeamSnapshots arma el rollup por miembro más los totales del equipo.
// Los totales salen de los snapshots congelados, no de las metas vivas.
func (s *Service) TeamSnapshots(viewer domain.Actor, team string, year, quarter int) (*domain.TeamSnapshotsReport, error) {
	if err := validatePeriod(year, quarter); err != nil {
		return nil, err
	}
	if team == "" {
		return nil, ErrMissingTeam
	}

	// Alcance: el propio equipo, salvo admin.
	if viewer.RoleID != domain.RoleAdmin {
		if viewer.Team == nil || *viewer.Team != team {
			return nil, ErrAccessDenied
		}
	}

	members, err := s.userRepo.ListUsersByTeam(team)
	if err != nil {
		return nil, NewGoalsError(ErrDatabaseOperation, err.Error())
	}

	report := &domain.TeamSnapshotsReport{
		Team:    team,
		Year:    year,
		Quarter: quarter,
		Members: make([]*domain.TeamMemberSnapshot, 0, len(members)),
	}

	userIDs := make([]int, 0, len(members))
	for _, member := range members {
		userIDs = append(userIDs, member.ID)
	}

	snapshots, err := s.snapshotRepo.ListSnapshotsByUsers(userIDs, year, quarter)
	if err != nil {
		return nil, NewGoalsError(ErrDatabaseOperation, err.Error())
	}

	byUser := make(map[int]*domain.GoalsProgressSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byUser[snapshot.UserID] = snapshot
	}

	for _, member := range members {
		snapshot, ok := byUser[member.ID]
		if !ok {
			snapshot = emptySnapshot(member.ID, year, quarter)
		}

		report.Members = append(report.Members, &domain.TeamMemberSnapshot{
			UserID:   member.ID,
			Name:     member.FullName(),
			Email:    member.Email,
			Snapshot: snapshot,
		})
		report.TeamGoal += snapshot.GoalAmount
		report.TeamProgress += snapshot.ProgressAmount
	}

	report.TeamGoal = utils.RoundWithTwoDecimalPlace(report.TeamGoal)
	report.TeamProgress = utils.RoundWithTwoDecimalPlace(report.TeamProgress)

	return report, nil
}

// SetQuarterlyGoal crea o corrige la meta del período por upsert.
func (s *Service) SetQuarterlyGoal(viewer domain.Actor, userID, year, quarter int, amount float64) (*domain.QuarterlyGoal, error) {
	if err := validatePeriod(year, quarter); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}
	if viewer.RoleID != domain.RoleAdmin && viewer.RoleID != domain.RoleTeamLeader {
		return nil, ErrAccessDenied
	}

	target, err := s.resolveTarget(viewer, userID)
	if err != nil {
		return nil, err
	}

	goal := &domain.QuarterlyGoal{
		UserID:  target.ID,
		Year:    year,
		Quarter: quarter,
		Amount:  amount,
	}

	if err := s.goalRepo.SaveOrUpdateGoal(goal); err != nil {
		return nil, NewUserGoalsError(ErrDatabaseOperation, target.ID, err.Error())
	}

	return goal, nil
}

// resolveTarget busca el usuario objetivo y evalúa la política de acceso.
func (s *Service) resolveTarget(viewer domain.Actor, userID int) (domain.Actor, error) {
	user, err := s.resolveTargetUser(viewer, userID)
	if err != nil {
		return domain.Actor{}, err
	}
	return user.Actor(), nil
}

func (s *Service) resolveTargetUser(viewer domain.Actor, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, NewUserGoalsError(ErrDatabaseOperation, userID, err.Error())
	}
	if user == nil {
		return nil, NewUserGoalsError(ErrUserNotFound, userID, "")
	}

	if !CanAccess(viewer, user.Actor()) {
		return nil, NewUserGoalsError(ErrAccessDenied, userID, "")
	}

	return user, nil
}

func emptySnapshot(userID, year, quarter int) *domain.GoalsProgressSnapshot {
	return &domain.GoalsProgressSnapshot{
		UserID:  userID,
		Year:    year,
		Quarter: quarter,
		Source:  domain.SnapshotSourcePipedrive,
	}
}

func validateRequest(mode string, year, quarter int) error {
	if mode != domain.AttributionModeMapache && mode != domain.AttributionModeOwner {
		return ErrInvalidMode
	}
	return validatePeriod(year, quarter)
}

func validatePeriod(year, quarter int) error {
	if quarter < 1 || quarter > 4 {
		return ErrInvalidQuarter
	}
	if year < 1000 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// ErrIsUpstream ayuda a los handlers a distinguir un fallo del CRM (502) de
// un error local.
func ErrIsUpstream(err error) bool {
	return errors.Is(err, pipedrive.ErrCRMUnavailable)
}
