package goaltracking

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive"
	pipedrivedomain "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/domain"
	pipedrivemocks "github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive/mocks"
	"github.com/jmfarina/sales-ops-api/infrastructure/repository/mocks"
	"github.com/jmfarina/sales-ops-api/internal/config"
	"github.com/jmfarina/sales-ops-api/internal/domain"
)

type serviceMocks struct {
	crm          *pipedrivemocks.MockIntegrator
	userRepo     *mocks.MockUserRepository
	goalRepo     *mocks.MockQuarterlyGoalRepository
	snapshotRepo *mocks.MockGoalsSnapshotRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		crm:          pipedrivemocks.NewMockIntegrator(ctrl),
		userRepo:     mocks.NewMockUserRepository(ctrl),
		goalRepo:     mocks.NewMockQuarterlyGoalRepository(ctrl),
		snapshotRepo: mocks.NewMockGoalsSnapshotRepository(ctrl),
	}

	cfg := &config.Config{
		Goals: config.Goals{
			MapacheTeams:        []string{"Mapaches"},
			CacheTTLSeconds:     60,
			TeamCacheTTLSeconds: 600,
		},
	}

	service := NewService(cfg, m.crm, m.userRepo, m.goalRepo, m.snapshotRepo)
	return service, m
}

func adminActor() domain.Actor {
	return domain.Actor{ID: 1, RoleID: domain.RoleAdmin}
}

func anaUser() *domain.User {
	team := "Mapaches"
	return &domain.User{
		ID:       7,
		Name:     "Ana",
		Lastname: "García",
		Email:    "ana@x.com",
		Active:   true,
		RoleID:   domain.RoleSeller,
		Team:     &team,
	}
}

func TestService_SyncUser(t *testing.T) {
	service, m := newTestService(t)

	ana := anaUser()
	wonTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	fee := 300.0

	m.userRepo.EXPECT().GetUserByID(7).Return(ana, nil)

	// El equipo Mapaches se atribuye por nombre y apellido, no por email
	m.crm.EXPECT().
		FetchWonDeals(domain.AttributionModeMapache, "Ana García", 2024, 2).
		Return([]pipedrivedomain.Deal{
			{ID: 1, Title: "Plan anual", Value: 1000, FeeMensual: &fee, WonTime: &wonTime},
		}, nil)

	m.goalRepo.EXPECT().GetGoal(7, 2024, 2).Return(&domain.QuarterlyGoal{
		UserID:  7,
		Year:    2024,
		Quarter: 2,
		Amount:  2000,
	}, nil)

	var saved *domain.GoalsProgressSnapshot
	m.snapshotRepo.EXPECT().
		SaveOrUpdateSnapshot(gomock.Any()).
		DoAndReturn(func(snapshot *domain.GoalsProgressSnapshot) error {
			saved = snapshot
			return nil
		})

	snapshot, err := service.SyncUser(adminActor(), 7, 2024, 2)

	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, 300.0, snapshot.ProgressAmount)
	assert.Equal(t, 1, snapshot.DealsCount)
	assert.Equal(t, 2000.0, snapshot.GoalAmount)
	assert.Equal(t, 15, snapshot.Pct)
	assert.Equal(t, domain.SnapshotSourcePipedrive, snapshot.Source)
	assert.NotNil(t, snapshot.LastSyncedAt)
	assert.Equal(t, 1, *snapshot.LastSyncedByID)
	assert.Equal(t, saved, snapshot)
}

func TestService_SyncUser_SinMetaCargada(t *testing.T) {
	service, m := newTestService(t)

	ana := anaUser()
	wonTime := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	m.userRepo.EXPECT().GetUserByID(7).Return(ana, nil)
	m.crm.EXPECT().
		FetchWonDeals(domain.AttributionModeMapache, "Ana García", 2024, 2).
		Return([]pipedrivedomain.Deal{{ID: 1, Value: 500, WonTime: &wonTime}}, nil)
	m.goalRepo.EXPECT().GetGoal(7, 2024, 2).Return(nil, nil)
	m.snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(nil)

	snapshot, err := service.SyncUser(adminActor(), 7, 2024, 2)

	assert.NoError(t, err)
	assert.Equal(t, 500.0, snapshot.ProgressAmount)
	assert.Equal(t, 0.0, snapshot.GoalAmount)
	// Meta en cero da 0%, no un error de división
	assert.Equal(t, 0, snapshot.Pct)
}

func TestService_SyncUser_AtribucionPorEmail(t *testing.T) {
	service, m := newTestService(t)

	lobos := "Lobos"
	carla := &domain.User{
		ID:       8,
		Name:     "Carla",
		Lastname: "Ríos",
		Email:    "carla@x.com",
		RoleID:   domain.RoleSeller,
		Team:     &lobos,
	}

	m.userRepo.EXPECT().GetUserByID(8).Return(carla, nil)

	// Un equipo fuera del listado mapache se atribuye por el email del dueño
	m.crm.EXPECT().
		FetchWonDeals(domain.AttributionModeOwner, "carla@x.com", 2024, 2).
		Return([]pipedrivedomain.Deal{}, nil)
	m.goalRepo.EXPECT().GetGoal(8, 2024, 2).Return(nil, nil)
	m.snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(nil)

	snapshot, err := service.SyncUser(adminActor(), 8, 2024, 2)

	assert.NoError(t, err)
	assert.Equal(t, 0, snapshot.DealsCount)
}

func TestService_SyncUser_FalloDelCRM(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().GetUserByID(7).Return(anaUser(), nil)
	m.crm.EXPECT().
		FetchWonDeals(domain.AttributionModeMapache, "Ana García", 2024, 2).
		Return(nil, errors.Wrapf(pipedrive.ErrCRMUnavailable, "timeout"))

	// Sin expectativa sobre el snapshotRepo: el fallo del CRM aborta el
	// sync entero, sin escritura parcial.
	snapshot, err := service.SyncUser(adminActor(), 7, 2024, 2)

	assert.Error(t, err)
	assert.Nil(t, snapshot)
	assert.True(t, ErrIsUpstream(err))
}

func TestService_SyncUser_AccesoDenegado(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().GetUserByID(7).Return(anaUser(), nil)

	viewer := domain.Actor{ID: 99, RoleID: domain.RoleSeller}
	_, err := service.SyncUser(viewer, 7, 2024, 2)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_SyncUser_UsuarioInexistente(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().GetUserByID(123).Return(nil, nil)

	_, err := service.SyncUser(adminActor(), 123, 2024, 2)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_SyncUser_PeriodoInvalido(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SyncUser(adminActor(), 7, 2024, 5)
	assert.ErrorIs(t, err, ErrInvalidQuarter)

	_, err = service.SyncUser(adminActor(), 7, 24, 2)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestService_MyDeals_UsaElCache(t *testing.T) {
	service, m := newTestService(t)

	team := "Mapaches"
	claims := &domain.Claims{
		UserID:     7,
		UserName:   "Ana García",
		UserEmail:  "ana@x.com",
		UserRoleID: domain.RoleSeller,
		UserTeam:   &team,
	}

	wonTime := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)
	deals := []pipedrivedomain.Deal{{ID: 1, Value: 100, WonTime: &wonTime}}

	// Dos llamadas idénticas dentro del TTL: un solo fetch al CRM
	m.crm.EXPECT().
		FetchWonDeals(domain.AttributionModeMapache, "Ana García", 2024, 2).
		Return(deals, nil).
		Times(1)

	first, err := service.MyDeals(claims, domain.AttributionModeMapache, 2024, 2, false)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := service.MyDeals(claims, domain.AttributionModeMapache, 2024, 2, false)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_MyDeals_ForceSalteaElCache(t *testing.T) {
	service, m := newTestService(t)

	claims := &domain.Claims{
		UserID:     7,
		UserName:   "Ana García",
		UserEmail:  "ana@x.com",
		UserRoleID: domain.RoleSeller,
	}

	wonTime := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)

	// force vuelve a pegarle al CRM aunque la entrada siga vigente
	m.crm.EXPECT().
		FetchWonDeals(domain.AttributionModeOwner, "ana@x.com", 2024, 2).
		Return([]pipedrivedomain.Deal{{ID: 1, Value: 100, WonTime: &wonTime}}, nil).
		Times(2)

	_, err := service.MyDeals(claims, domain.AttributionModeOwner, 2024, 2, false)
	assert.NoError(t, err)

	_, err = service.MyDeals(claims, domain.AttributionModeOwner, 2024, 2, true)
	assert.NoError(t, err)
}

func TestService_MyDeals_ErrorDelCRMNoCachea(t *testing.T) {
	service, m := newTestService(t)

	claims := &domain.Claims{UserID: 7, UserEmail: "ana@x.com"}

	gomock.InOrder(
		m.crm.EXPECT().
			FetchWonDeals(domain.AttributionModeOwner, "ana@x.com", 2024, 2).
			Return(nil, errors.Wrapf(pipedrive.ErrCRMUnavailable, "http 500")),
		m.crm.EXPECT().
			FetchWonDeals(domain.AttributionModeOwner, "ana@x.com", 2024, 2).
			Return([]pipedrivedomain.Deal{}, nil),
	)

	_, err := service.MyDeals(claims, domain.AttributionModeOwner, 2024, 2, false)
	assert.Error(t, err)

	// El fallo no dejó nada cacheado: el retry vuelve al CRM
	_, err = service.MyDeals(claims, domain.AttributionModeOwner, 2024, 2, false)
	assert.NoError(t, err)
}

func TestService_MyDeals_ModoInvalido(t *testing.T) {
	service, _ := newTestService(t)

	claims := &domain.Claims{UserID: 7, UserEmail: "ana@x.com"}
	_, err := service.MyDeals(claims, "carrier-pigeon", 2024, 2, false)

	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestService_TeamDeals(t *testing.T) {
	service, m := newTestService(t)

	wonTime := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)
	m.crm.EXPECT().
		FetchWonDealsBatch(domain.AttributionModeMapache, []string{"Ana García", "Bruno Paz"}, 2024, 2).
		Return([]pipedrivedomain.Deal{
			{ID: 1, Value: 100, WonTime: &wonTime},
			{ID: 2, Value: 200, WonTime: nil},
		}, nil)

	deals, err := service.TeamDeals(domain.AttributionModeMapache, []string{"Ana García", "Bruno Paz"}, 2024, 2, false)

	assert.NoError(t, err)
	// La operación sin won_time queda afuera del trimestre
	assert.Len(t, deals, 1)
	assert.Equal(t, 1, deals[0].ID)
}

func TestService_TeamDeals_SinNombres(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.TeamDeals(domain.AttributionModeMapache, nil, 2024, 2, false)
	assert.ErrorIs(t, err, ErrMissingNames)
}

func TestService_ReadSnapshot_SinSyncPrevio(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().GetUserByID(7).Return(anaUser(), nil)
	m.snapshotRepo.EXPECT().GetSnapshot(7, 2024, 2).Return(nil, nil)

	snapshot, err := service.ReadSnapshot(adminActor(), 7, 2024, 2)

	// Nunca haber sincronizado no es un error: snapshot en cero
	assert.NoError(t, err)
	assert.Equal(t, 7, snapshot.UserID)
	assert.Equal(t, 0.0, snapshot.ProgressAmount)
	assert.Equal(t, 0, snapshot.Pct)
	assert.Nil(t, snapshot.LastSyncedAt)
	assert.Equal(t, domain.SnapshotSourcePipedrive, snapshot.Source)
}

func TestService_ReadSnapshot_DevuelveLoPersistido(t *testing.T) {
	service, m := newTestService(t)

	syncedAt := time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local)
	stored := &domain.GoalsProgressSnapshot{
		ID:             33,
		UserID:         7,
		Year:           2024,
		Quarter:        2,
		GoalAmount:     2000,
		ProgressAmount: 300,
		Pct:            15,
		DealsCount:     1,
		LastSyncedAt:   &syncedAt,
		Source:         domain.SnapshotSourcePipedrive,
	}

	m.userRepo.EXPECT().GetUserByID(7).Return(anaUser(), nil)
	m.snapshotRepo.EXPECT().GetSnapshot(7, 2024, 2).Return(stored, nil)

	snapshot, err := service.ReadSnapshot(adminActor(), 7, 2024, 2)

	assert.NoError(t, err)
	assert.Equal(t, stored, snapshot)
}

func TestService_SaveSnapshots_LoteBestEffort(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().GetUserByID(7).Return(anaUser(), nil)
	m.snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(nil)

	// El segundo item apunta a un usuario inexistente
	m.userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

	payloads := []domain.SnapshotPayload{
		{UserID: 7, Year: 2024, Quarter: 2, GoalAmount: 2000, ProgressAmount: 300, Pct: 15, DealsCount: 1},
		{UserID: 99, Year: 2024, Quarter: 2},
	}

	result, err := service.SaveSnapshots(adminActor(), payloads)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].OK)
	assert.False(t, result.Results[1].OK)
	assert.NotEmpty(t, result.Results[1].Error)
}

func TestService_SaveSnapshots_MontoNegativoFallaElItem(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().GetUserByID(7).Return(anaUser(), nil)
	m.snapshotRepo.EXPECT().SaveOrUpdateSnapshot(gomock.Any()).Return(nil)

	// Los montos negativos no se persisten; el item queda reportado como
	// fallido sin frenar el resto del lote
	payloads := []domain.SnapshotPayload{
		{UserID: 7, Year: 2024, Quarter: 2, GoalAmount: 2000, ProgressAmount: 300},
		{UserID: 7, Year: 2024, Quarter: 2, GoalAmount: -2000, ProgressAmount: 300},
		{UserID: 7, Year: 2024, Quarter: 2, GoalAmount: 2000, ProgressAmount: -300},
	}

	result, err := service.SaveSnapshots(adminActor(), payloads)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, ErrInvalidAmount.Error(), result.Results[1].Error)
	assert.Equal(t, ErrInvalidAmount.Error(), result.Results[2].Error)
}

func TestService_SaveSnapshots_SoloAdminOLider(t *testing.T) {
	service, _ := newTestService(t)

	viewer := domain.Actor{ID: 3, RoleID: domain.RoleSeller}
	_, err := service.SaveSnapshots(viewer, []domain.SnapshotPayload{{UserID: 3, Year: 2024, Quarter: 2}})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_SaveSnapshots_LoteVacio(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SaveSnapshots(adminActor(), nil)
	assert.ErrorIs(t, err, ErrEmptySnapshots)
}

func TestService_TeamSnapshots(t *testing.T) {
	service, m := newTestService(t)

	mapaches := "Mapaches"
	members := []*domain.User{
		{ID: 7, Name: "Ana", Lastname: "García", Email: "ana@x.com", Team: &mapaches},
		{ID: 8, Name: "Bruno", Lastname: "Paz", Email: "bruno@x.com", Team: &mapaches},
	}

	m.userRepo.EXPECT().ListUsersByTeam("Mapaches").Return(members, nil)
	m.snapshotRepo.EXPECT().
		ListSnapshotsByUsers([]int{7, 8}, 2024, 2).
		Return([]*domain.GoalsProgressSnapshot{
			{UserID: 7, Year: 2024, Quarter: 2, GoalAmount: 2000, ProgressAmount: 300, Pct: 15, DealsCount: 1},
		}, nil)

	report, err := service.TeamSnapshots(adminActor(), "Mapaches", 2024, 2)

	assert.NoError(t, err)
	assert.Len(t, report.Members, 2)
	assert.Equal(t, "Ana García", report.Members[0].Name)
	assert.Equal(t, 300.0, report.Members[0].Snapshot.ProgressAmount)

	// El miembro sin snapshot aparece en cero, no se omite
	assert.Equal(t, 0.0, report.Members[1].Snapshot.ProgressAmount)

	assert.Equal(t, 2000.0, report.TeamGoal)
	assert.Equal(t, 300.0, report.TeamProgress)
}

func TestService_TeamSnapshots_AlcancePorEquipo(t *testing.T) {
	service, _ := newTestService(t)

	lobos := "Lobos"
	viewer := domain.Actor{ID: 2, RoleID: domain.RoleTeamLeader, Team: &lobos}

	_, err := service.TeamSnapshots(viewer, "Mapaches", 2024, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_SetQuarterlyGoal(t *testing.T) {
	service, m := newTestService(t)

	m.userRepo.EXPECT().GetUserByID(7).Return(anaUser(), nil)
	m.goalRepo.EXPECT().SaveOrUpdateGoal(gomock.Any()).Return(nil)

	goal, err := service.SetQuarterlyGoal(adminActor(), 7, 2024, 2, 2500)

	assert.NoError(t, err)
	assert.Equal(t, 7, goal.UserID)
	assert.Equal(t, 2500.0, goal.Amount)
}

func TestService_SetQuarterlyGoal_MontoNegativo(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.SetQuarterlyGoal(adminActor(), 7, 2024, 2, -1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
