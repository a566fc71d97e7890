package handler

import (
	"net/http"

	"github.com/jmfarina/sales-ops-api/internal/api/handler/router"
	"github.com/jmfarina/sales-ops-api/internal/usecases/authenticating"
	"github.com/jmfarina/sales-ops-api/internal/usecases/goaltracking"
	"github.com/jmfarina/sales-ops-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Goals arma las rutas del módulo de metas. El filtro de rol por endpoint es
// grueso: el alcance por usuario objetivo lo decide la política del usecase.
func Goals(service goaltracking.GoalTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals/my-deals",
			Method:      http.MethodGet,
			Handler:     GetMyDeals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/team-sync",
			Method:      http.MethodPost,
			Handler:     PostTeamSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrTeamLeader()},
		},
		{
			Path:        "/v1/goals/snapshot",
			Method:      http.MethodGet,
			Handler:     GetSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/snapshot",
			Method:      http.MethodPost,
			Handler:     PostSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrTeamLeader()},
		},
		{
			Path:        "/v1/goals/sync-user",
			Method:      http.MethodPost,
			Handler:     PostSyncUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/team-snapshots",
			Method:      http.MethodGet,
			Handler:     GetTeamSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/quarterly",
			Method:      http.MethodPut,
			Handler:     PutQuarterlyGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrTeamLeader()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
