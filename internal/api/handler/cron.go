package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/jmfarina/sales-ops-api/internal/scheduler"
	"github.com/jmfarina/sales-ops-api/pkg/apiErrors"
)

// Tipos de cron job que se pueden disparar a mano
const (
	CronJobTypeGoals = "goals"
)

// CronJobServices agrupa los servicios de cron disponibles para ejecución
// manual
type CronJobServices struct {
	GoalsSyncService *scheduler.GoalsSyncService
}

// RunCronJob dispara manualmente una cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeGoals:
			if services.GoalsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización de metas no disponible", nil)
				return
			}
			services.GoalsSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: goals", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada con éxito",
			"type":    cronType,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus devuelve el estado de las cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.GoalsSyncService != nil {
			status["goals"] = services.GoalsSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
