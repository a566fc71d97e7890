package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive"
	"github.com/jmfarina/sales-ops-api/internal/domain"
	"github.com/jmfarina/sales-ops-api/internal/usecases/goaltracking"
	"github.com/jmfarina/sales-ops-api/pkg/log"
	"github.com/jmfarina/sales-ops-api/pkg/middleware"
)

// Respuestas del módulo de metas: envelope {ok, ...} con el error en el
// cuerpo. Las rutas más viejas del portal usan el envelope de apiErrors;
// las de metas usan este.

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeGoalsJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeGoalsError traduce el error del usecase al status de la taxonomía:
// validación 400, alcance 403, recurso 404, CRM caído 502, el resto 500.
// El cuerpo lleva solo el texto del sentinel: el detalle interno (SQL, URLs
// con credenciales del CRM) queda en los logs, nunca en la respuesta.
func writeGoalsError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "error interno del servidor"

	switch {
	case goaltracking.IsValidationError(err):
		status = http.StatusBadRequest
		message = goaltracking.PublicMessage(err)
	case errors.Is(err, goaltracking.ErrAccessDenied):
		status = http.StatusForbidden
		message = goaltracking.ErrAccessDenied.Error()
	case errors.Is(err, goaltracking.ErrUserNotFound):
		status = http.StatusNotFound
		message = goaltracking.ErrUserNotFound.Error()
	case goaltracking.ErrIsUpstream(err):
		status = http.StatusBadGateway
		message = pipedrive.ErrCRMUnavailable.Error()
	}

	writeGoalsJSON(w, status, errorResponse{OK: false, Error: message})
}

func claimsFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	return claims, ok
}

// parsePeriod lee year y quarter de la query. Ambos son obligatorios.
func parsePeriod(r *http.Request) (int, int, error) {
	yearStr := r.URL.Query().Get("year")
	quarterStr := r.URL.Query().Get("quarter")
	if yearStr == "" || quarterStr == "" {
		return 0, 0, goaltracking.ErrInvalidQuarter
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, goaltracking.ErrInvalidYear
	}

	quarter, err := strconv.Atoi(quarterStr)
	if err != nil {
		return 0, 0, goaltracking.ErrInvalidQuarter
	}

	return year, quarter, nil
}

func parseForce(r *http.Request) bool {
	force := r.URL.Query().Get("force")
	return force == "true" || force == "1"
}

// GetMyDeals devuelve las operaciones ganadas del usuario de la sesión para
// el trimestre pedido.
func GetMyDeals(service goaltracking.GoalTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromContext(r)
		if !ok {
			writeGoalsJSON(w, http.StatusUnauthorized, errorResponse{Error: "no autenticado"})
			return
		}

		year, quarter, err := parsePeriod(r)
		if err != nil {
			writeGoalsError(w, err)
			return
		}

		mode := r.URL.Query().Get("mode")

		deals, err := service.MyDeals(claims, mode, year, quarter, parseForce(r))
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id": claims.UserID,
				"mode":    mode,
				"year":    year,
				"quarter": quarter,
				"error":   err.Error(),
			}).Error("metas: fallo la consulta de operaciones propias")

			writeGoalsError(w, err)
			return
		}

		writeGoalsJSON(w, http.StatusOK, map[string]any{"ok": true, "deals": deals})
	})
}

type teamSyncRequest struct {
	Names   []string `json:"names"`
	Year    int      `json:"year"`
	Quarter int      `json:"quarter"`
}

// PostTeamSync devuelve el rollup de operaciones de una lista de
// identificadores del equipo.
func PostTeamSync(service goaltracking.GoalTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req teamSyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeGoalsJSON(w, http.StatusBadRequest, errorResponse{Error: "cuerpo de la request inválido"})
			return
		}

		mode := r.URL.Query().Get("mode")

		deals, err := service.TeamDeals(mode, req.Names, req.Year, req.Quarter, parseForce(r))
		if err != nil {
			logger.WithFields(log.Fields{
				"mode":    mode,
				"names":   len(req.Names),
				"year":    req.Year,
				"quarter": req.Quarter,
				"error":   err.Error(),
			}).Error("metas: fallo el rollup de equipo")

			writeGoalsError(w, err)
			return
		}

		writeGoalsJSON(w, http.StatusOK, map[string]any{"ok": true, "deals": deals})
	})
}

// GetSnapshot devuelve el último avance persistido del usuario objetivo.
// Sin userId consulta el propio.
func GetSnapshot(service goaltracking.GoalTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			writeGoalsJSON(w, http.StatusUnauthorized, errorResponse{Error: "no autenticado"})
			return
		}

		year, quarter, err := parsePeriod(r)
		if err != nil {
			writeGoalsError(w, err)
			return
		}

		userID := claims.UserID
		if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
			userID, err = strconv.Atoi(userIDStr)
			if err != nil {
				writeGoalsJSON(w, http.StatusBadRequest, errorResponse{Error: "userId inválido"})
				return
			}
		}

		snapshot, err := service.ReadSnapshot(claims.Actor(), userID, year, quarter)
		if err != nil {
			writeGoalsError(w, err)
			return
		}

		writeGoalsJSON(w, http.StatusOK, map[string]any{"ok": true, "snapshot": snapshot})
	})
}

type saveSnapshotsRequest struct {
	Snapshots []domain.SnapshotPayload `json:"snapshots"`
}

// PostSnapshots aplica un lote de snapshots, item por item. La respuesta
// reporta cada resultado: el éxito parcial es un resultado de primera clase,
// no un error escondido.
func PostSnapshots(service goaltracking.GoalTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			writeGoalsJSON(w, http.StatusUnauthorized, errorResponse{Error: "no autenticado"})
			return
		}

		var req saveSnapshotsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeGoalsJSON(w, http.StatusBadRequest, errorResponse{Error: "cuerpo de la request inválido"})
			return
		}

		result, err := service.SaveSnapshots(claims.Actor(), req.Snapshots)
		if err != nil {
			writeGoalsError(w, err)
			return
		}

		writeGoalsJSON(w, http.StatusOK, map[string]any{
			"ok":      result.Failed == 0,
			"results": result.Results,
			"saved":   result.Saved,
			"failed":  result.Failed,
		})
	})
}

type syncUserRequest struct {
	UserID  int `json:"userId"`
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// PostSyncUser recalcula el avance del usuario objetivo contra el CRM y lo
// persiste en un paso. Sin período en el cuerpo usa el trimestre en curso.
func PostSyncUser(service goaltracking.GoalTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := claimsFromContext(r)
		if !ok {
			writeGoalsJSON(w, http.StatusUnauthorized, errorResponse{Error: "no autenticado"})
			return
		}

		var req syncUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeGoalsJSON(w, http.StatusBadRequest, errorResponse{Error: "cuerpo de la request inválido"})
			return
		}

		if req.UserID == 0 {
			writeGoalsJSON(w, http.StatusBadRequest, errorResponse{Error: "userId es obligatorio"})
			return
		}

		if req.Year == 0 || req.Quarter == 0 {
			now := time.Now()
			req.Year = now.Year()
			req.Quarter = goaltracking.QuarterOf(int(now.Month()))
		}

		snapshot, err := service.SyncUser(claims.Actor(), req.UserID, req.Year, req.Quarter)
		if err != nil {
			logger.WithFields(log.Fields{
				"viewer_id": claims.UserID,
				"user_id":   req.UserID,
				"year":      req.Year,
				"quarter":   req.Quarter,
				"error":     err.Error(),
			}).Error("metas: fallo el sync de usuario")

			writeGoalsError(w, err)
			return
		}

		writeGoalsJSON(w, http.StatusOK, map[string]any{"ok": true, "snapshot": snapshot})
	})
}

// GetTeamSnapshots devuelve el rollup de snapshots del equipo. Sin el
// parámetro team usa el equipo del usuario de la sesión.
func GetTeamSnapshots(service goaltracking.GoalTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			writeGoalsJSON(w, http.StatusUnauthorized, errorResponse{Error: "no autenticado"})
			return
		}

		year, quarter, err := parsePeriod(r)
		if err != nil {
			writeGoalsError(w, err)
			return
		}

		team := r.URL.Query().Get("team")
		if team == "" && claims.UserTeam != nil {
			team = *claims.UserTeam
		}

		report, err := service.TeamSnapshots(claims.Actor(), team, year, quarter)
		if err != nil {
			writeGoalsError(w, err)
			return
		}

		writeGoalsJSON(w, http.StatusOK, map[string]any{"ok": true, "report": report})
	})
}

type quarterlyGoalRequest struct {
	UserID  int     `json:"userId"`
	Year    int     `json:"year"`
	Quarter int     `json:"quarter"`
	Amount  float64 `json:"amount"`
}

// PutQuarterlyGoal crea o corrige la meta trimestral de un usuario.
func PutQuarterlyGoal(service goaltracking.GoalTracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r)
		if !ok {
			writeGoalsJSON(w, http.StatusUnauthorized, errorResponse{Error: "no autenticado"})
			return
		}

		var req quarterlyGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeGoalsJSON(w, http.StatusBadRequest, errorResponse{Error: "cuerpo de la request inválido"})
			return
		}

		if req.UserID == 0 {
			writeGoalsJSON(w, http.StatusBadRequest, errorResponse{Error: "userId es obligatorio"})
			return
		}

		goal, err := service.SetQuarterlyGoal(claims.Actor(), req.UserID, req.Year, req.Quarter, req.Amount)
		if err != nil {
			writeGoalsError(w, err)
			return
		}

		writeGoalsJSON(w, http.StatusOK, map[string]any{"ok": true, "goal": goal})
	})
}
