package domain

import "time"

// Modos de atribución de operaciones del CRM a un vendedor.
const (
	AttributionModeMapache = "mapache" // por el campo "mapache asignado" (nombre y apellido)
	AttributionModeOwner   = "owner"   // por el email del dueño de la operación en el CRM
)

// SnapshotSourcePipedrive es la etiqueta de procedencia de los snapshots
// generados a partir del CRM.
const SnapshotSourcePipedrive = "pipedrive"

// QuarterlyGoal es la meta trimestral de un vendedor. Se corrige por upsert,
// no se versiona.
type QuarterlyGoal struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Year      int       `json:"year"`
	Quarter   int       `json:"quarter"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GoalsProgressSnapshot es el avance persistido de la meta de un (usuario,
// año, trimestre). GoalAmount y Pct quedan congelados al momento del sync:
// si la meta se edita después, el snapshot no se reconcilia hasta el próximo
// sync.
type GoalsProgressSnapshot struct {
	ID             int        `json:"id"`
	UserID         int        `json:"user_id"`
	Year           int        `json:"year"`
	Quarter        int        `json:"quarter"`
	GoalAmount     float64    `json:"goal_amount"`
	ProgressAmount float64    `json:"progress_amount"`
	Pct            int        `json:"pct"`
	DealsCount     int        `json:"deals_count"`
	LastSyncedAt   *time.Time `json:"last_synced_at"`
	LastSyncedByID *int       `json:"last_synced_by_id"`
	Source         string     `json:"source"`
}

// SnapshotPayload es un item del upsert en lote de snapshots.
type SnapshotPayload struct {
	UserID         int     `json:"userId"`
	Year           int     `json:"year"`
	Quarter        int     `json:"quarter"`
	GoalAmount     float64 `json:"goalAmount"`
	ProgressAmount float64 `json:"progressAmount"`
	Pct            int     `json:"pct"`
	DealsCount     int     `json:"dealsCount"`
	Source         string  `json:"source,omitempty"`
}

// SnapshotBatchItemResult reporta el resultado individual de cada item del
// lote. El lote es best-effort: los fallos no detienen el resto.
type SnapshotBatchItemResult struct {
	UserID  int    `json:"userId"`
	Year    int    `json:"year"`
	Quarter int    `json:"quarter"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

type SnapshotBatchResult struct {
	Results []SnapshotBatchItemResult `json:"results"`
	Saved   int                       `json:"saved"`
	Failed  int                       `json:"failed"`
}

// TeamMemberSnapshot es una fila del rollup por equipo.
type TeamMemberSnapshot struct {
	UserID   int                    `json:"user_id"`
	Name     string                 `json:"name"`
	Email    string                 `json:"email"`
	Snapshot *GoalsProgressSnapshot `json:"snapshot"`
}

type TeamSnapshotsReport struct {
	Team         string                `json:"team"`
	Year         int                   `json:"year"`
	Quarter      int                   `json:"quarter"`
	Members      []*TeamMemberSnapshot `json:"members"`
	TeamGoal     float64               `json:"team_goal"`
	TeamProgress float64               `json:"team_progress"`
}

// GoalsProgress es el resultado de la agregación de avance sobre las
// operaciones ganadas de un trimestre.
type GoalsProgress struct {
	ProgressAmount float64 `json:"progress_amount"`
	DealsCount     int     `json:"deals_count"`
}
