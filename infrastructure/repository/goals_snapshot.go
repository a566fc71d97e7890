package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmfarina/sales-ops-api/infrastructure/database/postgres"
	"github.com/jmfarina/sales-ops-api/internal/domain"
)

const goalsSnapshotsTable = "goals_progress_snapshots"

type GoalsSnapshotRepository interface {
	GetSnapshot(userID, year, quarter int) (*domain.GoalsProgressSnapshot, error)
	SaveOrUpdateSnapshot(snapshot *domain.GoalsProgressSnapshot) error
	ListSnapshotsByUsers(userIDs []int, year, quarter int) ([]*domain.GoalsProgressSnapshot, error)
}

type goalsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewGoalsSnapshotRepository(conn *postgres.Connection) GoalsSnapshotRepository {
	return &goalsSnapshotRepository{
		conn: conn,
	}
}

const snapshotColumns = "id, user_id, year, quarter, goal_amount, progress_amount, pct, deals_count, last_synced_at, last_synced_by_id, source"

// GetSnapshot devuelve nil sin error para un usuario que nunca sincronizó:
// es un estado válido, no un fallo.
func (r *goalsSnapshotRepository) GetSnapshot(userID, year, quarter int) (*domain.GoalsProgressSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(goalsSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID, "year": year, "quarter": quarter}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	snapshot, err := r.scanSnapshot(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// SaveOrUpdateSnapshot es un upsert atómico por (user_id, year, quarter).
// La unicidad la garantiza la constraint de la tabla, no un lock de la
// aplicación: dos sync simultáneos terminan en last-write.
func (r *goalsSnapshotRepository) SaveOrUpdateSnapshot(snapshot *domain.GoalsProgressSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(goalsSnapshotsTable).
		Columns("user_id", "year", "quarter", "goal_amount", "progress_amount", "pct", "deals_count", "last_synced_at", "last_synced_by_id", "source").
		Values(
			snapshot.UserID,
			snapshot.Year,
			snapshot.Quarter,
			snapshot.GoalAmount,
			snapshot.ProgressAmount,
			snapshot.Pct,
			snapshot.DealsCount,
			snapshot.LastSyncedAt,
			snapshot.LastSyncedByID,
			snapshot.Source,
		).
		Suffix(`
			ON CONFLICT (user_id, year, quarter) DO UPDATE SET
				goal_amount = EXCLUDED.goal_amount,
				progress_amount = EXCLUDED.progress_amount,
				pct = EXCLUDED.pct,
				deals_count = EXCLUDED.deals_count,
				last_synced_at = EXCLUDED.last_synced_at,
				last_synced_by_id = EXCLUDED.last_synced_by_id,
				source = EXCLUDED.source
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&snapshot.ID); err != nil {
		return fmt.Errorf("error al guardar el snapshot: %w", err)
	}

	return nil
}

func (r *goalsSnapshotRepository) ListSnapshotsByUsers(userIDs []int, year, quarter int) ([]*domain.GoalsProgressSnapshot, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query, args, err := squirrel.
		Select(snapshotColumns).
		From(goalsSnapshotsTable).
		Where(squirrel.Eq{"user_id": userIDs, "year": year, "quarter": quarter}).
		OrderBy("user_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.GoalsProgressSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración: %w", err)
	}

	return snapshots, nil
}

func (r *goalsSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.GoalsProgressSnapshot, error) {
	var snapshot domain.GoalsProgressSnapshot
	err := row.Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.Year,
		&snapshot.Quarter,
		&snapshot.GoalAmount,
		&snapshot.ProgressAmount,
		&snapshot.Pct,
		&snapshot.DealsCount,
		&snapshot.LastSyncedAt,
		&snapshot.LastSyncedByID,
		&snapshot.Source,
	)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *goalsSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.GoalsProgressSnapshot, error) {
	var snapshot domain.GoalsProgressSnapshot
	err := rows.Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&snapshot.Year,
		&snapshot.Quarter,
		&snapshot.GoalAmount,
		&snapshot.ProgressAmount,
		&snapshot.Pct,
		&snapshot.DealsCount,
		&snapshot.LastSyncedAt,
		&snapshot.LastSyncedByID,
		&snapshot.Source,
	)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
