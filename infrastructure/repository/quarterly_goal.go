package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmfarina/sales-ops-api/infrastructure/database/postgres"
	"github.com/jmfarina/sales-ops-api/internal/domain"
)

const quarterlyGoalsTable = "quarterly_goals"

type QuarterlyGoalRepository interface {
	GetGoal(userID, year, quarter int) (*domain.QuarterlyGoal, error)
	SaveOrUpdateGoal(goal *domain.QuarterlyGoal) error
}

type quarterlyGoalRepository struct {
	conn *postgres.Connection
}

func NewQuarterlyGoalRepository(conn *postgres.Connection) QuarterlyGoalRepository {
	return &quarterlyGoalRepository{
		conn: conn,
	}
}

// GetGoal devuelve nil sin error cuando el usuario todavía no tiene meta
// cargada para el período.
func (r *quarterlyGoalRepository) GetGoal(userID, year, quarter int) (*domain.QuarterlyGoal, error) {
	query, args, err := squirrel.
		Select("id, user_id, year, quarter, amount, created_at, updated_at").
		From(quarterlyGoalsTable).
		Where(squirrel.Eq{"user_id": userID, "year": year, "quarter": quarter}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	var goal domain.QuarterlyGoal
	err = r.conn.QueryRow(query, args...).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Year,
		&goal.Quarter,
		&goal.Amount,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al consultar la meta trimestral: %w", err)
	}

	return &goal, nil
}

// SaveOrUpdateGoal pisa la meta existente del período. Las metas se corrigen,
// no se versionan.
func (r *quarterlyGoalRepository) SaveOrUpdateGoal(goal *domain.QuarterlyGoal) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(quarterlyGoalsTable).
		Columns("user_id", "year", "quarter", "amount").
		Values(goal.UserID, goal.Year, goal.Quarter, goal.Amount).
		Suffix(`
			ON CONFLICT (user_id, year, quarter) DO UPDATE SET
				amount = EXCLUDED.amount,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&goal.ID); err != nil {
		return fmt.Errorf("error al guardar la meta trimestral: %w", err)
	}

	return nil
}
