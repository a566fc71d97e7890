package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmfarina/sales-ops-api/infrastructure/database/postgres"
	"github.com/jmfarina/sales-ops-api/internal/domain"
	_ "github.com/lib/pq"
)

const usersTable = "users"

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID int) (*domain.User, error)
	ListActiveUsers() ([]*domain.User, error)
	ListUsersByTeam(team string) ([]*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

const userColumns = "id, name, lastname, email, password_hash, active, role_id, team, created_at, updated_at"

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE deleted = false AND email = $1",
		email,
	).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Team,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByID(userID int) (*domain.User, error) {
	var user domain.User
	err := r.conn.QueryRow(
		"SELECT "+userColumns+" FROM users WHERE deleted = false AND id = $1",
		userID,
	).Scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.Team,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListActiveUsers() ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false, "active": true}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryUsers(queryBuilder)
}

func (r *userRepository) ListUsersByTeam(team string) ([]*domain.User, error) {
	queryBuilder := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"deleted": false, "active": true, "team": team}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryUsers(queryBuilder)
}

func (r *userRepository) queryUsers(queryBuilder squirrel.SelectBuilder) ([]*domain.User, error) {
	usersSQL, usersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(usersSQL, usersArgs...)
	if err != nil {
		return nil, fmt.Errorf("error al consultar usuarios: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Lastname,
			&user.Email,
			&user.PasswordHash,
			&user.Active,
			&user.RoleID,
			&user.Team,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error al escanear usuario: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración: %w", err)
	}

	return users, nil
}
