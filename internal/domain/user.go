package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de acceso al portal
const (
	RoleAdmin      = 1
	RoleTeamLeader = 2
	RoleSeller     = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Team         *string    `json:"team"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName es el identificador de atribución que usa el modo "mapache":
// el campo "mapache asignado" del CRM guarda nombre y apellido.
func (u *User) FullName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	UserTeam   *string
	jwt.RegisteredClaims
}

// Actor es la vista mínima de un usuario que necesita la política de acceso.
type Actor struct {
	ID     int
	RoleID int
	Team   *string
}

func (c *Claims) Actor() Actor {
	return Actor{
		ID:     c.UserID,
		RoleID: c.UserRoleID,
		Team:   c.UserTeam,
	}
}

func (u *User) Actor() Actor {
	return Actor{
		ID:     u.ID,
		RoleID: u.RoleID,
		Team:   u.Team,
	}
}
