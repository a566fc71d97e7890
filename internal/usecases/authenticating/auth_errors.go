package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación del portal
var (
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrUserDisabled        = errors.New("usuario desactivado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrMissingRequiredData = errors.New("faltan datos obligatorios")
	ErrDatabaseOperation   = errors.New("error al operar sobre la base de datos")
)

// AuthError agrega contexto a un error de autenticación.
type AuthError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	UserID  int    // ID del usuario involucrado (cuando aplica)
	Details string // Detalle adicional
}

// Error implementa la interfaz error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap devuelve el error subyacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// IsCredentialsError agrupa los errores de credenciales inválidas.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}
