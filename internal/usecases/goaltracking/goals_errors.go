package goaltracking

import (
	"errors"
	"fmt"

	"github.com/jmfarina/sales-ops-api/infrastructure/integrator/pipedrive"
)

// Errores del módulo de metas
var (
	// Errores de validación
	ErrInvalidQuarter  = errors.New("el trimestre debe estar entre 1 y 4")
	ErrInvalidYear     = errors.New("el año debe tener 4 dígitos")
	ErrInvalidMode     = errors.New("modo de atribución inválido")
	ErrMissingNames    = errors.New("la lista de nombres no puede estar vacía")
	ErrInvalidAmount   = errors.New("el monto no puede ser negativo")
	ErrEmptySnapshots  = errors.New("la lista de snapshots no puede estar vacía")
	ErrMissingTeam     = errors.New("el equipo es obligatorio")

	// Errores de autorización
	ErrAccessDenied = errors.New("no tenés permiso para acceder a las metas de este usuario")

	// Errores de recursos
	ErrUserNotFound = errors.New("usuario no encontrado")

	// Errores de infraestructura
	ErrDatabaseOperation = errors.New("error al operar sobre la base de datos")
)

// GoalsError agrega contexto a un error del módulo de metas.
type GoalsError struct {
	Err     error  // Error base
	UserID  int    // ID del usuario objetivo (cuando aplica)
	Details string // Detalle adicional
}

// Error implementa la interfaz error
func (e *GoalsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap devuelve el error subyacente
func (e *GoalsError) Unwrap() error {
	return e.Err
}

func NewGoalsError(baseErr error, details string) *GoalsError {
	return &GoalsError{
		Err:     baseErr,
		Details: details,
	}
}

func NewUserGoalsError(baseErr error, userID int, details string) *GoalsError {
	return &GoalsError{
		Err:     baseErr,
		UserID:  userID,
		Details: details,
	}
}

// validationSentinels agrupa los errores que el handler traduce a 400,
// incluidos los de validación de entrada del integrador del CRM.
var validationSentinels = []error{
	ErrInvalidQuarter,
	ErrInvalidYear,
	ErrInvalidMode,
	ErrMissingNames,
	ErrInvalidAmount,
	ErrEmptySnapshots,
	ErrMissingTeam,
	pipedrive.ErrEmptyIdentifier,
	pipedrive.ErrInvalidQuarter,
	pipedrive.ErrInvalidYear,
}

// IsValidationError indica si el error se traduce a 400.
func IsValidationError(err error) bool {
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// PublicMessage devuelve el texto apto para el cuerpo de una respuesta: el
// sentinel subyacente, sin el detalle que acumula la cadena de wraps (SQL,
// URLs del CRM).
func PublicMessage(err error) string {
	var goalsErr *GoalsError
	if errors.As(err, &goalsErr) {
		return goalsErr.Err.Error()
	}

	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return err.Error()
}
