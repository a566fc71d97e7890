package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error de la API
const (
	// Errores de autenticación (AUTH)
	ErrInvalidCredentials    = "AUTH_001" // Credenciales inválidas
	ErrUserDisabled          = "AUTH_002" // Usuario desactivado
	ErrUserNotFound          = "AUTH_003" // Usuario no encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilegios insuficientes

	// Errores de validación (VAL)
	ErrInvalidRequest      = "VAL_001" // Request inválida
	ErrMissingRequiredData = "VAL_002" // Faltan datos obligatorios
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Errores del servidor (SRV)
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de operación en la base de datos

	// Errores de integración con el CRM (CRM)
	ErrCRMUpstream = "CRM_001" // Fallo al consultar el CRM
)

// Mapeo de códigos de error a status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrCRMUpstream:           http.StatusBadGateway,
}

// APIError representa un error de API estandarizado
type APIError struct {
	Code    string `json:"code"`              // Código de error para el cliente
	Message string `json:"message,omitempty"` // Mensaje descriptivo (opcional)
	Details any    `json:"details,omitempty"` // Detalle adicional (opcional)
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
