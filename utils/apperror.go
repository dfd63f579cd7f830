package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorKind es el campo "type" del sobre de error uniforme.
type ErrorKind string

const (
	KindUnauthenticated    ErrorKind = "Unauthenticated"
	KindInvalidCredentials ErrorKind = "InvalidCredentials"
	KindForbidden          ErrorKind = "Forbidden"
	KindConflict           ErrorKind = "Conflict"
	KindInvalidRole        ErrorKind = "InvalidRole"
	KindInvalidTransition  ErrorKind = "InvalidTransition"
	KindInvalidAction      ErrorKind = "InvalidAction"
	KindValidationFailed   ErrorKind = "ValidationFailed"
	KindValidationError    ErrorKind = "ValidationError"
	KindNotFound           ErrorKind = "NotFound"
	KindInternal           ErrorKind = "InternalError"
)

func (k ErrorKind) StatusCode() int {
	switch k {
	case KindUnauthenticated, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// AppError es el error de dominio que cruza la frontera servicio → transporte.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

type errorBody struct {
	Type    ErrorKind `json:"type"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

// Abort traduce cualquier error al sobre {"error":{...}} y corta la request.
// Errores no tipados nunca exponen detalles internos.
func Abort(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewAppError(KindInternal, "Error interno")
	}
	c.AbortWithStatusJSON(appErr.Kind.StatusCode(), gin.H{
		"error": errorBody{Type: appErr.Kind, Message: appErr.Message},
	})
}

// AbortValidation responde errores de binding/validación con detalles.
func AbortValidation(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": errorBody{
			Type:    KindValidationError,
			Message: "Datos inválidos",
			Details: []string{err.Error()},
		},
	})
}
