package http

import (
	"errors"
	"net/http"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/domain/entity"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// DomainErrorHandler maps domain sentinel errors onto HTTP status codes.
func DomainErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrBackendUnavailable):
		ErrorHandler(c, http.StatusServiceUnavailable, "operation not supported by the configured persistence backend")
	case errors.Is(err, entity.ErrNotFound):
		ErrorHandler(c, http.StatusNotFound, "not found")
	case errors.Is(err, entity.ErrDuplicateAccount), errors.Is(err, entity.ErrDuplicateKey):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials), errors.Is(err, entity.ErrUnauthenticated), errors.Is(err, entity.ErrInvalidToken):
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, entity.ErrUnauthorized):
		ErrorHandler(c, http.StatusForbidden, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	}
}
