package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/logger"
)

// HandleAPIError maps service-layer error kinds onto HTTP responses. All
// controllers route their service errors through here so status codes stay
// consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	var details map[string]interface{}
	if errors.As(err, &custom) {
		if custom.Message != "" {
			message = custom.Message
		}
		details = custom.Details
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, details)
	case errors.Is(err, apperrors.ErrHasDependents):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceHasDependents, message, details)
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, conflictCode(message), message, details)
	case errors.Is(err, apperrors.ErrValidation):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message, details)
	case errors.Is(err, apperrors.ErrTransient):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Transient storage failure")
		respond(c, http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError, "Temporary storage failure, please retry", nil)
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", nil)
	}
}

// conflictCode distinguishes schedule collisions from uniqueness conflicts so
// clients can branch without parsing messages.
func conflictCode(message string) dto.ErrorCode {
	if strings.Contains(message, "conflict on") || strings.Contains(message, "overlap") {
		return dto.ErrorCodeScheduleConflict
	}
	return dto.ErrorCodeResourceAlreadyExists
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string, details map[string]interface{}) {
	detail := dto.NewErrorDetail(code, message)
	if details != nil {
		detail = detail.WithDetails(details)
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}
