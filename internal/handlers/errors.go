package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/patient_decisions_app/internal/apperrors"
	"github.com/SscSPs/patient_decisions_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps a classified service failure onto an HTTP status.
func statusFor(svcErr *apperrors.ServiceError) int {
	kind := apperrors.KindOf(svcErr)
	switch svcErr.Tier {
	case apperrors.TierValidation:
		if kind == apperrors.KindNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case apperrors.TierDependencyValidation:
		switch kind {
		case apperrors.KindAlreadyExists:
			return http.StatusConflict
		case apperrors.KindLocked:
			return http.StatusLocked
		default:
			return http.StatusUnprocessableEntity
		}
	case apperrors.TierDependency:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders err. The service has already logged it.
func writeServiceError(c *gin.Context, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	body := dto.ErrorResponse{Error: svcErr.Message}
	if failure, ok := svcErr.Failure(); ok {
		body.Reason = failure.Message
		body.Details = failure.Fields
	}
	c.JSON(statusFor(svcErr), body)
}
