// Package middleware contains the central API error translation and
// request binding helpers.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusreg/deptregistry/internal/app/models/dto"
	"github.com/campusreg/deptregistry/internal/pkg/apperrors"
	"github.com/campusreg/deptregistry/internal/pkg/dberrors"
	"github.com/campusreg/deptregistry/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Errors the
// services detected locally (validation, conflict, not found) map directly;
// anything else is treated as a storage fault and classified generically.
func HandleAPIError(c *gin.Context, err error) {
	var fieldErr *apperrors.FieldError

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		resp := dto.NewErrorResponse(err.Error())
		if errors.As(err, &fieldErr) {
			resp = resp.WithField(fieldErr.Field)
		}
		c.JSON(http.StatusBadRequest, resp)

	case errors.Is(err, apperrors.ErrConflict):
		resp := dto.NewErrorResponse(err.Error())
		if errors.As(err, &fieldErr) {
			resp = resp.WithField(fieldErr.Field)
		}
		c.JSON(http.StatusConflict, resp)

	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Department not found!"))

	case errors.Is(err, apperrors.ErrInvalidApprovalToken):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid or expired approval token").WithField("token"))

	default:
		HandleDatabaseError(c, err)
	}
}

// HandleDatabaseError maps known storage fault shapes onto the generic
// error codes; unrecognized faults are logged and answered opaquely.
func HandleDatabaseError(c *gin.Context, err error) {
	classified := dberrors.Classify(err)

	switch classified.Code {
	case dberrors.CodeDuplicateEntry:
		c.JSON(http.StatusConflict, dto.NewErrorResponse(classified.Message).
			WithErrorCode(classified.Code).
			WithField(classified.Field))

	case dberrors.CodeValidation:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(classified.Message).
			WithErrorCode(classified.Code).
			WithDetails(classified.Details...))

	case dberrors.CodeInvalidIDFormat:
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(classified.Message).
			WithErrorCode(classified.Code))

	case dberrors.CodeConnection:
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(classified.Message).
			WithErrorCode(classified.Code))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled database error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(classified.Message).
			WithErrorCode(dberrors.CodeDatabase))
	}
}
