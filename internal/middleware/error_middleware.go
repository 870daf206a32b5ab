package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sis-eval/backend/internal/app/models/dto"
	"github.com/sis-eval/backend/internal/pkg/apperrors"
	"github.com/sis-eval/backend/internal/pkg/dberrors"
	"github.com/sis-eval/backend/internal/pkg/logger"
)

// HandleAPIError maps an application error to its HTTP response. Unknown
// errors are logged and answered with a generic 500 so store internals never
// reach the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		abortWithError(c, http.StatusNotAcceptable, detailFor(err, dto.ErrorCodeInvalidID, "invalid id"))
	case errors.Is(err, apperrors.ErrScoreOutOfRange):
		abortWithError(c, http.StatusNotAcceptable, detailFor(err, dto.ErrorCodeScoreOutOfRange, "scores must be between 0 and 5"))
	case errors.Is(err, apperrors.ErrMissingFields):
		abortWithError(c, http.StatusBadRequest, detailFor(err, dto.ErrorCodeValidationFailed, "missing required fields"))
	case errors.Is(err, apperrors.ErrMissingSearchParams):
		abortWithError(c, http.StatusBadRequest, detailFor(err, dto.ErrorCodeValidationFailed, "search type and search term are required"))
	case errors.Is(err, apperrors.ErrInvalidSearchType):
		abortWithError(c, http.StatusBadRequest, detailFor(err, dto.ErrorCodeValidationFailed, "invalid search type"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, detailFor(err, dto.ErrorCodeValidationFailed, "validation failed"))
	case errors.Is(err, apperrors.ErrProfessorNotFound):
		abortWithError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "professor not found"))
	case errors.Is(err, apperrors.ErrEvaluatorNotFound):
		abortWithError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "evaluator not found").WithField("evaluadorId"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abortWithError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "resource not found"))
	case dberrors.IsDatabaseError(err):
		logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Database request failed")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "internal server error").WithSeverity(dto.ErrorSeverityCritical))
	default:
		logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error").WithSeverity(dto.ErrorSeverityCritical))
	}
}

// RespondBindingError answers a request whose body or query failed to bind
func RespondBindingError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "invalid request data")
	if verrs := validationDetails(err); verrs.HasErrors() {
		detail = detail.WithDetails(verrs.Errors)
	}
	abortWithError(c, http.StatusBadRequest, detail)
}

// NotFoundHandler answers unmatched routes
func NotFoundHandler(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "route not found"))
}

// detailFor prefers the message carried by a CustomError over the fallback
func detailFor(err error, code dto.ErrorCode, fallback string) *dto.ErrorDetail {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		detail := dto.NewErrorDetail(code, custom.Error())
		if custom.Field != "" {
			detail = detail.WithField(custom.Field)
		}
		return detail
	}
	return dto.NewErrorDetail(code, fallback)
}

func abortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
