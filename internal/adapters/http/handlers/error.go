package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trendloom/backoffice/internal/core/serviceerrors"
)

// ErrorResponse mirrors the envelope the admin panel expects: success is
// always false and message carries the reason.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(mapKindToHTTP(svcErr.Kind), ErrorResponse{Message: svcErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindUnprocessableEntity:
		return http.StatusUnprocessableEntity
	case serviceerrors.KindInvalidRequest:
		return http.StatusBadRequest
	case serviceerrors.KindUnauthorized:
		return http.StatusUnauthorized
	case serviceerrors.KindForbidden:
		return http.StatusForbidden
	case serviceerrors.KindUploadFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
