package project

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainproject "github.com/alanyang/projecthub/internal/domain/project"
)

// writeError maps domain errors to HTTP responses with a stable kind
// identifier. Unrecognized errors are logged and surfaced as an opaque 500 —
// storage details never cross the API boundary.
func writeError(c *gin.Context, err error) {
	var (
		notFound   domainproject.NotFoundError
		nameExists domainproject.NameExistsError
		invalid    domainproject.InvalidTransitionError
		validation domainproject.ValidationError
		limit      domainproject.LimitExceededError
	)

	switch {
	case errors.As(err, &notFound):
		respond(c, http.StatusNotFound, "project_not_found", notFound.Error())
	case errors.As(err, &nameExists):
		respond(c, http.StatusConflict, "project_name_exists", nameExists.Error())
	case errors.As(err, &invalid):
		respond(c, http.StatusBadRequest, "invalid_project_state", invalid.Error())
	case errors.As(err, &validation):
		respond(c, http.StatusBadRequest, "project_validation", validation.Error())
	case errors.As(err, &limit):
		respond(c, http.StatusForbidden, "project_limit_exceeded", limit.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled error", "path", c.Request.URL.Path, "error", err)
		respond(c, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func respond(c *gin.Context, status int, kind, message string) {
	c.JSON(status, gin.H{"error": gin.H{"kind": kind, "message": message}})
}
