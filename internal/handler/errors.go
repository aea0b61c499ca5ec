package handler

import (
	"errors"
	"net/http"

	"access-compass-api/internal/repository"
	"access-compass-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// writeError maps the error taxonomy onto HTTP statuses: validation
// failures become 400, missing entities 404, everything else 500 with
// the detail kept server-side.
func writeError(c *gin.Context, err error, notFoundMsg string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
