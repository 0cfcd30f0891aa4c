package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"library-services/internal/store"

	"github.com/gin-gonic/gin"
)

// respondStoreError maps a store failure to its response: field errors to
// 400, missing records to 404, everything else to an opaque 500. The raw
// error is only ever logged server-side.
func respondStoreError(c *gin.Context, err error, resource string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": resource + " not found"})
	default:
		log.Printf("store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to process " + resource + " request"})
	}
}

// parseIntQuery reads a positive integer query parameter, falling back on
// absent, malformed or non-positive values.
func parseIntQuery(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
