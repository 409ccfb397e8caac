package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondError maps repository and service errors onto HTTP status codes.
// Not-found lookups wrap mongo.ErrNoDocuments; everything else is a 500
// unless the caller picked a status already.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, mongo.ErrNoDocuments) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
