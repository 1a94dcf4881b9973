package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/service"
)

// Envelope is the response shape shared by every /api endpoint.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Message: "OK", Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Message: "Created", Data: data})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Message: message, Data: nil})
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Envelope{Message: "Not found", Data: nil})
}

// respondError maps the engine's error taxonomy onto status codes. Anything
// outside the taxonomy is a 500 with no detail exposed.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		respondBadRequest(c, ve.Reason)
	case errors.Is(err, service.ErrNotFound):
		respondNotFound(c)
	default:
		c.JSON(http.StatusInternalServerError, Envelope{Message: "Server error", Data: nil})
	}
}
