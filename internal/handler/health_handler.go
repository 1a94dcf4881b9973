package handler

import "github.com/gin-gonic/gin"

// Health reports liveness.
func Health(c *gin.Context) {
	respondOK(c, gin.H{"status": "up"})
}
