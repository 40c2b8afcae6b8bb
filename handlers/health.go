package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Report that the server is up and whether the employees database answers
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":   "ok",
		"message":  "Server is running",
		"database": "unavailable",
	}

	if h.databaseUp != nil && h.databaseUp(c.Request.Context()) {
		status["database"] = "connected"
	}

	c.JSON(http.StatusOK, status)
}

// NotFoundHandler answers unknown routes.
func (h *Handlers) NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
}
