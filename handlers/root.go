package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobhub104/backend/models"
)

// APIVersion is reported by the root and health endpoints
const APIVersion = "1.0.0"

// Root reports API status and the endpoint directory
// @Summary API status
// @Description Health check plus a directory of the available endpoints
// @Tags System
// @Produce json
// @Success 200 {object} models.RootResponse "API status"
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Status:     "online",
		APIVersion: APIVersion,
		Endpoints: map[string]string{
			"/":            "API health check",
			"/search_104":  "search 104 job listings",
			"/document":    "document keyword query",
			"/vectorstore": "vector store query (placeholder)",
		},
	})
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   APIVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
