package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health endpoint response
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health
// @Summary Health check
// @Description Returns ok while the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready handles GET /health/ready; it reports 503 until the database
// answers a ping.
// @Summary Readiness check
// @Description Returns ready once the database connection answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services := gin.H{}
	ready := true

	sqlDB, err := h.db.DB()
	if err != nil {
		services["database"] = "error: " + err.Error()
		ready = false
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		services["database"] = "error: " + err.Error()
		ready = false
	} else {
		services["database"] = "ready"
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"ready":     ready,
		"services":  services,
		"timestamp": time.Now().UTC(),
	})
}

// Live handles GET /health/live
// @Summary Liveness check
// @Description Returns alive while the process is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().UTC(),
	})
}

// Root handles GET /
// @Summary Liveness string
// @Description Plain-text liveness indicator at the root path
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Backend API is running!")
}
