package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// HealthHandler answers liveness and readiness probes. Liveness never
// touches the database; readiness pings it.
type HealthHandler struct {
	db      *gorm.DB
	logger  zerolog.Logger
	started time.Time
	service string
	version string
}

func NewHealthHandler(db *gorm.DB, logger zerolog.Logger, started time.Time, service, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		logger:  logger,
		started: started,
		service: service,
		version: version,
	}
}

// Probes live at the engine root, outside the /api group.
func (h *HealthHandler) RegisterRoutes(e *gin.Engine) {
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

type healthStatus struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Database      string `json:"database,omitempty"`
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthStatus{
		Status:        "ok",
		Service:       h.service,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	status := healthStatus{
		Service:       h.service,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("readiness check failed")

		status.Status = "unavailable"
		status.Database = "down"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	status.Status = "ready"
	status.Database = "up"
	c.JSON(http.StatusOK, status)
}
