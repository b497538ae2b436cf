package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"resumelens/internal/storage/temp"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store *temp.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store *temp.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
// The service is ready when the temp directory is writable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	probe := filepath.Join(h.store.Dir(), ".readyz-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "temp storage not writable"})
		return
	}
	_ = os.Remove(probe)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
