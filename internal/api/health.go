package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints.
//
// Responsibilities:
//   - /healthz: basic liveness probe (always 200).
//   - /readyz: readiness probe; ready once the dataset has loaded.
type HealthHandler struct {
	ready func() error // nil result means the dataset is served
}

// NewHealthHandler constructs a HealthHandler. ready is typically
// Dataset.Ready; a nil func reports always-ready.
func NewHealthHandler(ready func() error) *HealthHandler {
	return &HealthHandler{ready: ready}
}

// Register mounts the probes on the router.
//
// Routes:
//   - GET /healthz: always 200.
//   - GET /readyz: 200 once the dataset loaded, 503 while loading or after
//     a failed load.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.ready != nil && h.ready() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
