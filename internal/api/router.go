package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rfsouza/capitolwatch/internal/middleware"
)

// NewRouter creates a Gin engine with all dashboard routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, RequestLogger, Recovery,
//     ErrorHandler, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the /api/v1 routes.
//
// Health and readiness probes are registered separately in
// app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/trades", handler.GetTrades)
		v1.GET("/statistics", handler.GetStatistics)
		v1.GET("/options", handler.GetOptions)
		v1.GET("/export", handler.ExportCSV)
		v1.GET("/status", handler.GetStatus)

		sess := v1.Group("/session")
		{
			sess.PATCH("/filters", handler.PatchFilters)
			sess.POST("/sort", handler.PostSort)
			sess.POST("/page", handler.PostPage)
			sess.POST("/favorites/:representative", handler.ToggleFavorite)
			sess.POST("/watchlist/:ticker", handler.ToggleWatchlist)
			sess.POST("/stats-visibility", handler.PostStatsVisibility)
		}
	}

	return router
}
