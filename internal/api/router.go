// Package api exposes the planning operations over HTTP with gin.
package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kondate/internal/app"
	"kondate/internal/auth"
	"kondate/internal/config"
)

// NewRouter builds the gin engine with all routes registered. Every /api/v1
// route sits behind the bearer-token middleware.
func NewRouter(cfg *config.Config, application *app.App, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := &handlers{app: application, dbPath: cfg.Database.Path}

	router.GET("/healthz", h.health)

	v1 := router.Group("/api/v1", auth.Middleware(cfg.Auth.JWTSecret))
	{
		v1.POST("/plans", h.generatePlan)
		v1.GET("/plans/week", h.weeklyPlan)
		v1.GET("/plans/days/:date", h.dayMenu)
		v1.POST("/plans/days/:date/refresh", h.refreshDay)
		v1.POST("/plans/swap", h.swapDays)

		v1.GET("/shopping-list", h.shoppingList)
		v1.POST("/shopping-list/check", h.checkOffItem)

		v1.GET("/inventory", h.listInventory)
		v1.PUT("/inventory", h.setInventoryItem)
		v1.DELETE("/inventory", h.removeInventoryItem)

		v1.GET("/settings", h.getSettings)
		v1.PUT("/settings", h.saveSettings)

		v1.GET("/family", h.listFamily)
		v1.POST("/family", h.addFamilyMember)
		v1.PUT("/family/:id", h.updateFamilyMember)
		v1.DELETE("/family/:id", h.removeFamilyMember)

		v1.GET("/favorites", h.listFavorites)
		v1.POST("/favorites", h.addFavorite)
		v1.DELETE("/favorites/:dish", h.removeFavorite)

		v1.POST("/history/cooked", h.markCooked)
		v1.GET("/history", h.listHistory)
		v1.DELETE("/history/:id", h.deleteHistory)

		v1.GET("/stats/generations", h.generationStats)
	}

	return router
}

// requestLogger emits one structured line per request with status-dependent
// level.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestid.Get(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			logger.Error("request failed", fields...)
		case status >= 400:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}
