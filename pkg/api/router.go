package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wallpro-landing/pkg/middleware"
)

// NewRouter registers the landing page routes on a fresh gin engine.
// staticDir holds the photos/ and assets/ trees served as-is.
func NewRouter(handlers *Handlers, staticDir string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.SecurityHeaders(),
	)

	router.GET("/", handlers.LandingPage)
	router.GET("/quote", handlers.RedirectToForm)
	router.POST("/quote", handlers.HandleQuoteForm)
	router.GET("/health", handlers.HealthCheck)

	router.Static("/photos", filepath.Join(staticDir, "photos"))
	router.Static("/assets", filepath.Join(staticDir, "assets"))

	return router
}
