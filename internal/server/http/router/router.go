package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/folioorder/internal/config"
	"github.com/polkiloo/folioorder/internal/server/http/handlers"
	"github.com/polkiloo/folioorder/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PortfolioFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	uploadHandler := handlers.NewUploadHandler(facade, cfg.MaxUploadBytes)

	api := engine.Group("/api")
	api.POST("/order", orderHandler.Submit)
	api.GET("/order/:id", orderHandler.Get)
	api.POST("/upload-file", uploadHandler.Upload)

	return engine
}
