package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"biblioteca-api/internal/docs"
	"biblioteca-api/internal/shared/middleware"
	"biblioteca-api/internal/shared/response"
	"biblioteca-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.Origins()),
	)

	router.NoRoute(response.NotFound)

	router.GET("/", func(ctx *gin.Context) {
		response.Message(ctx, http.StatusOK, "API is running")
	})
	router.GET("/health", healthCheckHandler(c))

	docs.SwaggerInfo.Version = c.Config.App.Version
	router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/docs/doc.json"))))

	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	authors := router.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id", c.AuthorHandler.Get)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.Get)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// healthCheckHandler answers 503 when the store is unreachable.
// The cache is reported but never fails the check.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "ok"
		if err := appCtx.Store.Ping(ctx); err != nil {
			log.Error().Err(err).Str("driver", appCtx.Store.Driver()).Msg("Health check: database unreachable")
			dbStatus = "error"
			health["status"] = "degraded"
		}

		cacheStatus := "disabled"
		if appCtx.Config.Redis.Enabled {
			cacheStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				log.Warn().Err(err).Msg("Health check: redis unreachable")
				cacheStatus = "error"
			}
		}

		health["services"] = gin.H{
			"database": gin.H{"driver": appCtx.Store.Driver(), "status": dbStatus},
			"cache":    cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
