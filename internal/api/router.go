package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hauliq/eldview-backend-go/internal/config"
	"github.com/hauliq/eldview-backend-go/internal/database"
	"github.com/hauliq/eldview-backend-go/internal/geocode"
	"github.com/hauliq/eldview-backend-go/internal/handler"
	"github.com/hauliq/eldview-backend-go/internal/metrics"
	"github.com/hauliq/eldview-backend-go/internal/middleware"
	"github.com/hauliq/eldview-backend-go/internal/repository"
	"github.com/hauliq/eldview-backend-go/internal/routing"
	"github.com/hauliq/eldview-backend-go/internal/service"
	"github.com/hauliq/eldview-backend-go/internal/timeline"
)

// SetupRouter wires repositories, services and handlers into the HTTP
// router.
func SetupRouter(cfg *config.Config) *gin.Engine {
	db := database.GetDB()
	collector := metrics.NewCollector()

	users := repository.NewUserRepository(db)
	trips := repository.NewTripRepository(db)
	logs := repository.NewDutyLogRepository(db)

	authService := service.NewAuthService(users, cfg.JWTSecret)
	tripService := service.NewTripService(trips, logs)
	sessions := service.NewSessionRegistry(
		geocode.NewClient(cfg.GeocodeBaseURL, cfg.GeocodeAPIKey), collector)
	viewService := service.NewViewService(
		tripService,
		routing.NewClient(cfg.OSRMBaseURL),
		timeline.NewAxis(cfg.AxisSpan, cfg.AxisOffset),
		collector,
	)

	authHandler := handler.NewAuthHandler(authService, sessions)
	tripHandler := handler.NewTripHandler(tripService, viewService)
	viewHandler := handler.NewViewHandler(viewService, sessions)
	geocodeHandler := handler.NewGeocodeHandler(sessions)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the web client
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ELD view backend is running",
		})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.Auth(authService), authHandler.Logout)
			auth.GET("/me", middleware.Auth(authService), authHandler.Me)
		}

		protected := api.Group("")
		protected.Use(middleware.Auth(authService))
		{
			protected.GET("/trips", tripHandler.List)
			protected.POST("/trips", tripHandler.Create)
			protected.GET("/trips/:id", tripHandler.Get)
			protected.DELETE("/trips/:id", tripHandler.Delete)
			protected.GET("/trips/:id/details", tripHandler.Details)
			protected.GET("/trips/:id/days/:date/timeline", viewHandler.Timeline)
			protected.GET("/trips/:id/days/:date/route", viewHandler.Route)

			// The external geocoding service enforces its own quota;
			// stay well under it.
			protected.GET("/reverse-geocode",
				middleware.RateLimit(30, time.Minute), geocodeHandler.Reverse)
		}
	}

	return r
}
