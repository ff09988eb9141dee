// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"expohall/internal/auth"
	"expohall/internal/booths"
	"expohall/internal/catalog"
	"expohall/internal/notifications"
	"expohall/internal/reservations"
	"expohall/internal/shared/config"
	"expohall/internal/shared/database"
	"expohall/pkg/cache"
	"expohall/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer notifications.Producer
	limiter  *ratelimit.RateLimiter
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer notifications.Producer, limiter *ratelimit.RateLimiter) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
		limiter:  limiter,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		boothService := r.setupBoothRoutes(api)
		cat := r.setupCatalogRoutes(api)
		r.setupReservationRoutes(api, boothService, cat)
		r.setupAuthRoutes(api)
	}
}

// setupHealthRoutes sets up health check routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "expohall-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "expohall-backend",
		})
	})
}

func (r *Router) setupBoothRoutes(rg *gin.RouterGroup) booths.Service {
	boothRepo := booths.NewRepository(r.db.GetPostgreSQL())

	var cacheClient *cache.Client
	if r.db.GetRedis() != nil {
		cacheClient = cache.FromRedis(r.db.GetRedis(), r.config.Redis.BoothCacheTTL)
	}

	boothService := booths.NewService(boothRepo, cacheClient)
	boothController := booths.NewController(boothService)
	booths.SetupBoothRoutes(rg, boothController)
	return boothService
}

func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) catalog.Catalog {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	cat := catalog.NewCatalog(catalogRepo)
	catalogController := catalog.NewController(cat)
	catalog.SetupCatalogRoutes(rg, catalogController)
	return cat
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup, boothService booths.Service, cat catalog.Catalog) {
	boothRepo := booths.NewRepository(r.db.GetPostgreSQL())
	reservationRepo := reservations.NewRepository(r.db.GetPostgreSQL())
	reservationService := reservations.NewService(reservationRepo, boothRepo, boothService, cat, r.producer)
	reservationController := reservations.NewController(reservationService)

	var extra []gin.HandlerFunc
	if r.limiter != nil {
		extra = append(extra, r.limiter.Middleware("reservations", r.config.RateLimit.ReservationRequests))
	}
	reservations.SetupReservationRoutes(rg, r.config, reservationController, extra...)
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	var extra []gin.HandlerFunc
	if r.limiter != nil {
		extra = append(extra, r.limiter.Middleware("auth", r.config.RateLimit.AuthRequests))
	}
	auth.SetupAuthRoutes(rg, authController, extra...)
}
