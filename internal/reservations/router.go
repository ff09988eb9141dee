package reservations

import (
	"expohall/internal/shared/config"
	"expohall/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(rg *gin.RouterGroup, cfg *config.Config, controller *Controller, extra ...gin.HandlerFunc) {
	group := rg.Group("/reservations")
	group.Use(middleware.JWTAuth(cfg))
	group.Use(extra...)
	{
		group.POST("", controller.CreateReservation)
		group.GET("", controller.ListReservations)
		group.DELETE("/:id", controller.CancelReservation)
	}
}
