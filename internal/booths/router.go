package booths

import "github.com/gin-gonic/gin"

func SetupBoothRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/booths", controller.ListBooths)
}
