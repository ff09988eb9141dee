package catalog

import "github.com/gin-gonic/gin"

func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/services", controller.ListServices)
}
