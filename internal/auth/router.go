package auth

import "github.com/gin-gonic/gin"

func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller, extra ...gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	authGroup.Use(extra...)
	{
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/register", controller.Register)
	}
}
