package routes

import (
	"github.com/gin-gonic/gin"

	"armada_api/internal/controllers"
	"armada_api/internal/middleware"
)

func DriverRoutes(api *gin.RouterGroup, auth *middleware.Auth, ctrl *controllers.DriverController) {
	// Reads require any valid token
	drivers := api.Group("/drivers")
	drivers.Use(auth.RequireAuth())
	{
		drivers.GET("", ctrl.List)
		drivers.GET("/:id", ctrl.Get)
	}

	// Writes require the admin role
	admin := api.Group("/drivers")
	admin.Use(auth.RequireRole("admin"))
	{
		admin.POST("", ctrl.Create)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
