package routes

import (
	"github.com/gin-gonic/gin"

	"armada_api/internal/controllers"
	"armada_api/internal/middleware"
)

func AuthRoutes(api *gin.RouterGroup, auth *middleware.Auth, ctrl *controllers.AuthController) {
	api.POST("/register", ctrl.Register)
	api.POST("/login", ctrl.LoginCompany)
	api.POST("/users/login", ctrl.LoginUser)

	admin := api.Group("/admin")
	admin.Use(auth.RequireRole("admin"))
	{
		admin.POST("/register", ctrl.Register)
	}
}
