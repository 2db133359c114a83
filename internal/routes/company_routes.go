package routes

import (
	"github.com/gin-gonic/gin"

	"armada_api/internal/controllers"
	"armada_api/internal/middleware"
)

func CompanyRoutes(api *gin.RouterGroup, auth *middleware.Auth, ctrl *controllers.CompanyController) {
	api.GET("/features", auth.RequireAuth(), ctrl.ListFeatures)
}
