package routes

import (
	"github.com/gin-gonic/gin"

	"armada_api/internal/controllers"
)

func VehicleRoutes(api *gin.RouterGroup, ctrl *controllers.VehicleController) {
	api.GET("/vehicles", ctrl.List)
}
