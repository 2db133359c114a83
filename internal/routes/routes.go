package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"armada_api/internal/config"
	"armada_api/internal/controllers"
	"armada_api/internal/middleware"
	"armada_api/internal/storage"
)

// SetupRouter wires middleware, controllers, and routes around the injected
// configuration and database handle.
func SetupRouter(cfg config.Config, db *gorm.DB) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	authmw := middleware.NewAuth(cfg.JWTSecret)

	api := r.Group("/api")
	AuthRoutes(api, authmw, controllers.NewAuthController(db, authmw))
	CompanyRoutes(api, authmw, controllers.NewCompanyController(db))
	DriverRoutes(api, authmw, controllers.NewDriverController(db, uploads))
	VehicleRoutes(api, controllers.NewVehicleController(db))

	// Uploaded documents are served back under /uploads
	r.Static("/uploads", uploads.Dir())

	return r, nil
}
