package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"armada_api/internal/models"
)

// VehicleController serves the read-only vehicle surface.
type VehicleController struct {
	db *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{db: db}
}

// List returns all vehicles. No auth, no filtering, no pagination.
func (vc *VehicleController) List(c *gin.Context) {
	vehicles := []models.Vehicle{}
	if err := vc.db.Find(&vehicles).Error; err != nil {
		logrus.WithError(err).Error("could not list vehicles")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
