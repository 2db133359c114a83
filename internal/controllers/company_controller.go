package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"armada_api/internal/models"
)

// CompanyController serves company-scoped reads.
type CompanyController struct {
	db *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{db: db}
}

// ListFeatures returns the feature names of the company identified by the
// token. A missing row or an empty feature column yields an empty list.
func (cc *CompanyController) ListFeatures(c *gin.Context) {
	id := c.GetUint("id")

	var company models.Company
	if err := cc.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"features": []string{}})
			return
		}
		logrus.WithError(err).Error("could not fetch company features")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	features := []string(company.Features)
	if features == nil {
		features = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"features": features})
}
