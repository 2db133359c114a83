package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"armada_api/internal/models"
	"armada_api/internal/storage"
)

// DriverController handles the driver CRUD surface. Create and Update accept
// multipart forms carrying the scalar fields plus optional ktp/sim documents.
type DriverController struct {
	db      *gorm.DB
	uploads *storage.UploadStore
}

func NewDriverController(db *gorm.DB, uploads *storage.UploadStore) *DriverController {
	return &DriverController{db: db, uploads: uploads}
}

// List returns all drivers, optionally filtered by exact vehicle type via
// the jenis_kendaraan query parameter.
func (dc *DriverController) List(c *gin.Context) {
	query := dc.db
	if vt := c.Query("jenis_kendaraan"); vt != "" {
		query = query.Where("vehicle_type = ?", vt)
	}

	drivers := []models.Driver{}
	if err := query.Find(&drivers).Error; err != nil {
		logrus.WithError(err).Error("could not list drivers")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// Get returns a single driver by id.
func (dc *DriverController) Get(c *gin.Context) {
	var driver models.Driver
	if err := dc.db.First(&driver, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "driver not found"})
			return
		}
		logrus.WithError(err).Error("could not fetch driver")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, driver)
}

// Create stores the uploaded documents, then inserts the driver row. If the
// insert fails the freshly written files are removed again so no orphan is
// left behind.
func (dc *DriverController) Create(c *gin.Context) {
	driver := models.Driver{
		Name:          c.PostForm("name"),
		VehicleNumber: c.PostForm("vehicleNumber"),
		Phone:         c.PostForm("phone"),
		Status:        c.PostForm("status"),
		VehicleType:   c.PostForm("vehicleType"),
	}

	ktp, err := dc.storeFormFile(c, "ktp")
	if err != nil {
		logrus.WithError(err).Error("could not store ktp upload")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	sim, err := dc.storeFormFile(c, "sim")
	if err != nil {
		dc.discard(ktp)
		logrus.WithError(err).Error("could not store sim upload")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	driver.Ktp = ktp
	driver.Sim = sim

	if err := dc.db.Create(&driver).Error; err != nil {
		dc.discard(ktp)
		dc.discard(sim)
		logrus.WithError(err).Error("could not create driver")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, driver)
}

// Update replaces all scalar fields of an existing driver. Document
// references are replaced only when a new file is uploaded; otherwise the
// previous reference is preserved. Replaced documents stay on disk.
func (dc *DriverController) Update(c *gin.Context) {
	var driver models.Driver
	if err := dc.db.First(&driver, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "driver not found"})
			return
		}
		logrus.WithError(err).Error("could not fetch driver for update")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	driver.Name = c.PostForm("name")
	driver.VehicleNumber = c.PostForm("vehicleNumber")
	driver.Phone = c.PostForm("phone")
	driver.Status = c.PostForm("status")
	driver.VehicleType = c.PostForm("vehicleType")

	ktp, err := dc.storeFormFile(c, "ktp")
	if err != nil {
		logrus.WithError(err).Error("could not store ktp upload")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	sim, err := dc.storeFormFile(c, "sim")
	if err != nil {
		dc.discard(ktp)
		logrus.WithError(err).Error("could not store sim upload")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if ktp != nil {
		driver.Ktp = ktp
	}
	if sim != nil {
		driver.Sim = sim
	}

	if err := dc.db.Save(&driver).Error; err != nil {
		dc.discard(ktp)
		dc.discard(sim)
		logrus.WithError(err).Error("could not update driver")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, driver)
}

// Delete removes a driver row. Uploaded documents are left on disk.
func (dc *DriverController) Delete(c *gin.Context) {
	var driver models.Driver
	if err := dc.db.First(&driver, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "driver not found"})
			return
		}
		logrus.WithError(err).Error("could not fetch driver for deletion")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := dc.db.Delete(&driver).Error; err != nil {
		logrus.WithError(err).Error("could not delete driver")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// storeFormFile writes the named multipart file to the upload store and
// returns the generated name. A missing file is not an error; it yields a
// nil reference.
func (dc *DriverController) storeFormFile(c *gin.Context, field string) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	name, err := dc.uploads.Save(fh)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

// discard removes a freshly written upload after a failed row operation.
func (dc *DriverController) discard(name *string) {
	if name == nil {
		return
	}
	if err := dc.uploads.Remove(*name); err != nil {
		logrus.WithError(err).WithField("file", *name).Warn("could not remove orphaned upload")
	}
}
