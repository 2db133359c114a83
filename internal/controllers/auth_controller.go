package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"armada_api/internal/auth"
	"armada_api/internal/middleware"
	"armada_api/internal/models"
)

// AuthController handles company registration and both login flows.
type AuthController struct {
	db   *gorm.DB
	auth *middleware.Auth
}

func NewAuthController(db *gorm.DB, authmw *middleware.Auth) *AuthController {
	return &AuthController{db: db, auth: authmw}
}

type registerInput struct {
	CompanyName string   `json:"companyName"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Features    []string `json:"features"`
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a company account. The same handler backs the public
// /register route and the admin-gated /admin/register route; the role check
// happens in the route middleware, before any validation here runs.
func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	switch {
	case input.CompanyName == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "companyName is required"})
		return
	case input.Username == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "username is required"})
		return
	case input.Password == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "password is required"})
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	company := models.Company{
		Name:     input.CompanyName,
		Username: input.Username,
		Password: hashed,
		Features: pq.StringArray(input.Features),
	}

	// Username uniqueness is left to the database constraint; a duplicate
	// surfaces here as a store error.
	if err := ac.db.Create(&company).Error; err != nil {
		logrus.WithError(err).WithField("username", input.Username).Error("could not create company")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          company.ID,
		"companyName": company.Name,
	})
}

// LoginCompany authenticates against the companies table.
func (ac *AuthController) LoginCompany(c *gin.Context) {
	ac.login(c, auth.CompanyStrategy{})
}

// LoginUser authenticates against the users table.
func (ac *AuthController) LoginUser(c *gin.Context) {
	ac.login(c, auth.UserStrategy{})
}

func (ac *AuthController) login(c *gin.Context, strategy auth.Strategy) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	switch {
	case input.Username == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "username is required"})
		return
	case input.Password == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "password is required"})
		return
	}

	identity, err := strategy.Authenticate(ac.db, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidCredentials.Error()})
			return
		}
		logrus.WithError(err).Error("login lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	token, err := ac.auth.GenerateToken(identity.ID, identity.Role)
	if err != nil {
		logrus.WithError(err).Error("could not generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"identity": identity,
	})
}
