package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"armada_api/internal/models"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Identity is the public-safe projection of an authenticated account.
// The password hash never leaves the strategy.
type Identity struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Features []string `json:"features,omitempty"`
}

// Strategy authenticates a username/password pair against one identity
// store. Each login route selects its own strategy.
type Strategy interface {
	Authenticate(db *gorm.DB, username, password string) (*Identity, error)
}

// CompanyStrategy authenticates against the companies table. Companies have
// no stored role; they always act as "company".
type CompanyStrategy struct{}

func (CompanyStrategy) Authenticate(db *gorm.DB, username, password string) (*Identity, error) {
	var company models.Company
	if err := db.Where("username = ?", username).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(company.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		ID:       company.ID,
		Name:     company.Name,
		Role:     "company",
		Features: company.Features,
	}, nil
}

// UserStrategy authenticates against the users table, carrying the stored
// role (e.g. "admin") into the issued token.
type UserStrategy struct{}

func (UserStrategy) Authenticate(db *gorm.DB, username, password string) (*Identity, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &Identity{
		ID:   user.ID,
		Name: user.Username,
		Role: user.Role,
	}, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
