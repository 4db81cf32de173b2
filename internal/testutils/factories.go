package testutils

import (
	"fmt"
	"time"

	"house-rental-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext behind every factory owner's PasswordHash
const DefaultPassword = "password123"

// OwnerFactory provides methods to create test Owner data
type OwnerFactory struct{}

// NewOwnerFactory creates a new OwnerFactory
func NewOwnerFactory() *OwnerFactory {
	return &OwnerFactory{}
}

// Create creates a test Owner with unique username and email
func (f *OwnerFactory) Create() *models.Owner {
	id := uuid.New()
	suffix := id.String()[:8]

	// MinCost keeps tests fast
	hash, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)

	return &models.Owner{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:     "Jane Owner",
		Email:        fmt.Sprintf("owner-%s@test.com", suffix),
		Username:     "owner_" + suffix,
		PasswordHash: string(hash),
	}
}

// WithUsername sets a custom username for the owner
func (f *OwnerFactory) WithUsername(username string) *models.Owner {
	owner := f.Create()
	owner.Username = username
	return owner
}

// WithEmail sets a custom email for the owner
func (f *OwnerFactory) WithEmail(email string) *models.Owner {
	owner := f.Create()
	owner.Email = email
	return owner
}

// WithResetToken sets a pending reset token expiring at expiry
func (f *OwnerFactory) WithResetToken(token string, expiry time.Time) *models.Owner {
	owner := f.Create()
	owner.ResetToken = &token
	owner.ResetTokenExpiry = &expiry
	return owner
}

// HouseFactory provides methods to create test House data
type HouseFactory struct{}

// NewHouseFactory creates a new HouseFactory
func NewHouseFactory() *HouseFactory {
	return &HouseFactory{}
}

// Create creates a test House with default values
func (f *HouseFactory) Create() *models.House {
	return &models.House{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:        "Cozy Apartment",
		Description:  "Two bedrooms close to the station",
		Location:     "Pune",
		LocationLink: "https://maps.example.com/pune",
		Price:        800,
		HouseType:    "apartment",
		Phone:        "9876543210",
		Email:        "listing@test.com",
		ImagePath:    "/uploads/1700000000000-house.jpg",
		OwnerID:      uuid.New(),
	}
}

// WithOwner sets the owner of the house
func (f *HouseFactory) WithOwner(ownerID uuid.UUID) *models.House {
	house := f.Create()
	house.OwnerID = ownerID
	return house
}

// WithDetails sets the filterable fields of the house
func (f *HouseFactory) WithDetails(ownerID uuid.UUID, location, houseType string, price float64) *models.House {
	house := f.WithOwner(ownerID)
	house.Location = location
	house.HouseType = houseType
	house.Price = price
	return house
}

// RequestFactory provides methods to create test Request data
type RequestFactory struct{}

// NewRequestFactory creates a new RequestFactory
func NewRequestFactory() *RequestFactory {
	return &RequestFactory{}
}

// Create creates a test Request with default values
func (f *RequestFactory) Create() *models.Request {
	return &models.Request{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		HouseID:       uuid.New(),
		OwnerID:       uuid.New(),
		TenantName:    "Tom Tenant",
		TenantContact: "tom@test.com",
		ContactMethod: "email",
	}
}

// ForHouse creates a request for house, copying its owner
func (f *RequestFactory) ForHouse(house *models.House) *models.Request {
	request := f.Create()
	request.HouseID = house.ID
	request.OwnerID = house.OwnerID
	return request
}

// FactorySet provides access to all factories
type FactorySet struct {
	Owner   *OwnerFactory
	House   *HouseFactory
	Request *RequestFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Owner:   NewOwnerFactory(),
		House:   NewHouseFactory(),
		Request: NewRequestFactory(),
	}
}
