package models

import "github.com/google/uuid"

// Request is a tenant's contact request for a House.
// OwnerID is copied from the house at creation time and is not kept in sync.
type Request struct {
	BaseModel
	HouseID       uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	House         *House    `json:"houseId" gorm:"foreignKey:HouseID"`
	OwnerID       uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`
	TenantName    string    `json:"tenantName" gorm:"size:200;not null"`
	TenantContact string    `json:"tenantContact" gorm:"size:255;not null"`
	ContactMethod string    `json:"contactMethod" gorm:"size:50"`
}

// TableName returns the table name for Request
func (Request) TableName() string {
	return "requests"
}
