package models

import "github.com/google/uuid"

// House is a rental listing posted by an Owner
type House struct {
	BaseModel
	Title        string    `json:"title" gorm:"size:200;not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Location     string    `json:"location" gorm:"size:255;not null;index"`
	LocationLink string    `json:"locationLink" gorm:"size:1024"`
	Price        float64   `json:"price" gorm:"not null;index"`
	HouseType    string    `json:"houseType" gorm:"size:50;not null;index"`
	Phone        string    `json:"phone" gorm:"size:10;not null"`
	Email        string    `json:"email" gorm:"size:255;not null"`
	ImagePath    string    `json:"imagePath" gorm:"size:512"`
	OwnerID      uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for House
func (House) TableName() string {
	return "houses"
}
