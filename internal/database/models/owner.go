package models

import "time"

// Owner is a registered account that lists houses for rent
type Owner struct {
	BaseModel
	FullName         string     `json:"fullname" gorm:"size:200"`
	Email            string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username         string     `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash     string     `json:"-" gorm:"column:password;size:100;not null"`
	ResetToken       *string    `json:"-" gorm:"size:64;index"`
	ResetTokenExpiry *time.Time `json:"-"`
}

// TableName returns the table name for Owner
func (Owner) TableName() string {
	return "owners"
}

// ClearResetToken drops any pending password reset
func (o *Owner) ClearResetToken() {
	o.ResetToken = nil
	o.ResetTokenExpiry = nil
}
