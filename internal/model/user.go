// internal/model/user.go
package model

import "time"

// User is an account row. ExternalAuth marks accounts created through an
// external identity provider: they carry no local password and can never
// pass password authentication.
type User struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Username     string    `gorm:"column:username;size:255;not null;uniqueIndex" json:"username"`
	Password     string    `gorm:"column:password;size:255;not null" json:"-"`
	ExternalAuth bool      `gorm:"column:external_auth;not null;default:false" json:"external_auth"`
	DisplayName  string    `gorm:"column:display_name;size:255" json:"display_name,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
