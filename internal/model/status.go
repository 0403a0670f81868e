// internal/model/status.go
package model

import "time"

// Status is a short text post owned by exactly one user. CreatedAt is set
// on insert and never changes; editing replaces the text only. The foreign
// key cascades so deleting a user removes all of their statuses.
type Status struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	Text      string    `gorm:"column:status_text;size:280;not null" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM
func (Status) TableName() string {
	return "statuses"
}
