package dbmodels

import (
	"chef-karigar-backend/models"
)

// Notification is a persisted dashboard alert. AlertKey is the dedup key:
// an event with the same key is recorded only once.
type Notification struct {
	BaseModel
	AlertKey string                  `gorm:"type:varchar(255);uniqueIndex"`
	Code     models.NotificationCode `gorm:"type:varchar(100);index"`
	Title    string                  `gorm:"type:varchar(255)"`
	Message  string
	Read     bool
}
