package dbmodels

import (
	"time"

	"github.com/pkg/errors"

	"chef-karigar-backend/models"
)

type Job struct {
	BaseModel
	BusinessName    string `gorm:"type:varchar(255)"`
	Role            string `gorm:"type:varchar(255);index"` // free-text role label matched against staff skill
	Location        string `gorm:"type:varchar(255)"`
	PinCode         string `gorm:"type:varchar(20)"`
	Salary          int
	ShiftType       string           `gorm:"type:varchar(100)"`
	Status          models.JobStatus `gorm:"type:varchar(50);index"`
	PaymentVerified bool
	PostedDate      time.Time
	Timeline        models.JobTimeline `gorm:"type:varchar(50)"`
}

func (j Job) Validate() error {
	if j.Role == "" {
		return errors.New("job role is required")
	}
	if j.Salary <= 0 {
		return errors.New("job salary must be positive")
	}
	return nil
}

// IsAllowStatusChange validates requisition status transitions: a job can
// only be filled or cancelled while open.
func (j Job) IsAllowStatusChange(newStatus models.JobStatus) error {
	switch newStatus {
	case models.JobStatusOpen:
		if j.Status != models.JobStatusDraft {
			return errors.New("only a draft job can be opened")
		}
	case models.JobStatusFilled, models.JobStatusCancelled:
		if j.Status != models.JobStatusOpen {
			return errors.New("job is not open")
		}
	default:
		return errors.New("unknown job status")
	}
	return nil
}
