package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"chef-karigar-backend/models"
)

type StaffMember struct {
	BaseModel
	Name                   string  `gorm:"type:varchar(255)"`
	Phone                  string  `gorm:"type:varchar(255);index"`
	Skill                  string  `gorm:"type:varchar(255);index"` // free-text skill label, no taxonomy
	IsSkillVerified        bool
	ExperienceYears        int
	IsVerified             bool
	Rating                 float64
	StartDate              *time.Time
	ContractMonths         int
	ServiceCommissionTotal int
	Status                 models.StaffStatus `gorm:"type:varchar(50);index"`
	CurrentLocation        string             `gorm:"type:varchar(255)"`
	PreferredLocation      string             `gorm:"type:varchar(255)"`
	ExpectedSalary         string             `gorm:"type:varchar(100)"`
	IsUrgentPlacement      bool
	Source                 models.StaffSource `gorm:"type:varchar(50)"`
	ReferredBy             string             `gorm:"type:varchar(255)"`
	ReferredByPhone        string             `gorm:"type:varchar(255)"`
	CallLog                CallLog            `gorm:"type:jsonb"`
}

func (s StaffMember) Validate() error {
	if s.Name == "" {
		return errors.New("staff name is required")
	}
	if s.Skill == "" {
		return errors.New("staff skill is required")
	}
	if s.Rating < 0 || s.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

// IsAvailable reports whether the member can be sourced into a new bundle.
func (s StaffMember) IsAvailable() bool {
	return s.Status == models.StaffStatusActive &&
		s.CurrentLocation == models.LocationLookingForWork
}

type CallLog struct {
	LastContactedBy  string `json:"last_contacted_by,omitempty"`
	ContactedDate    string `json:"contacted_date,omitempty"`
	ContactedTime    string `json:"contacted_time,omitempty"`
	Response         string `json:"response,omitempty"`
	StaffFeedback    string `json:"staff_feedback,omitempty"`
	NextReminderDate string `json:"next_reminder_date,omitempty"`
}

func (j CallLog) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *CallLog) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type StaffFilter struct {
	Search      string `json:"search"`       // name or phone substring
	Skill       string `json:"skill"`        // exact skill label
	OnlyLooking bool   `json:"only_looking"` // currentLocation = "Looking for work"
}
