package staffapimodels

import (
	"github.com/pkg/errors"

	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type StaffData struct {
	Name              string             `json:"name"`             // full name
	Phone             string             `json:"phone"`            // contact phone
	Skill             string             `json:"skill"`            // free-text skill label
	ExperienceYears   int                `json:"experience_years"` // years of experience
	CurrentLocation   string             `json:"current_location"` // outlet or "Looking for work"
	PreferredLocation string             `json:"preferred_location"`
	ExpectedSalary    string             `json:"expected_salary"`
	IsUrgentPlacement bool               `json:"is_urgent_placement"`
	Source            models.StaffSource `json:"source"`
	ReferredBy        string             `json:"referred_by"`
	ReferredByPhone   string             `json:"referred_by_phone"`
}

func (s StaffData) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Skill == "" {
		return errors.New("skill is required")
	}
	if s.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

type StaffUpdateData struct {
	Name              *string  `json:"name,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Skill             *string  `json:"skill,omitempty"`
	ExperienceYears   *int     `json:"experience_years,omitempty"`
	CurrentLocation   *string  `json:"current_location,omitempty"`
	PreferredLocation *string  `json:"preferred_location,omitempty"`
	ExpectedSalary    *string  `json:"expected_salary,omitempty"`
	Rating            *float64 `json:"rating,omitempty"`
}

func (s StaffUpdateData) Validate() error {
	if s.Name != nil && *s.Name == "" {
		return errors.New("name cannot be cleared")
	}
	if s.Skill != nil && *s.Skill == "" {
		return errors.New("skill cannot be cleared")
	}
	if s.Rating != nil && (*s.Rating < 0 || *s.Rating > 5) {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

type CallLogData struct {
	LastContactedBy  string `json:"last_contacted_by"`
	ContactedDate    string `json:"contacted_date"`
	ContactedTime    string `json:"contacted_time"`
	Response         string `json:"response"`
	StaffFeedback    string `json:"staff_feedback"`
	NextReminderDate string `json:"next_reminder_date"`
}

type VerificationData struct {
	IsVerified      *bool `json:"is_verified,omitempty"`
	IsSkillVerified *bool `json:"is_skill_verified,omitempty"`
}

type StaffView struct {
	ID                     string             `json:"id"`
	Name                   string             `json:"name"`
	Phone                  string             `json:"phone"`
	Skill                  string             `json:"skill"`
	IsSkillVerified        bool               `json:"is_skill_verified"`
	ExperienceYears        int                `json:"experience_years"`
	IsVerified             bool               `json:"is_verified"`
	Rating                 float64            `json:"rating"`
	ContractMonths         int                `json:"contract_months"`
	ServiceCommissionTotal int                `json:"service_commission_total"`
	Status                 models.StaffStatus `json:"status"`
	CurrentLocation        string             `json:"current_location"`
	PreferredLocation      string             `json:"preferred_location"`
	ExpectedSalary         string             `json:"expected_salary"`
	IsUrgentPlacement      bool               `json:"is_urgent_placement"`
	ReferredBy             string             `json:"referred_by"`
	CallLog                dbmodels.CallLog   `json:"call_log"`
	DateAdded              string             `json:"date_added"` // DD.MM.YYYY
}

func Convert(rec dbmodels.StaffMember) StaffView {
	return StaffView{
		ID:                     rec.ID,
		Name:                   rec.Name,
		Phone:                  rec.Phone,
		Skill:                  rec.Skill,
		IsSkillVerified:        rec.IsSkillVerified,
		ExperienceYears:        rec.ExperienceYears,
		IsVerified:             rec.IsVerified,
		Rating:                 rec.Rating,
		ContractMonths:         rec.ContractMonths,
		ServiceCommissionTotal: rec.ServiceCommissionTotal,
		Status:                 rec.Status,
		CurrentLocation:        rec.CurrentLocation,
		PreferredLocation:      rec.PreferredLocation,
		ExpectedSalary:         rec.ExpectedSalary,
		IsUrgentPlacement:      rec.IsUrgentPlacement,
		ReferredBy:             rec.ReferredBy,
		CallLog:                rec.CallLog,
		DateAdded:              rec.CreatedAt.Format("02.01.2006"),
	}
}

type HistoryView struct {
	ID         string                `json:"id"`
	ActionType dbmodels.ActionType   `json:"action_type"`
	UserName   string                `json:"user_name"`
	Changes    dbmodels.StaffChanges `json:"changes"`
	Date       string                `json:"date"` // DD.MM.YYYY HH:MM
}

func ConvertHistory(rec dbmodels.StaffHistory) HistoryView {
	return HistoryView{
		ID:         rec.ID,
		ActionType: rec.ActionType,
		UserName:   rec.UserName,
		Changes:    rec.Changes,
		Date:       rec.CreatedAt.Format("02.01.2006 15:04"),
	}
}
