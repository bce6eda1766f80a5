package jobapimodels

import (
	"github.com/pkg/errors"

	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type JobData struct {
	BusinessName string             `json:"business_name"`
	Role         string             `json:"role"` // free-text role label
	Location     string             `json:"location"`
	PinCode      string             `json:"pin_code"`
	Salary       int                `json:"salary"` // monthly, rupees
	ShiftType    string             `json:"shift_type"`
	Timeline     models.JobTimeline `json:"timeline"`
	Draft        bool               `json:"draft"` // create as draft instead of open
}

func (j JobData) Validate() error {
	if j.Role == "" {
		return errors.New("role is required")
	}
	if j.Salary <= 0 {
		return errors.New("salary must be positive")
	}
	if j.BusinessName == "" {
		return errors.New("business name is required")
	}
	return nil
}

type JobView struct {
	ID              string             `json:"id"`
	BusinessName    string             `json:"business_name"`
	Role            string             `json:"role"`
	Location        string             `json:"location"`
	PinCode         string             `json:"pin_code"`
	Salary          int                `json:"salary"`
	ShiftType       string             `json:"shift_type"`
	Status          models.JobStatus   `json:"status"`
	PaymentVerified bool               `json:"payment_verified"`
	PostedDate      string             `json:"posted_date"` // DD.MM.YYYY
	Timeline        models.JobTimeline `json:"timeline"`
}

func Convert(rec dbmodels.Job) JobView {
	return JobView{
		ID:              rec.ID,
		BusinessName:    rec.BusinessName,
		Role:            rec.Role,
		Location:        rec.Location,
		PinCode:         rec.PinCode,
		Salary:          rec.Salary,
		ShiftType:       rec.ShiftType,
		Status:          rec.Status,
		PaymentVerified: rec.PaymentVerified,
		PostedDate:      rec.PostedDate.Format("02.01.2006"),
		Timeline:        rec.Timeline,
	}
}

type JobFilter struct {
	Status models.JobStatus `json:"status"` // empty means all
	Search string           `json:"search"` // role or business substring
}
