package dbmodels

import (
	"github.com/pkg/errors"
)

type Referral struct {
	BaseModel
	CandidateName  string `gorm:"type:varchar(255)"`
	CandidatePhone string `gorm:"type:varchar(255)"`
	CandidateSkill string `gorm:"type:varchar(255)"`
	ReferrerID     string `gorm:"type:varchar(36);index"`
	StaffID        string `gorm:"type:varchar(36)"` // roster record created for the candidate
	Status         string `gorm:"type:varchar(50)"`
	DaysEmployed   int
	IsWorking      bool
	BonusPaid      bool
}

const (
	ReferralStatusPending  = "Pending"
	ReferralStatusEligible = "Eligible"
	ReferralStatusPaid     = "Paid"
)

func (r Referral) Validate() error {
	if r.CandidateName == "" || r.CandidatePhone == "" {
		return errors.New("candidate name and phone are required")
	}
	if r.CandidateSkill == "" {
		return errors.New("candidate skill is required")
	}
	if r.ReferrerID == "" {
		return errors.New("referrer is required")
	}
	return nil
}
