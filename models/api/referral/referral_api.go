package referralapimodels

import (
	"github.com/pkg/errors"

	dbmodels "chef-karigar-backend/models/db"
)

type ReferralData struct {
	CandidateName  string `json:"candidate_name"`
	CandidatePhone string `json:"candidate_phone"`
	CandidateSkill string `json:"candidate_skill"`
	ReferrerID     string `json:"referrer_id"` // staff member making the referral
}

func (r ReferralData) Validate() error {
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

type ReferralView struct {
	ID             string `json:"id"`
	CandidateName  string `json:"candidate_name"`
	CandidatePhone string `json:"candidate_phone"`
	CandidateSkill string `json:"candidate_skill"`
	ReferrerID     string `json:"referrer_id"`
	StaffID        string `json:"staff_id"`
	Status         string `json:"status"`
	DaysEmployed   int    `json:"days_employed"`
	IsWorking      bool   `json:"is_working"`
	DateAdded      string `json:"date_added"` // DD.MM.YYYY
}

func Convert(rec dbmodels.Referral) ReferralView {
	return ReferralView{
		ID:             rec.ID,
		CandidateName:  rec.CandidateName,
		CandidatePhone: rec.CandidatePhone,
		CandidateSkill: rec.CandidateSkill,
		ReferrerID:     rec.ReferrerID,
		StaffID:        rec.StaffID,
		Status:         rec.Status,
		DaysEmployed:   rec.DaysEmployed,
		IsWorking:      rec.IsWorking,
		DateAdded:      rec.CreatedAt.Format("02.01.2006"),
	}
}
