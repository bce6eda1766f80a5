package referral

import (
	"github.com/pkg/errors"

	"chef-karigar-backend/db"
	"chef-karigar-backend/lib/billing"
	referralstore "chef-karigar-backend/lib/referral/store"
	staffhandler "chef-karigar-backend/lib/staff"
	"chef-karigar-backend/models"
	referralapimodels "chef-karigar-backend/models/api/referral"
	staffapimodels "chef-karigar-backend/models/api/staff"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(data referralapimodels.ReferralData, referrerName string) (id string, err error)
	List(referrerID string) ([]referralapimodels.ReferralView, error)
	// UpdateEmployment refreshes the employed-days counter; a referral
	// becomes eligible after the qualifying period and the bonus payout
	// is recorded exactly once.
	UpdateEmployment(id string, daysEmployed int, isWorking bool) error
}

type rosterCreator interface {
	Create(data staffapimodels.StaffData, actingUser string) (id string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   referralstore.NewInstance(db.DB),
		roster:  staffhandler.Instance,
		billing: billing.Instance,
	}
}

type impl struct {
	store   referralstore.Provider
	roster  rosterCreator
	billing billing.Provider
}

// Create records the referral and enters the candidate into the roster as
// an unverified member.
func (i impl) Create(data referralapimodels.ReferralData, referrerName string) (string, error) {
	rec := dbmodels.Referral{
		CandidateName:  data.CandidateName,
		CandidatePhone: data.CandidatePhone,
		CandidateSkill: data.CandidateSkill,
		ReferrerID:     data.ReferrerID,
		Status:         dbmodels.ReferralStatusPending,
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	staffID, err := i.roster.Create(staffapimodels.StaffData{
		Name:       data.CandidateName,
		Phone:      data.CandidatePhone,
		Skill:      data.CandidateSkill,
		Source:     models.StaffSourceReferral,
		ReferredBy: referrerName,
	}, referrerName)
	if err != nil {
		return "", errors.Wrap(err, "error adding referred candidate to the roster")
	}
	rec.StaffID = staffID
	return i.store.Create(rec)
}

func (i impl) List(referrerID string) ([]referralapimodels.ReferralView, error) {
	list, err := i.store.List(referrerID)
	if err != nil {
		return nil, err
	}
	result := make([]referralapimodels.ReferralView, 0, len(list))
	for _, rec := range list {
		result = append(result, referralapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) UpdateEmployment(id string, daysEmployed int, isWorking bool) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("record not found")
	}
	updMap := map[string]interface{}{
		"days_employed": daysEmployed,
		"is_working":    isWorking,
	}
	if isWorking && daysEmployed >= models.ReferralEligibilityDays && !rec.BonusPaid {
		updMap["status"] = dbmodels.ReferralStatusEligible
		updMap["bonus_paid"] = true
		if i.billing != nil {
			i.billing.RecordReferralBonus(*rec)
		}
	}
	return i.store.Update(id, updMap)
}
