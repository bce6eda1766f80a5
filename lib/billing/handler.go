package billing

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"chef-karigar-backend/db"
	billingstore "chef-karigar-backend/lib/billing/store"
	"chef-karigar-backend/models"
	billingapimodels "chef-karigar-backend/models/api/billing"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	// RecordPlacement writes the agency commission for a closed bundle.
	// Ledger writes are best-effort: errors are logged, the triggering
	// operation is not rolled back.
	RecordPlacement(bundle dbmodels.MatchBundle)
	RecordProcessFee(businessName string)
	RecordReferralBonus(ref dbmodels.Referral)
	List(txType models.TransactionType) ([]billingapimodels.TransactionView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: billingstore.NewInstance(db.DB),
	}
}

type impl struct {
	store billingstore.Provider
}

func (i impl) RecordPlacement(bundle dbmodels.MatchBundle) {
	amount := bundle.Salary * models.AgencyCommissionPercent / 100
	rec := dbmodels.Transaction{
		Type:        models.TransactionTypeCommission,
		Amount:      amount,
		Description: fmt.Sprintf("Placement: %s @ %s", bundle.Role, bundle.BusinessName),
		Status:      models.TransactionStatusPending,
		BundleID:    bundle.ID,
	}
	if _, err := i.store.Create(rec); err != nil {
		log.WithError(err).
			WithField("bundle_id", bundle.ID).
			Error("error recording placement commission")
	}
}

func (i impl) RecordProcessFee(businessName string) {
	rec := dbmodels.Transaction{
		Type:        models.TransactionTypeFee,
		Amount:      models.InitialProcessFee,
		Description: fmt.Sprintf("Process Fee: %s", businessName),
		Status:      models.TransactionStatusSuccess,
	}
	if _, err := i.store.Create(rec); err != nil {
		log.WithError(err).Error("error recording process fee")
	}
}

func (i impl) RecordReferralBonus(ref dbmodels.Referral) {
	rec := dbmodels.Transaction{
		Type:        models.TransactionTypePayout,
		Amount:      models.ReferralBonusAmount,
		Description: fmt.Sprintf("Referral Bonus: %s", ref.CandidateName),
		Status:      models.TransactionStatusPending,
		StaffID:     ref.ReferrerID,
	}
	if _, err := i.store.Create(rec); err != nil {
		log.WithError(err).
			WithField("referral_id", ref.ID).
			Error("error recording referral bonus")
	}
}

func (i impl) List(txType models.TransactionType) ([]billingapimodels.TransactionView, error) {
	list, err := i.store.List(txType)
	if err != nil {
		return nil, err
	}
	result := make([]billingapimodels.TransactionView, 0, len(list))
	for _, rec := range list {
		result = append(result, billingapimodels.Convert(rec))
	}
	return result, nil
}
