package db

import (
	"time"

	log "github.com/sirupsen/logrus"

	billingstore "chef-karigar-backend/lib/billing/store"
	jobstore "chef-karigar-backend/lib/job/store"
	pipelinestore "chef-karigar-backend/lib/pipeline/store"
	staffstore "chef-karigar-backend/lib/staff/store"
	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

// InitPreload seeds a small demo dataset so a fresh install has something
// to show on the dashboard. A non-empty roster skips the whole preload.
func InitPreload() {
	staffStore := staffstore.NewInstance(DB)
	existing, err := staffStore.List(dbmodels.StaffFilter{})
	if err != nil {
		log.WithError(err).Error("error checking roster before preload")
		return
	}
	if len(existing) != 0 {
		return
	}
	staffIDs := seedStaff(staffStore)
	jobIDs := seedJobs()
	seedBundle(jobIDs, staffIDs)
	seedTransactions()
	log.Info("demo data preloaded")
}

func seedStaff(store staffstore.Provider) map[string]string {
	ids := map[string]string{}
	startDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	list := map[string]dbmodels.StaffMember{
		"rajesh": {
			Name:                   "Rajesh Kumar",
			Phone:                  "9876543211",
			Skill:                  "South Indian Chef",
			IsSkillVerified:        true,
			ExperienceYears:        5,
			IsVerified:             true,
			Rating:                 4.5,
			StartDate:              &startDate,
			ContractMonths:         models.ContractDurationMonths,
			ServiceCommissionTotal: 8000,
			Status:                 models.StaffStatusActive,
			CurrentLocation:        "Mamta Cafe, Mumbai",
			Source:                 models.StaffSourceReferral,
			ReferredBy:             "Amit Singh",
			ReferredByPhone:        "9822110033",
			CallLog: dbmodels.CallLog{
				LastContactedBy:  "Agent Sonal",
				ContactedDate:    "2023-10-25",
				Response:         "Working Satisfied",
				NextReminderDate: "2023-11-25",
			},
		},
		"amit": {
			Name:            "Amit Singh",
			Phone:           "9876543212",
			Skill:           "Waiter",
			IsSkillVerified: true,
			IsVerified:      true,
			Rating:          4.2,
			Status:          models.StaffStatusActive,
			CurrentLocation: models.LocationLookingForWork,
			Source:          models.StaffSourceOperator,
		},
		"vikram": {
			Name:            "Vikram Malhotra",
			Phone:           "9876543214",
			Skill:           "Continental Chef",
			ExperienceYears: 8,
			Status:          models.StaffStatusUnverified,
			CurrentLocation: models.LocationLookingForWork,
			Source:          models.StaffSourceSelf,
			ReferredBy:      "Sales: Rahul",
			ReferredByPhone: "9111222333",
			CallLog: dbmodels.CallLog{
				LastContactedBy: "Agent Amit",
				ContactedDate:   "2023-10-27",
				Response:        "Will call again tomorrow",
			},
		},
	}
	for key, rec := range list {
		id, err := store.Create(rec)
		if err != nil {
			log.WithError(err).Error("error preloading staff member")
			continue
		}
		ids[key] = id
	}
	return ids
}

func seedJobs() map[string]string {
	store := jobstore.NewInstance(DB)
	ids := map[string]string{}
	list := map[string]dbmodels.Job{
		"tandoor": {
			BusinessName:    "Mamta Cafe",
			Role:            "Tandoor Chef",
			Location:        "Mamta Cafe, Mumbai",
			PinCode:         "400053",
			Salary:          25000,
			ShiftType:       "Full-time (12 Hours)",
			Status:          models.JobStatusOpen,
			PaymentVerified: true,
			PostedDate:      time.Date(2023, 10, 15, 0, 0, 0, 0, time.UTC),
			Timeline:        models.JobTimelineImmediate,
		},
		"curry": {
			BusinessName:    "Spice Garden",
			Role:            "Curry Chef",
			Location:        "Spice Garden, Delhi",
			PinCode:         "110001",
			Salary:          28000,
			ShiftType:       "Full-time (12 Hours)",
			Status:          models.JobStatusOpen,
			PaymentVerified: true,
			PostedDate:      time.Date(2023, 10, 20, 0, 0, 0, 0, time.UTC),
			Timeline:        models.JobTimelineWithinWeek,
		},
		"waiter": {
			BusinessName:    "Royal Dining",
			Role:            "Waiter",
			Location:        "Royal Dining, Bangalore",
			PinCode:         "560001",
			Salary:          15000,
			ShiftType:       "Full-time (12 Hours)",
			Status:          models.JobStatusOpen,
			PaymentVerified: true,
			PostedDate:      time.Date(2023, 10, 22, 0, 0, 0, 0, time.UTC),
			Timeline:        models.JobTimelineWithinMonth,
		},
	}
	for key, rec := range list {
		id, err := store.Create(rec)
		if err != nil {
			log.WithError(err).Error("error preloading job")
			continue
		}
		ids[key] = id
	}
	return ids
}

func seedBundle(jobIDs, staffIDs map[string]string) {
	jobID := jobIDs["tandoor"]
	staffID := staffIDs["vikram"]
	if jobID == "" || staffID == "" {
		return
	}
	store := pipelinestore.NewInstance(DB)
	_, err := store.Create(dbmodels.MatchBundle{
		JobID:        jobID,
		BusinessName: "Mamta Cafe",
		Role:         "Tandoor Chef",
		Salary:       25000,
		CandidateIDs: dbmodels.CandidateIDs{staffID},
		Status:       models.BundleStatusPitched,
		DateCreated:  time.Now().Add(-2 * time.Hour),
		LastActionBy: "preload",
	})
	if err != nil {
		log.WithError(err).Error("error preloading match bundle")
	}
}

func seedTransactions() {
	store := billingstore.NewInstance(DB)
	list := []dbmodels.Transaction{
		{
			Type:        models.TransactionTypeCommission,
			Amount:      8000,
			Description: "Placement: Rajesh Kumar @ Mamta Cafe",
			Status:      models.TransactionStatusSuccess,
		},
		{
			Type:        models.TransactionTypeFee,
			Amount:      models.InitialProcessFee,
			Description: "Process Fee: Spice Garden",
			Status:      models.TransactionStatusSuccess,
		},
		{
			Type:        models.TransactionTypePayout,
			Amount:      models.ReferralBonusAmount,
			Description: "Referral Bonus: Amit Singh",
			Status:      models.TransactionStatusPending,
		},
	}
	for _, rec := range list {
		if _, err := store.Create(rec); err != nil {
			log.WithError(err).Error("error preloading transaction")
		}
	}
}
