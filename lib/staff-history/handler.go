package staffhistory

import (
	log "github.com/sirupsen/logrus"

	"chef-karigar-backend/db"
	staffhistorystore "chef-karigar-backend/lib/staff-history/store"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	// Save appends one audit record. Audit is best-effort: failures are
	// logged, the triggering operation is never rolled back.
	Save(staffID, userName string, actionType dbmodels.ActionType, changes dbmodels.StaffChanges)
	List(staffID string) ([]dbmodels.StaffHistory, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: staffhistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store staffhistorystore.Provider
}

func (i impl) Save(staffID, userName string, actionType dbmodels.ActionType, changes dbmodels.StaffChanges) {
	rec := dbmodels.StaffHistory{
		StaffID:    staffID,
		UserName:   userName,
		ActionType: actionType,
		Changes:    changes,
	}
	err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).
			WithField("staff_id", staffID).
			Error("error saving staff history record")
	}
}

func (i impl) List(staffID string) ([]dbmodels.StaffHistory, error) {
	return i.store.List(staffID)
}
