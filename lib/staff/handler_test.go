package staff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"chef-karigar-backend/models"
	staffapimodels "chef-karigar-backend/models/api/staff"
	dbmodels "chef-karigar-backend/models/db"
)

type fakeStore struct {
	seq     int
	records []dbmodels.StaffMember
}

func (f *fakeStore) Create(rec dbmodels.StaffMember) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("staff-%d", f.seq)
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.records {
		if f.records[idx].ID != id {
			continue
		}
		if v, ok := updMap["name"]; ok {
			f.records[idx].Name = v.(string)
		}
		if v, ok := updMap["skill"]; ok {
			f.records[idx].Skill = v.(string)
		}
		if v, ok := updMap["rating"]; ok {
			f.records[idx].Rating = v.(float64)
		}
		if v, ok := updMap["status"]; ok {
			f.records[idx].Status = v.(models.StaffStatus)
		}
		if v, ok := updMap["is_verified"]; ok {
			f.records[idx].IsVerified = v.(bool)
		}
		if v, ok := updMap["call_log"]; ok {
			f.records[idx].CallLog = v.(dbmodels.CallLog)
		}
		return nil
	}
	return fmt.Errorf("record not found")
}

func (f *fakeStore) GetByID(id string) (*dbmodels.StaffMember, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(filter dbmodels.StaffFilter) ([]dbmodels.StaffMember, error) {
	return f.records, nil
}

func (f *fakeStore) ListBySkill(skill string) ([]dbmodels.StaffMember, error) {
	return f.records, nil
}

func (f *fakeStore) ListByIDs(ids []string) ([]dbmodels.StaffMember, error) {
	return f.records, nil
}

func (f *fakeStore) IsExistPhone(phone string) (bool, error) {
	for _, rec := range f.records {
		if rec.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

type fakeHistory struct {
	saved []dbmodels.StaffHistory
}

func (f *fakeHistory) Save(staffID, userName string, actionType dbmodels.ActionType, changes dbmodels.StaffChanges) {
	f.saved = append(f.saved, dbmodels.StaffHistory{
		StaffID:    staffID,
		UserName:   userName,
		ActionType: actionType,
		Changes:    changes,
	})
}

func (f *fakeHistory) List(staffID string) ([]dbmodels.StaffHistory, error) {
	result := []dbmodels.StaffHistory{}
	for _, rec := range f.saved {
		if rec.StaffID == staffID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func newTestHandler() (impl, *fakeStore, *fakeHistory) {
	store := &fakeStore{}
	history := &fakeHistory{}
	return impl{store: store, historyStore: history}, store, history
}

func validStaffData() staffapimodels.StaffData {
	return staffapimodels.StaffData{
		Name:            "Vikram Malhotra",
		Phone:           "9876543214",
		Skill:           "Continental Chef",
		ExperienceYears: 8,
		Source:          models.StaffSourceSelf,
	}
}

func TestCreate(t *testing.T) {
	t.Run(`self-submitted member starts unverified`, func(t *testing.T) {
		handler, store, history := newTestHandler()

		id, err := handler.Create(validStaffData(), "operator")
		require.NoError(t, err)
		require.NotEmpty(t, id)

		rec, err := store.GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.StaffStatusUnverified, rec.Status)
		require.Equal(t, models.LocationLookingForWork, rec.CurrentLocation)
		require.Len(t, history.saved, 1)
		require.Equal(t, dbmodels.HistoryTypeAdded, history.saved[0].ActionType)
	})

	t.Run(`operator-added member starts active`, func(t *testing.T) {
		handler, store, _ := newTestHandler()
		data := validStaffData()
		data.Source = models.StaffSourceOperator

		id, err := handler.Create(data, "operator")
		require.NoError(t, err)

		rec, err := store.GetByID(id)
		require.NoError(t, err)
		require.Equal(t, models.StaffStatusActive, rec.Status)
	})

	t.Run(`duplicate phone is rejected`, func(t *testing.T) {
		handler, _, _ := newTestHandler()

		_, err := handler.Create(validStaffData(), "operator")
		require.NoError(t, err)
		_, err = handler.Create(validStaffData(), "operator")
		require.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	t.Run(`changed fields are audited`, func(t *testing.T) {
		handler, _, history := newTestHandler()
		id, err := handler.Create(validStaffData(), "operator")
		require.NoError(t, err)

		newSkill := "Tandoor Chef"
		newRating := 4.5
		err = handler.Update(id, staffapimodels.StaffUpdateData{
			Skill:  &newSkill,
			Rating: &newRating,
		}, "agent-sonal")
		require.NoError(t, err)

		require.Len(t, history.saved, 2)
		entry := history.saved[1]
		require.Equal(t, dbmodels.HistoryTypeUpdate, entry.ActionType)
		require.Equal(t, "agent-sonal", entry.UserName)
		require.Len(t, entry.Changes.Data, 2)
	})

	t.Run(`no-op update writes no audit record`, func(t *testing.T) {
		handler, _, history := newTestHandler()
		id, err := handler.Create(validStaffData(), "operator")
		require.NoError(t, err)

		sameSkill := "Continental Chef"
		err = handler.Update(id, staffapimodels.StaffUpdateData{Skill: &sameSkill}, "operator")
		require.NoError(t, err)
		require.Len(t, history.saved, 1) // only the creation record
	})

	t.Run(`unknown member`, func(t *testing.T) {
		handler, _, _ := newTestHandler()
		name := "Someone"
		err := handler.Update("missing", staffapimodels.StaffUpdateData{Name: &name}, "operator")
		require.Error(t, err)
	})
}

func TestUpdateVerification(t *testing.T) {
	t.Run(`vetting activates an unverified member`, func(t *testing.T) {
		handler, store, history := newTestHandler()
		id, err := handler.Create(validStaffData(), "operator")
		require.NoError(t, err)

		verified := true
		err = handler.UpdateVerification(id, staffapimodels.VerificationData{IsVerified: &verified}, "operator")
		require.NoError(t, err)

		rec, err := store.GetByID(id)
		require.NoError(t, err)
		require.True(t, rec.IsVerified)
		require.Equal(t, models.StaffStatusActive, rec.Status)
		require.Equal(t, dbmodels.HistoryTypeVerification, history.saved[1].ActionType)
	})
}

func TestUpdateCallLog(t *testing.T) {
	handler, store, history := newTestHandler()
	id, err := handler.Create(validStaffData(), "operator")
	require.NoError(t, err)

	err = handler.UpdateCallLog(id, staffapimodels.CallLogData{
		LastContactedBy: "Agent Amit",
		ContactedDate:   "2023-10-27",
		Response:        "Will call again tomorrow",
	}, "agent-amit")
	require.NoError(t, err)

	rec, err := store.GetByID(id)
	require.NoError(t, err)
	require.Equal(t, "Agent Amit", rec.CallLog.LastContactedBy)
	require.Equal(t, dbmodels.HistoryTypeCallLog, history.saved[1].ActionType)
}
