package staff

import (
	"fmt"

	"github.com/pkg/errors"

	"chef-karigar-backend/db"
	staffhistory "chef-karigar-backend/lib/staff-history"
	staffstore "chef-karigar-backend/lib/staff/store"
	"chef-karigar-backend/models"
	staffapimodels "chef-karigar-backend/models/api/staff"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(data staffapimodels.StaffData, actingUser string) (id string, err error)
	Update(id string, data staffapimodels.StaffUpdateData, actingUser string) error
	UpdateCallLog(id string, data staffapimodels.CallLogData, actingUser string) error
	UpdateVerification(id string, data staffapimodels.VerificationData, actingUser string) error
	GetByID(id string) (staffapimodels.StaffView, error)
	List(filter dbmodels.StaffFilter) ([]staffapimodels.StaffView, error)
	History(id string) ([]staffapimodels.HistoryView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        staffstore.NewInstance(db.DB),
		historyStore: staffhistory.Instance,
	}
}

type impl struct {
	store        staffstore.Provider
	historyStore staffhistory.Provider
}

func (i impl) Create(data staffapimodels.StaffData, actingUser string) (string, error) {
	exists, err := i.store.IsExistPhone(data.Phone)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("a staff member with this phone already exists")
	}
	rec := dbmodels.StaffMember{
		Name:              data.Name,
		Phone:             data.Phone,
		Skill:             data.Skill,
		ExperienceYears:   data.ExperienceYears,
		CurrentLocation:   data.CurrentLocation,
		PreferredLocation: data.PreferredLocation,
		ExpectedSalary:    data.ExpectedSalary,
		IsUrgentPlacement: data.IsUrgentPlacement,
		Source:            data.Source,
		ReferredBy:        data.ReferredBy,
		ReferredByPhone:   data.ReferredByPhone,
		Status:            models.StaffStatusUnverified,
	}
	if rec.CurrentLocation == "" {
		rec.CurrentLocation = models.LocationLookingForWork
	}
	if rec.Source == models.StaffSourceOperator {
		rec.Status = models.StaffStatusActive
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.historyStore.Save(id, actingUser, dbmodels.HistoryTypeAdded, dbmodels.StaffChanges{
		Description: fmt.Sprintf("%s added to the roster (%s)", rec.Name, rec.Source),
	})
	return id, nil
}

func (i impl) Update(id string, data staffapimodels.StaffUpdateData, actingUser string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("record not found")
	}

	updMap := map[string]interface{}{}
	changes := []dbmodels.StaffChange{}
	applyString := func(field string, oldValue string, newValue *string) {
		if newValue == nil || *newValue == oldValue {
			return
		}
		updMap[field] = *newValue
		changes = append(changes, dbmodels.StaffChange{Field: field, OldValue: oldValue, NewValue: *newValue})
	}
	applyString("name", rec.Name, data.Name)
	applyString("phone", rec.Phone, data.Phone)
	applyString("skill", rec.Skill, data.Skill)
	applyString("current_location", rec.CurrentLocation, data.CurrentLocation)
	applyString("preferred_location", rec.PreferredLocation, data.PreferredLocation)
	applyString("expected_salary", rec.ExpectedSalary, data.ExpectedSalary)
	if data.ExperienceYears != nil && *data.ExperienceYears != rec.ExperienceYears {
		updMap["experience_years"] = *data.ExperienceYears
		changes = append(changes, dbmodels.StaffChange{Field: "experience_years", OldValue: rec.ExperienceYears, NewValue: *data.ExperienceYears})
	}
	if data.Rating != nil && *data.Rating != rec.Rating {
		updMap["rating"] = *data.Rating
		changes = append(changes, dbmodels.StaffChange{Field: "rating", OldValue: rec.Rating, NewValue: *data.Rating})
	}
	if len(updMap) == 0 {
		return nil
	}
	if err := i.store.Update(id, updMap); err != nil {
		return err
	}
	i.historyStore.Save(id, actingUser, dbmodels.HistoryTypeUpdate, dbmodels.StaffChanges{
		Description: "profile edited",
		Data:        changes,
	})
	return nil
}

func (i impl) UpdateCallLog(id string, data staffapimodels.CallLogData, actingUser string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("record not found")
	}
	callLog := dbmodels.CallLog{
		LastContactedBy:  data.LastContactedBy,
		ContactedDate:    data.ContactedDate,
		ContactedTime:    data.ContactedTime,
		Response:         data.Response,
		StaffFeedback:    data.StaffFeedback,
		NextReminderDate: data.NextReminderDate,
	}
	err = i.store.Update(id, map[string]interface{}{"call_log": callLog})
	if err != nil {
		return err
	}
	i.historyStore.Save(id, actingUser, dbmodels.HistoryTypeCallLog, dbmodels.StaffChanges{
		Description: fmt.Sprintf("call recorded: %s", data.Response),
	})
	return nil
}

func (i impl) UpdateVerification(id string, data staffapimodels.VerificationData, actingUser string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("record not found")
	}
	updMap := map[string]interface{}{}
	changes := []dbmodels.StaffChange{}
	if data.IsVerified != nil && *data.IsVerified != rec.IsVerified {
		updMap["is_verified"] = *data.IsVerified
		changes = append(changes, dbmodels.StaffChange{Field: "is_verified", OldValue: rec.IsVerified, NewValue: *data.IsVerified})
		// passing agency vetting activates an unverified member
		if *data.IsVerified && rec.Status == models.StaffStatusUnverified {
			updMap["status"] = models.StaffStatusActive
			changes = append(changes, dbmodels.StaffChange{Field: "status", OldValue: rec.Status, NewValue: models.StaffStatusActive})
		}
	}
	if data.IsSkillVerified != nil && *data.IsSkillVerified != rec.IsSkillVerified {
		updMap["is_skill_verified"] = *data.IsSkillVerified
		changes = append(changes, dbmodels.StaffChange{Field: "is_skill_verified", OldValue: rec.IsSkillVerified, NewValue: *data.IsSkillVerified})
	}
	if len(updMap) == 0 {
		return nil
	}
	if err := i.store.Update(id, updMap); err != nil {
		return err
	}
	i.historyStore.Save(id, actingUser, dbmodels.HistoryTypeVerification, dbmodels.StaffChanges{
		Description: "verification flags changed",
		Data:        changes,
	})
	return nil
}

func (i impl) GetByID(id string) (staffapimodels.StaffView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return staffapimodels.StaffView{}, err
	}
	if rec == nil {
		return staffapimodels.StaffView{}, errors.New("record not found")
	}
	return staffapimodels.Convert(*rec), nil
}

func (i impl) List(filter dbmodels.StaffFilter) ([]staffapimodels.StaffView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]staffapimodels.StaffView, 0, len(list))
	for _, rec := range list {
		result = append(result, staffapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) History(id string) ([]staffapimodels.HistoryView, error) {
	list, err := i.historyStore.List(id)
	if err != nil {
		return nil, err
	}
	result := make([]staffapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, staffapimodels.ConvertHistory(rec))
	}
	return result, nil
}
