package job

import (
	"time"

	"github.com/pkg/errors"

	"chef-karigar-backend/db"
	"chef-karigar-backend/lib/billing"
	jobstore "chef-karigar-backend/lib/job/store"
	"chef-karigar-backend/models"
	jobapimodels "chef-karigar-backend/models/api/job"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(data jobapimodels.JobData) (id string, err error)
	GetByID(id string) (jobapimodels.JobView, error)
	List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error)
	UpdateStatus(id string, status models.JobStatus) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:   jobstore.NewInstance(db.DB),
		billing: billing.Instance,
	}
}

type impl struct {
	store   jobstore.Provider
	billing billing.Provider
}

func (i impl) Create(data jobapimodels.JobData) (string, error) {
	rec := dbmodels.Job{
		BusinessName: data.BusinessName,
		Role:         data.Role,
		Location:     data.Location,
		PinCode:      data.PinCode,
		Salary:       data.Salary,
		ShiftType:    data.ShiftType,
		Timeline:     data.Timeline,
		Status:       models.JobStatusOpen,
		PostedDate:   time.Now(),
	}
	if data.Draft {
		rec.Status = models.JobStatusDraft
	}
	if rec.Timeline == "" {
		rec.Timeline = models.JobTimelineImmediate
	}
	if err := rec.Validate(); err != nil {
		return "", err
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	if i.billing != nil {
		i.billing.RecordProcessFee(rec.BusinessName)
	}
	return id, nil
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, errors.New("record not found")
	}
	return jobapimodels.Convert(*rec), nil
}

func (i impl) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) UpdateStatus(id string, status models.JobStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("record not found")
	}
	if err := rec.IsAllowStatusChange(status); err != nil {
		return err
	}
	return i.store.Update(id, map[string]interface{}{"status": status})
}
