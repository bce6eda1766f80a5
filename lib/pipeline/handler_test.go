package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"chef-karigar-backend/models"
	jobapimodels "chef-karigar-backend/models/api/job"
	pipelineapimodels "chef-karigar-backend/models/api/pipeline"
	dbmodels "chef-karigar-backend/models/db"
)

type fakeBundleStore struct {
	seq     int
	records []dbmodels.MatchBundle
}

func (f *fakeBundleStore) Create(rec dbmodels.MatchBundle) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("bundle-%d", f.seq)
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeBundleStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.records {
		if f.records[idx].ID != id {
			continue
		}
		if status, ok := updMap["status"]; ok {
			f.records[idx].Status = status.(models.BundleStatus)
		}
		if actor, ok := updMap["last_action_by"]; ok {
			f.records[idx].LastActionBy = actor.(string)
		}
		return nil
	}
	return errors.New("record not found")
}

func (f *fakeBundleStore) GetByID(id string) (*dbmodels.MatchBundle, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBundleStore) List(status models.BundleStatus) ([]dbmodels.MatchBundle, error) {
	result := []dbmodels.MatchBundle{}
	for _, rec := range f.records {
		if status != "" && status != models.BundleStatusAll && rec.Status != status {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

func (f *fakeBundleStore) ListGhosted(now time.Time) ([]dbmodels.MatchBundle, error) {
	result := []dbmodels.MatchBundle{}
	for _, rec := range f.records {
		if rec.IsGhosted(now) {
			result = append(result, rec)
		}
	}
	return result, nil
}

type fakeJobStore struct {
	records []dbmodels.Job
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) {
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, error) {
	return f.records, nil
}

type fakeStaffStore struct {
	records []dbmodels.StaffMember
}

func (f *fakeStaffStore) Create(rec dbmodels.StaffMember) (string, error) {
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeStaffStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeStaffStore) GetByID(id string) (*dbmodels.StaffMember, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeStaffStore) List(filter dbmodels.StaffFilter) ([]dbmodels.StaffMember, error) {
	return f.records, nil
}

func (f *fakeStaffStore) ListBySkill(skill string) ([]dbmodels.StaffMember, error) {
	result := []dbmodels.StaffMember{}
	for _, rec := range f.records {
		if strings.EqualFold(rec.Skill, skill) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeStaffStore) ListByIDs(ids []string) ([]dbmodels.StaffMember, error) {
	result := []dbmodels.StaffMember{}
	for _, rec := range f.records {
		for _, id := range ids {
			if rec.ID == id {
				result = append(result, rec)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeStaffStore) IsExistPhone(phone string) (bool, error) {
	for _, rec := range f.records {
		if rec.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

type fakeCloser struct {
	filled []string
}

func (f *fakeCloser) UpdateStatus(id string, status models.JobStatus) error {
	if status == models.JobStatusFilled {
		f.filled = append(f.filled, id)
	}
	return nil
}

type fakeCommission struct {
	recorded []dbmodels.MatchBundle
}

func (f *fakeCommission) RecordPlacement(bundle dbmodels.MatchBundle) {
	f.recorded = append(f.recorded, bundle)
}

func newTestHandler() (impl, *fakeBundleStore, *fakeJobStore, *fakeStaffStore, *fakeCloser, *fakeCommission) {
	bundles := &fakeBundleStore{}
	jobs := &fakeJobStore{}
	staff := &fakeStaffStore{}
	closer := &fakeCloser{}
	commission := &fakeCommission{}
	handler := impl{
		store:      bundles,
		jobStore:   jobs,
		staffStore: staff,
		jobs:       closer,
		billing:    commission,
	}
	return handler, bundles, jobs, staff, closer, commission
}

func testJob(id string) dbmodels.Job {
	rec := dbmodels.Job{
		BusinessName: "Spice Villa",
		Role:         "Tandoor Chef",
		Location:     "Mumbai, Maharashtra",
		PinCode:      "400001",
		Salary:       25000,
		Status:       models.JobStatusOpen,
	}
	rec.ID = id
	return rec
}

func testStaff(id, skill string) dbmodels.StaffMember {
	rec := dbmodels.StaffMember{
		Name:            "Candidate " + id,
		Phone:           "9" + id,
		Skill:           skill,
		ExperienceYears: 4,
		Status:          models.StaffStatusActive,
		CurrentLocation: models.LocationLookingForWork,
	}
	rec.ID = id
	return rec
}

func TestCreateBundle(t *testing.T) {
	t.Run(`create with valid selection`, func(t *testing.T) {
		handler, bundles, jobs, staff, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"))
		staff.records = append(staff.records, testStaff("s1", "Tandoor Chef"), testStaff("s2", "Tandoor Chef"))

		view, err := handler.CreateBundle(pipelineapimodels.BundleCreateData{
			JobID:        "job-1",
			CandidateIDs: []string{"s1", "s2"},
		}, "operator")
		require.NoError(t, err)
		require.Equal(t, models.BundleStatusNew, view.Status)
		require.Equal(t, "Spice Villa", view.BusinessName)
		require.Equal(t, "Tandoor Chef", view.Role)
		require.Equal(t, 25000, view.Salary)
		require.Equal(t, []string{"s1", "s2"}, view.CandidateIDs)
		require.Equal(t, "operator", view.LastActionBy)
		require.Len(t, bundles.records, 1)
	})

	t.Run(`duplicate candidate ids are collapsed`, func(t *testing.T) {
		handler, _, jobs, staff, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"))
		staff.records = append(staff.records, testStaff("s1", "Tandoor Chef"))

		view, err := handler.CreateBundle(pipelineapimodels.BundleCreateData{
			JobID:        "job-1",
			CandidateIDs: []string{"s1", "s1", "s1"},
		}, "operator")
		require.NoError(t, err)
		require.Equal(t, []string{"s1"}, view.CandidateIDs)
	})

	t.Run(`empty selection is rejected`, func(t *testing.T) {
		handler, _, jobs, _, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"))

		_, err := handler.CreateBundle(pipelineapimodels.BundleCreateData{
			JobID:        "job-1",
			CandidateIDs: []string{},
		}, "operator")
		require.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run(`selection of only blank ids is rejected`, func(t *testing.T) {
		handler, _, jobs, _, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"))

		_, err := handler.CreateBundle(pipelineapimodels.BundleCreateData{
			JobID:        "job-1",
			CandidateIDs: []string{"", ""},
		}, "operator")
		require.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run(`unknown job is rejected`, func(t *testing.T) {
		handler, _, _, staff, _, _ := newTestHandler()
		staff.records = append(staff.records, testStaff("s1", "Tandoor Chef"))

		_, err := handler.CreateBundle(pipelineapimodels.BundleCreateData{
			JobID:        "missing",
			CandidateIDs: []string{"s1"},
		}, "operator")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run(`unknown candidate is rejected`, func(t *testing.T) {
		handler, _, jobs, staff, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"))
		staff.records = append(staff.records, testStaff("s1", "Tandoor Chef"))

		_, err := handler.CreateBundle(pipelineapimodels.BundleCreateData{
			JobID:        "job-1",
			CandidateIDs: []string{"s1", "missing"},
		}, "operator")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAdvance(t *testing.T) {
	ctx := context.Background()

	createBundle := func(t *testing.T, handler impl, jobs *fakeJobStore, staff *fakeStaffStore) string {
		jobs.records = append(jobs.records, testJob("job-1"))
		staff.records = append(staff.records, testStaff("s1", "Tandoor Chef"))
		view, err := handler.CreateBundle(pipelineapimodels.BundleCreateData{
			JobID:        "job-1",
			CandidateIDs: []string{"s1"},
		}, "operator")
		require.NoError(t, err)
		return view.ID
	}

	t.Run(`full funnel walk`, func(t *testing.T) {
		handler, _, jobs, staff, closer, commission := newTestHandler()
		id := createBundle(t, handler, jobs, staff)

		view, err := handler.Advance(ctx, id, "sales")
		require.NoError(t, err)
		require.Equal(t, models.BundleStatusPitched, view.Status)
		require.Equal(t, "sales", view.LastActionBy)

		view, err = handler.Advance(ctx, id, "sales")
		require.NoError(t, err)
		require.Equal(t, models.BundleStatusInterviewing, view.Status)

		view, err = handler.Advance(ctx, id, "sales")
		require.NoError(t, err)
		require.Equal(t, models.BundleStatusClosed, view.Status)
		require.Equal(t, []string{"job-1"}, closer.filled)
		require.Len(t, commission.recorded, 1)
	})

	t.Run(`closed bundle cannot advance`, func(t *testing.T) {
		handler, bundles, jobs, staff, _, _ := newTestHandler()
		id := createBundle(t, handler, jobs, staff)
		require.NoError(t, bundles.Update(id, map[string]interface{}{"status": models.BundleStatusClosed}))

		_, err := handler.Advance(ctx, id, "sales")
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run(`cancelled bundle cannot advance`, func(t *testing.T) {
		handler, bundles, jobs, staff, _, _ := newTestHandler()
		id := createBundle(t, handler, jobs, staff)
		require.NoError(t, bundles.Update(id, map[string]interface{}{"status": models.BundleStatusCancelled}))

		_, err := handler.Advance(ctx, id, "sales")
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run(`unknown bundle`, func(t *testing.T) {
		handler, _, _, _, _, _ := newTestHandler()

		_, err := handler.Advance(ctx, "missing", "sales")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run(`side effects fire only on close`, func(t *testing.T) {
		handler, _, jobs, staff, closer, commission := newTestHandler()
		id := createBundle(t, handler, jobs, staff)

		_, err := handler.Advance(ctx, id, "sales")
		require.NoError(t, err)
		require.Empty(t, closer.filled)
		require.Empty(t, commission.recorded)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run(`cancel from any active stage`, func(t *testing.T) {
		for _, status := range []models.BundleStatus{
			models.BundleStatusNew,
			models.BundleStatusPitched,
			models.BundleStatusInterviewing,
		} {
			handler, bundles, _, _, _, _ := newTestHandler()
			id, err := bundles.Create(dbmodels.MatchBundle{Status: status, DateCreated: time.Now()})
			require.NoError(t, err)

			view, err := handler.Cancel(ctx, id, "sales")
			require.NoError(t, err)
			require.Equal(t, models.BundleStatusCancelled, view.Status)
		}
	})

	t.Run(`terminal bundle cannot be cancelled`, func(t *testing.T) {
		for _, status := range []models.BundleStatus{
			models.BundleStatusClosed,
			models.BundleStatusCancelled,
		} {
			handler, bundles, _, _, _, _ := newTestHandler()
			id, err := bundles.Create(dbmodels.MatchBundle{Status: status, DateCreated: time.Now()})
			require.NoError(t, err)

			_, err = handler.Cancel(ctx, id, "sales")
			require.ErrorIs(t, err, ErrInvalidTransition)
		}
	})

	t.Run(`unknown bundle`, func(t *testing.T) {
		handler, _, _, _, _, _ := newTestHandler()

		_, err := handler.Cancel(ctx, "missing", "sales")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListByStatus(t *testing.T) {
	handler, bundles, _, _, _, _ := newTestHandler()
	for _, status := range []models.BundleStatus{
		models.BundleStatusNew,
		models.BundleStatusPitched,
		models.BundleStatusNew,
	} {
		_, err := bundles.Create(dbmodels.MatchBundle{Status: status, DateCreated: time.Now()})
		require.NoError(t, err)
	}

	t.Run(`filter by stage`, func(t *testing.T) {
		list, err := handler.ListByStatus(models.BundleStatusNew)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run(`all preserves insertion order`, func(t *testing.T) {
		list, err := handler.ListByStatus(models.BundleStatusAll)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, "bundle-1", list[0].ID)
		require.Equal(t, "bundle-2", list[1].ID)
		require.Equal(t, "bundle-3", list[2].ID)
	})
}

func TestListGhosted(t *testing.T) {
	now := time.Now()
	handler, bundles, _, _, _, _ := newTestHandler()

	stale, err := bundles.Create(dbmodels.MatchBundle{
		Status:      models.BundleStatusInterviewing,
		DateCreated: now.Add(-25 * time.Hour),
	})
	require.NoError(t, err)
	_, err = bundles.Create(dbmodels.MatchBundle{
		Status:      models.BundleStatusInterviewing,
		DateCreated: now.Add(-23 * time.Hour),
	})
	require.NoError(t, err)
	_, err = bundles.Create(dbmodels.MatchBundle{
		Status:      models.BundleStatusPitched,
		DateCreated: now.Add(-48 * time.Hour),
	})
	require.NoError(t, err)

	list, err := handler.ListGhosted(now)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, stale, list[0].ID)
	require.True(t, list[0].IsGhosted)
	require.NotEmpty(t, list[0].Elapsed)
}

func TestCandidatePool(t *testing.T) {
	t.Run(`pool is scored and skill-filtered`, func(t *testing.T) {
		handler, _, jobs, staff, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"))
		chef := testStaff("s1", "Tandoor Chef")
		chef.CurrentLocation = models.LocationLookingForWork
		staff.records = append(staff.records, chef, testStaff("s2", "Waiter"))

		pool, err := handler.CandidatePool("job-1")
		require.NoError(t, err)
		require.Len(t, pool, 1)
		require.Equal(t, "s1", pool[0].Staff.ID)
		require.Greater(t, pool[0].Score.TotalScore, 0)
	})

	t.Run(`skill match is case-insensitive`, func(t *testing.T) {
		handler, _, jobs, staff, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"))
		staff.records = append(staff.records, testStaff("s1", "tandoor chef"))

		pool, err := handler.CandidatePool("job-1")
		require.NoError(t, err)
		require.Len(t, pool, 1)
	})

	t.Run(`candidate in any bundle is excluded`, func(t *testing.T) {
		handler, bundles, jobs, staff, _, _ := newTestHandler()
		jobs.records = append(jobs.records, testJob("job-1"), testJob("job-2"))
		staff.records = append(staff.records, testStaff("s1", "Tandoor Chef"), testStaff("s2", "Tandoor Chef"))

		// s1 is matched to a different job; it must still disappear
		// from job-1's pool.
		_, err := bundles.Create(dbmodels.MatchBundle{
			JobID:        "job-2",
			CandidateIDs: dbmodels.CandidateIDs{"s1"},
			Status:       models.BundleStatusPitched,
			DateCreated:  time.Now(),
		})
		require.NoError(t, err)

		pool, err := handler.CandidatePool("job-1")
		require.NoError(t, err)
		require.Len(t, pool, 1)
		require.Equal(t, "s2", pool[0].Staff.ID)
	})

	t.Run(`unknown job`, func(t *testing.T) {
		handler, _, _, _, _, _ := newTestHandler()

		_, err := handler.CandidatePool("missing")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
