package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"chef-karigar-backend/db"
	"chef-karigar-backend/lib/billing"
	jobhandler "chef-karigar-backend/lib/job"
	jobstore "chef-karigar-backend/lib/job/store"
	"chef-karigar-backend/lib/matching"
	pipelinestore "chef-karigar-backend/lib/pipeline/store"
	staffstore "chef-karigar-backend/lib/staff/store"
	"chef-karigar-backend/lib/utils/lock"
	"chef-karigar-backend/models"
	pipelineapimodels "chef-karigar-backend/models/api/pipeline"
	staffapimodels "chef-karigar-backend/models/api/staff"
	dbmodels "chef-karigar-backend/models/db"
)

// transitionLockWait bounds how long a transition waits for a concurrent
// transition on the same bundle.
const transitionLockWait = 3 * time.Second

type Provider interface {
	CreateBundle(data pipelineapimodels.BundleCreateData, createdBy string) (pipelineapimodels.BundleView, error)
	Advance(ctx context.Context, id, actingUser string) (pipelineapimodels.BundleView, error)
	Cancel(ctx context.Context, id, actingUser string) (pipelineapimodels.BundleView, error)
	ListByStatus(status models.BundleStatus) ([]pipelineapimodels.BundleView, error)
	ListGhosted(now time.Time) ([]pipelineapimodels.GhostedView, error)
	CandidatePool(jobID string) ([]pipelineapimodels.PoolCandidateView, error)
}

// placementCloser is the job-side effect of a closed bundle.
type placementCloser interface {
	UpdateStatus(id string, status models.JobStatus) error
}

type commissionRecorder interface {
	RecordPlacement(bundle dbmodels.MatchBundle)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      pipelinestore.NewInstance(db.DB),
		jobStore:   jobstore.NewInstance(db.DB),
		staffStore: staffstore.NewInstance(db.DB),
		jobs:       jobhandler.Instance,
		billing:    billing.Instance,
	}
}

type impl struct {
	store      pipelinestore.Provider
	jobStore   jobstore.Provider
	staffStore staffstore.Provider
	jobs       placementCloser
	billing    commissionRecorder
}

// CreateBundle packages a job with the selected candidates and enters it
// into the funnel with status New. The tracker owns bundle status from
// here on.
func (i impl) CreateBundle(data pipelineapimodels.BundleCreateData, createdBy string) (pipelineapimodels.BundleView, error) {
	candidateIDs := dedupe(data.CandidateIDs)
	if len(candidateIDs) == 0 {
		return pipelineapimodels.BundleView{}, ErrEmptySelection
	}
	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		return pipelineapimodels.BundleView{}, err
	}
	if job == nil {
		return pipelineapimodels.BundleView{}, errors.Wrap(ErrNotFound, "job")
	}
	staffList, err := i.staffStore.ListByIDs(candidateIDs)
	if err != nil {
		return pipelineapimodels.BundleView{}, err
	}
	if len(staffList) != len(candidateIDs) {
		return pipelineapimodels.BundleView{}, errors.Wrap(ErrNotFound, "candidate")
	}
	rec := dbmodels.MatchBundle{
		JobID:        job.ID,
		BusinessName: job.BusinessName,
		Role:         job.Role,
		Salary:       job.Salary,
		CandidateIDs: candidateIDs,
		Status:       models.BundleStatusNew,
		DateCreated:  time.Now(),
		LastActionBy: createdBy,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return pipelineapimodels.BundleView{}, err
	}
	return i.view(id)
}

// Advance moves a bundle one stage forward. The caller never names the
// target stage, the funnel order decides it.
func (i impl) Advance(ctx context.Context, id, actingUser string) (pipelineapimodels.BundleView, error) {
	err := i.withBundleLock(ctx, id, func() error {
		rec, err := i.store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNotFound
		}
		next, ok := rec.Status.Next()
		if !ok {
			return errors.Wrapf(ErrInvalidTransition, "bundle is %s", rec.Status)
		}
		err = i.store.Update(id, map[string]interface{}{
			"status":         next,
			"last_action_by": actingUser,
		})
		if err != nil {
			return err
		}
		if next == models.BundleStatusClosed {
			i.onClosed(*rec)
		}
		return nil
	})
	if err != nil {
		return pipelineapimodels.BundleView{}, err
	}
	return i.view(id)
}

// Cancel moves a non-terminal bundle sideways to Cancelled.
func (i impl) Cancel(ctx context.Context, id, actingUser string) (pipelineapimodels.BundleView, error) {
	err := i.withBundleLock(ctx, id, func() error {
		rec, err := i.store.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNotFound
		}
		if rec.Status.IsTerminal() {
			return errors.Wrapf(ErrInvalidTransition, "bundle is %s", rec.Status)
		}
		return i.store.Update(id, map[string]interface{}{
			"status":         models.BundleStatusCancelled,
			"last_action_by": actingUser,
		})
	})
	if err != nil {
		return pipelineapimodels.BundleView{}, err
	}
	return i.view(id)
}

func (i impl) ListByStatus(status models.BundleStatus) ([]pipelineapimodels.BundleView, error) {
	list, err := i.store.List(status)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	result := make([]pipelineapimodels.BundleView, 0, len(list))
	for _, rec := range list {
		result = append(result, pipelineapimodels.Convert(rec, now))
	}
	return result, nil
}

// ListGhosted evaluates the ghosting predicate lazily against the given
// moment; nothing is stored.
func (i impl) ListGhosted(now time.Time) ([]pipelineapimodels.GhostedView, error) {
	list, err := i.store.ListGhosted(now)
	if err != nil {
		return nil, err
	}
	result := make([]pipelineapimodels.GhostedView, 0, len(list))
	for _, rec := range list {
		result = append(result, pipelineapimodels.ConvertGhosted(rec, now))
	}
	return result, nil
}

// CandidatePool lists candidates whose skill matches the job role, scored
// by the match engine. A candidate already present in any bundle is
// excluded, regardless of which job that bundle is for.
func (i impl) CandidatePool(jobID string) ([]pipelineapimodels.PoolCandidateView, error) {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.Wrap(ErrNotFound, "job")
	}
	staffList, err := i.staffStore.ListBySkill(job.Role)
	if err != nil {
		return nil, err
	}
	bundles, err := i.store.List(models.BundleStatusAll)
	if err != nil {
		return nil, err
	}
	matched := map[string]bool{}
	for _, b := range bundles {
		for _, id := range b.CandidateIDs {
			matched[id] = true
		}
	}
	result := make([]pipelineapimodels.PoolCandidateView, 0, len(staffList))
	for _, rec := range staffList {
		if matched[rec.ID] {
			continue
		}
		result = append(result, pipelineapimodels.PoolCandidateView{
			Staff: staffapimodels.Convert(rec),
			Score: matching.Score(rec, *job),
		})
	}
	return result, nil
}

// withBundleLock serializes mutations per bundle id so two concurrent
// transitions cannot interleave between read and write.
func (i impl) withBundleLock(ctx context.Context, id string, safeCode func() error) error {
	success, err := lock.WithDelay(ctx, "match-bundle-"+id, transitionLockWait, safeCode)
	if err != nil {
		return err
	}
	if !success {
		return errors.New("bundle is busy, try again")
	}
	return nil
}

// onClosed applies the side effects of a successful placement: the linked
// job is filled and the agency commission is recorded. Both are
// best-effort, a failure never rolls the transition back.
func (i impl) onClosed(rec dbmodels.MatchBundle) {
	logger := log.WithField("bundle_id", rec.ID)
	if i.jobs != nil {
		if err := i.jobs.UpdateStatus(rec.JobID, models.JobStatusFilled); err != nil {
			logger.WithError(err).Error("error marking job as filled")
		}
	}
	if i.billing != nil {
		i.billing.RecordPlacement(rec)
	}
}

func (i impl) view(id string) (pipelineapimodels.BundleView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return pipelineapimodels.BundleView{}, err
	}
	if rec == nil {
		return pipelineapimodels.BundleView{}, ErrNotFound
	}
	return pipelineapimodels.Convert(*rec, time.Now()), nil
}

func dedupe(ids []string) []string {
	seen := map[string]bool{}
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
