package pipelineapimodels

import (
	"time"

	"github.com/pkg/errors"

	"chef-karigar-backend/models"
	matchingapimodels "chef-karigar-backend/models/api/matching"
	staffapimodels "chef-karigar-backend/models/api/staff"
	dbmodels "chef-karigar-backend/models/db"
)

type BundleCreateData struct {
	JobID        string   `json:"job_id"`
	CandidateIDs []string `json:"candidate_ids"`
}

func (b BundleCreateData) Validate() error {
	if b.JobID == "" {
		return errors.New("job is required")
	}
	return nil
}

type BundleView struct {
	ID           string              `json:"id"`
	JobID        string              `json:"job_id"`
	BusinessName string              `json:"business_name"`
	Role         string              `json:"role"`
	Salary       int                 `json:"salary"`
	CandidateIDs []string            `json:"candidate_ids"`
	Status       models.BundleStatus `json:"status"`
	DateCreated  string              `json:"date_created"` // DD.MM.YYYY
	LastActionBy string              `json:"last_action_by"`
	IsGhosted    bool                `json:"is_ghosted"`
}

func Convert(rec dbmodels.MatchBundle, now time.Time) BundleView {
	return BundleView{
		ID:           rec.ID,
		JobID:        rec.JobID,
		BusinessName: rec.BusinessName,
		Role:         rec.Role,
		Salary:       rec.Salary,
		CandidateIDs: rec.CandidateIDs,
		Status:       rec.Status,
		DateCreated:  rec.DateCreated.Format("02.01.2006"),
		LastActionBy: rec.LastActionBy,
		IsGhosted:    rec.IsGhosted(now),
	}
}

// GhostedView is the ghosting-alert payload surfaced to the dashboard.
type GhostedView struct {
	BundleView
	Elapsed string `json:"elapsed"` // time since the bundle entered the pipeline
}

func ConvertGhosted(rec dbmodels.MatchBundle, now time.Time) GhostedView {
	return GhostedView{
		BundleView: Convert(rec, now),
		Elapsed:    now.Sub(rec.DateCreated).Round(time.Minute).String(),
	}
}

type BundleListFilter struct {
	Status models.BundleStatus `json:"status"` // a funnel stage or "All"
}

func (f BundleListFilter) Validate() error {
	if f.Status == "" || f.Status == models.BundleStatusAll {
		return nil
	}
	if !f.Status.IsValid() {
		return errors.New("unknown bundle status")
	}
	return nil
}

// PoolCandidateView is one row of a job's candidate pool: the staff profile
// decorated with its match score against that job.
type PoolCandidateView struct {
	Staff staffapimodels.StaffView     `json:"staff"`
	Score matchingapimodels.MatchScore `json:"score"`
}
