package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"chef-karigar-backend/models"
)

// GhostingThreshold is how long a bundle may sit in Interviewing, counted
// from DateCreated, before it is considered ghosted.
const GhostingThreshold = 24 * time.Hour

// MatchBundle is a sourcing proposal: one job plus the selected candidates,
// tracked through the sales funnel. Role, salary and business name are
// denormalized from the job at creation time for display.
type MatchBundle struct {
	BaseModel
	JobID        string `gorm:"type:varchar(36);index"`
	Job          *Job   `gorm:"foreignKey:JobID"`
	BusinessName string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(255)"`
	Salary       int
	CandidateIDs CandidateIDs        `gorm:"type:jsonb"`
	Status       models.BundleStatus `gorm:"type:varchar(50);index"`
	DateCreated  time.Time           // pipeline entry time, never refreshed on transition
	LastActionBy string              `gorm:"type:varchar(255)"`
}

type CandidateIDs []string

func (j CandidateIDs) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *CandidateIDs) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

func (b MatchBundle) HasCandidate(staffID string) bool {
	for _, id := range b.CandidateIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// IsGhosted reports whether the bundle is stuck in Interviewing beyond the
// threshold at the given moment. Recomputed on every read, never stored.
func (b MatchBundle) IsGhosted(now time.Time) bool {
	if b.Status != models.BundleStatusInterviewing {
		return false
	}
	return now.Sub(b.DateCreated) > GhostingThreshold
}
