package matchingapimodels

import (
	"chef-karigar-backend/models"
)

// MatchScore is the result of scoring one candidate against one job.
// Ephemeral: recomputed on every query, never persisted.
type MatchScore struct {
	CandidateID string           `json:"candidate_id"`
	JobID       string           `json:"job_id"`
	TotalScore  int              `json:"total_score"` // 0..100, weighted sum plus bonus, capped
	Tier        models.MatchTier `json:"tier"`
	Breakdown   ScoreBreakdown   `json:"breakdown"`
}

// ScoreBreakdown carries the raw per-dimension scores before weighting,
// for the dashboard breakdown display.
type ScoreBreakdown struct {
	SkillScore      int `json:"skill_score"`
	LocationScore   int `json:"location_score"`
	ExperienceScore int `json:"experience_score"`
}
