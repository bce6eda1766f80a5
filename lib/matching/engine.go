package matching

import (
	"math"
	"strings"

	"chef-karigar-backend/models"
	matchingapimodels "chef-karigar-backend/models/api/matching"
	dbmodels "chef-karigar-backend/models/db"
)

// Dimension weights of the weighted sum.
const (
	skillWeight      = 0.4
	locationWeight   = 0.3
	experienceWeight = 0.3

	verifiedBonus = 10 // flat, added after the weighted sum
)

// Score computes the suitability of a candidate for a job. Pure and
// deterministic: same inputs always produce the same score. Degenerate
// inputs (empty skill, missing location) degrade to the floor scores
// instead of failing, so a pool view never breaks on bad data.
func Score(candidate dbmodels.StaffMember, job dbmodels.Job) matchingapimodels.MatchScore {
	skillScore := scoreSkill(candidate.Skill, job.Role)
	locationScore := scoreLocation(candidate.CurrentLocation, job.Location, job.PinCode)
	experienceScore := scoreExperience(candidate.ExperienceYears)

	sum := skillWeight*float64(skillScore) +
		locationWeight*float64(locationScore) +
		experienceWeight*float64(experienceScore)
	if candidate.IsVerified {
		sum += verifiedBonus
	}
	total := int(math.Round(math.Min(100, sum)))

	return matchingapimodels.MatchScore{
		CandidateID: candidate.ID,
		JobID:       job.ID,
		TotalScore:  total,
		Tier:        TierOf(total),
		Breakdown: matchingapimodels.ScoreBreakdown{
			SkillScore:      skillScore,
			LocationScore:   locationScore,
			ExperienceScore: experienceScore,
		},
	}
}

// scoreSkill is a naive containment heuristic over free-text labels.
// Known weakness: "Chef" matches "Sous Chef" and "Chef Assistant"
// identically. Kept as-is, the pool ranking depends on these exact values.
func scoreSkill(skill, role string) int {
	skill = strings.ToLower(strings.TrimSpace(skill))
	role = strings.ToLower(strings.TrimSpace(role))
	if skill == "" || role == "" {
		return 30
	}
	if skill == role {
		return 100
	}
	if strings.Contains(skill, role) || strings.Contains(role, skill) {
		return 70
	}
	return 30
}

func scoreLocation(candidateLocation, jobLocation, jobPinCode string) int {
	candidateLocation = strings.ToLower(candidateLocation)
	jobLocation = strings.ToLower(jobLocation)

	// An unattached candidate beats any fixed location.
	if strings.Contains(candidateLocation, strings.ToLower(models.LocationLookingForWork)) {
		return 100
	}
	if candidateLocation != "" {
		// First comma-delimited segment is read as the city.
		city := strings.TrimSpace(strings.Split(candidateLocation, ",")[0])
		if city != "" && strings.Contains(jobLocation, city) {
			return 90
		}
	}
	if jobPinCode != "" && strings.Contains(candidateLocation, strings.ToLower(jobPinCode)) {
		return 85
	}
	return 50
}

func scoreExperience(years int) int {
	switch {
	case years >= 5:
		return 100
	case years >= 3:
		return 85
	case years >= 1:
		return 70
	default:
		return 50
	}
}

// TierOf buckets a total score for badge display.
func TierOf(total int) models.MatchTier {
	switch {
	case total >= 85:
		return models.MatchTierHigh
	case total >= 70:
		return models.MatchTierMedium
	case total >= 50:
		return models.MatchTierLowMedium
	default:
		return models.MatchTierLow
	}
}
