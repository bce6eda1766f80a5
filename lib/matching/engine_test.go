package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

func tandoorJob() dbmodels.Job {
	return dbmodels.Job{
		BaseModel:    dbmodels.BaseModel{ID: "j1"},
		BusinessName: "Mamta Cafe",
		Role:         "Tandoor Chef",
		Location:     "Mamta Cafe, Mumbai",
		PinCode:      "400053",
		Salary:       25000,
	}
}

func TestScore(t *testing.T) {
	t.Run(`perfect candidate is capped at 100`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{
			BaseModel:       dbmodels.BaseModel{ID: "s1"},
			Skill:           "Tandoor Chef",
			IsVerified:      true,
			ExperienceYears: 5,
			CurrentLocation: models.LocationLookingForWork,
		}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 100, score.Breakdown.SkillScore)
		require.Equal(t, 100, score.Breakdown.LocationScore)
		require.Equal(t, 100, score.Breakdown.ExperienceScore)
		// 0.4*100 + 0.3*100 + 0.3*100 + 10 = 110, capped
		require.Equal(t, 100, score.TotalScore)
		require.Equal(t, models.MatchTierHigh, score.Tier)
	})

	t.Run(`skill match is case-insensitive`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{Skill: "tandoor chef"}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 100, score.Breakdown.SkillScore)
	})

	t.Run(`substring skill scores 70`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{Skill: "Chef"}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 70, score.Breakdown.SkillScore)
	})

	t.Run(`unrelated skill scores 30`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{Skill: "Waiter"}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 30, score.Breakdown.SkillScore)
	})

	t.Run(`empty skill is a no-match, not an error`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 30, score.Breakdown.SkillScore)
		require.Equal(t, 50, score.Breakdown.LocationScore)
		require.Equal(t, 50, score.Breakdown.ExperienceScore)
	})

	t.Run(`looking-for-work sentinel always scores location 100`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{CurrentLocation: models.LocationLookingForWork}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 100, score.Breakdown.LocationScore)
	})

	t.Run(`same city scores 90`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{CurrentLocation: "Mamta Cafe, Andheri"}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 90, score.Breakdown.LocationScore)
	})

	t.Run(`pin code area scores 85`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{CurrentLocation: "Andheri West 400053"}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 85, score.Breakdown.LocationScore)
	})

	t.Run(`different location scores 50`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{CurrentLocation: "Spice Garden, Delhi"}
		score := Score(candidate, tandoorJob())
		require.Equal(t, 50, score.Breakdown.LocationScore)
	})

	t.Run(`experience bands`, func(t *testing.T) {
		job := tandoorJob()
		require.Equal(t, 100, Score(dbmodels.StaffMember{ExperienceYears: 8}, job).Breakdown.ExperienceScore)
		require.Equal(t, 100, Score(dbmodels.StaffMember{ExperienceYears: 5}, job).Breakdown.ExperienceScore)
		require.Equal(t, 85, Score(dbmodels.StaffMember{ExperienceYears: 4}, job).Breakdown.ExperienceScore)
		require.Equal(t, 70, Score(dbmodels.StaffMember{ExperienceYears: 1}, job).Breakdown.ExperienceScore)
		require.Equal(t, 50, Score(dbmodels.StaffMember{ExperienceYears: 0}, job).Breakdown.ExperienceScore)
	})

	t.Run(`verified bonus is additive`, func(t *testing.T) {
		unverified := dbmodels.StaffMember{Skill: "Waiter", ExperienceYears: 2}
		verified := unverified
		verified.IsVerified = true
		job := tandoorJob()
		require.Equal(t, Score(unverified, job).TotalScore+10, Score(verified, job).TotalScore)
	})

	t.Run(`score is deterministic`, func(t *testing.T) {
		candidate := dbmodels.StaffMember{
			Skill:           "Curry Chef",
			ExperienceYears: 3,
			CurrentLocation: "Spice Garden, Delhi",
			IsVerified:      true,
		}
		job := tandoorJob()
		require.Equal(t, Score(candidate, job), Score(candidate, job))
	})

	t.Run(`total is always within 0..100`, func(t *testing.T) {
		job := tandoorJob()
		candidates := []dbmodels.StaffMember{
			{},
			{Skill: "Tandoor Chef", ExperienceYears: 10, IsVerified: true, CurrentLocation: models.LocationLookingForWork},
			{Skill: "Dishwasher", CurrentLocation: "Chennai"},
		}
		for _, c := range candidates {
			score := Score(c, job)
			require.GreaterOrEqual(t, score.TotalScore, 0)
			require.LessOrEqual(t, score.TotalScore, 100)
		}
	})
}

func TestTierOf(t *testing.T) {
	require.Equal(t, models.MatchTierHigh, TierOf(100))
	require.Equal(t, models.MatchTierHigh, TierOf(85))
	require.Equal(t, models.MatchTierMedium, TierOf(84))
	require.Equal(t, models.MatchTierMedium, TierOf(70))
	require.Equal(t, models.MatchTierLowMedium, TierOf(69))
	require.Equal(t, models.MatchTierLowMedium, TierOf(50))
	require.Equal(t, models.MatchTierLow, TierOf(49))
	require.Equal(t, models.MatchTierLow, TierOf(0))
}
