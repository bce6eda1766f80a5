package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chef-karigar-backend/models"
)

func TestMatchBundleIsGhosted(t *testing.T) {
	now := time.Now()

	t.Run(`interviewing past the threshold`, func(t *testing.T) {
		rec := MatchBundle{
			Status:      models.BundleStatusInterviewing,
			DateCreated: now.Add(-25 * time.Hour),
		}
		require.True(t, rec.IsGhosted(now))
	})

	t.Run(`interviewing within the threshold`, func(t *testing.T) {
		rec := MatchBundle{
			Status:      models.BundleStatusInterviewing,
			DateCreated: now.Add(-23 * time.Hour),
		}
		require.False(t, rec.IsGhosted(now))
	})

	t.Run(`exactly at the threshold is not ghosted`, func(t *testing.T) {
		rec := MatchBundle{
			Status:      models.BundleStatusInterviewing,
			DateCreated: now.Add(-GhostingThreshold),
		}
		require.False(t, rec.IsGhosted(now))
	})

	t.Run(`only interviewing bundles ghost`, func(t *testing.T) {
		old := now.Add(-48 * time.Hour)
		for _, status := range []models.BundleStatus{
			models.BundleStatusNew,
			models.BundleStatusPitched,
			models.BundleStatusClosed,
			models.BundleStatusCancelled,
		} {
			rec := MatchBundle{Status: status, DateCreated: old}
			require.False(t, rec.IsGhosted(now), string(status))
		}
	})
}

func TestMatchBundleHasCandidate(t *testing.T) {
	rec := MatchBundle{CandidateIDs: CandidateIDs{"s1", "s2"}}
	require.True(t, rec.HasCandidate("s2"))
	require.False(t, rec.HasCandidate("s3"))
}
