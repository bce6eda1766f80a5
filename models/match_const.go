package models

// MatchTier is the qualitative bucket of a numeric match score.
// The dashboard maps each tier to its own badge color.
type MatchTier string

const (
	MatchTierHigh      MatchTier = "high-confidence" // total >= 85
	MatchTierMedium    MatchTier = "medium"          // total >= 70
	MatchTierLowMedium MatchTier = "low-medium"      // total >= 50
	MatchTierLow       MatchTier = "low"
)
