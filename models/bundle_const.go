package models

type BundleStatus string

const (
	BundleStatusNew          BundleStatus = "New"
	BundleStatusPitched      BundleStatus = "Pitched"
	BundleStatusInterviewing BundleStatus = "Interviewing"
	BundleStatusClosed       BundleStatus = "Closed"
	BundleStatusCancelled    BundleStatus = "Cancelled"
)

// BundleStatusAll is the pseudo-filter accepted by the pipeline list operation.
const BundleStatusAll BundleStatus = "All"

// Next returns the single-step forward transition of the sales funnel,
// or false when the status has no forward transition.
func (s BundleStatus) Next() (BundleStatus, bool) {
	switch s {
	case BundleStatusNew:
		return BundleStatusPitched, true
	case BundleStatusPitched:
		return BundleStatusInterviewing, true
	case BundleStatusInterviewing:
		return BundleStatusClosed, true
	}
	return "", false
}

func (s BundleStatus) IsTerminal() bool {
	return s == BundleStatusClosed || s == BundleStatusCancelled
}

func (s BundleStatus) IsValid() bool {
	switch s {
	case BundleStatusNew, BundleStatusPitched, BundleStatusInterviewing,
		BundleStatusClosed, BundleStatusCancelled:
		return true
	}
	return false
}
