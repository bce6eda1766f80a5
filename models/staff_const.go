package models

type StaffStatus string

const (
	StaffStatusActive     StaffStatus = "Active"     // under an active placement contract
	StaffStatusCompleted  StaffStatus = "Completed"  // contract finished
	StaffStatusTerminated StaffStatus = "Terminated" // contract terminated early
	StaffStatusUnverified StaffStatus = "Unverified" // not yet vetted by the agency
)

type StaffSource string

const (
	StaffSourceOperator StaffSource = "operator" // added by a support operator
	StaffSourceReferral StaffSource = "referral" // referred by another staff member
	StaffSourceSelf     StaffSource = "self"     // self-submitted placement request
)

// LocationLookingForWork is the sentinel currentLocation value meaning the
// candidate has no placement and is actively available.
const LocationLookingForWork = "Looking for work"
