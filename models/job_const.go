package models

type JobStatus string

const (
	JobStatusDraft     JobStatus = "Draft"
	JobStatusOpen      JobStatus = "Open"
	JobStatusFilled    JobStatus = "Filled"
	JobStatusCancelled JobStatus = "Cancelled"
)

type JobTimeline string

const (
	JobTimelineImmediate   JobTimeline = "Immediate"
	JobTimelineWithinWeek  JobTimeline = "Within 1 Week"
	JobTimelineWithinMonth JobTimeline = "Within 1 Month"
)
