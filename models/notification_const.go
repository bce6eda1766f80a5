package models

type NotificationCode string

const (
	NotificationCodeGhostingAlert NotificationCode = "ghosting_alert" // bundle stuck in Interviewing
	NotificationCodeJobPosted     NotificationCode = "job_posted"
	NotificationCodeHireConfirmed NotificationCode = "hire_confirmed"
)
