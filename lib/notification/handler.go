package notification

import (
	log "github.com/sirupsen/logrus"

	"chef-karigar-backend/config"
	"chef-karigar-backend/db"
	notificationstore "chef-karigar-backend/lib/notification/store"
	"chef-karigar-backend/lib/smtp"
	botnotify "chef-karigar-backend/lib/utils/bot-notify"
	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	// NotifyOnce records an alert keyed by alertKey and fans it out to
	// the configured channels. A key that was already recorded is
	// silently skipped, so re-evaluating the same condition never spams.
	NotifyOnce(alertKey string, code models.NotificationCode, title, message string) (created bool)
	List(unreadOnly bool) ([]dbmodels.Notification, error)
	MarkRead(ids []string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store notificationstore.Provider
}

func (i impl) NotifyOnce(alertKey string, code models.NotificationCode, title, message string) bool {
	logger := log.
		WithField("alert_key", alertKey).
		WithField("event_code", string(code))
	created, err := i.store.CreateOnce(dbmodels.Notification{
		AlertKey: alertKey,
		Code:     code,
		Title:    title,
		Message:  message,
	})
	if err != nil {
		logger.WithError(err).Error("error saving notification")
		return false
	}
	if !created {
		return false
	}
	botnotify.SendAlert(string(code), title, message, logger)
	if config.Conf.Sales.Email != "" {
		err = smtp.Instance.SendEMail(config.Conf.Smtp.User, config.Conf.Sales.Email, message, title)
		if err != nil {
			logger.WithError(err).Error("error sending alert email")
		}
	}
	return true
}

func (i impl) List(unreadOnly bool) ([]dbmodels.Notification, error) {
	return i.store.List(unreadOnly)
}

func (i impl) MarkRead(ids []string) error {
	return i.store.MarkRead(ids)
}
