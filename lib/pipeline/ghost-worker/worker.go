package ghostworker

import (
	"context"
	"fmt"
	"time"

	"chef-karigar-backend/db"
	"chef-karigar-backend/lib/notification"
	pipelinestore "chef-karigar-backend/lib/pipeline/store"
	baseworker "chef-karigar-backend/lib/utils/base-worker"
	"chef-karigar-backend/lib/utils/helpers"
	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

const (
	workerName    = "GhostingAlertJob"
	firstRunDelay = 30 * time.Second
	handlePeriod  = 5 * time.Minute
)

// Alerter is the notification channel the sweep emits into.
type Alerter interface {
	NotifyOnce(alertKey string, code models.NotificationCode, title, message string) (created bool)
}

func StartWorker(ctx context.Context) {
	i := impl{
		BaseImpl: *baseworker.NewInstance(workerName, firstRunDelay, handlePeriod),
		store:    pipelinestore.NewInstance(db.DB),
		alerter:  notification.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store   pipelinestore.Provider
	alerter Alerter
}

// handle sweeps bundles stuck in Interviewing and raises one alert per
// bundle. The sweep only reads pipeline state; dedup lives in the
// notification channel, keyed per bundle.
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	now := time.Now()
	list, err := i.store.ListGhosted(now)
	if err != nil {
		logger.WithError(err).Error("error listing ghosted bundles")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			return
		}
		if i.alerter.NotifyOnce(AlertKey(rec), models.NotificationCodeGhostingAlert, "Ghosting Alert", alertMessage(rec, now)) {
			logger.WithField("bundle_id", rec.ID).Info("ghosting alert raised")
		}
	}
}

// AlertKey is the stable per-bundle dedup key.
func AlertKey(rec dbmodels.MatchBundle) string {
	return "ghost-" + rec.ID
}

func alertMessage(rec dbmodels.MatchBundle, now time.Time) string {
	elapsed := now.Sub(rec.DateCreated).Round(time.Minute)
	return fmt.Sprintf("%s (%s) has been in Interviewing for %s. Follow up now!",
		rec.BusinessName, rec.Role, elapsed)
}
