package initializers

import (
	"context"
	"time"

	"chef-karigar-backend/config"
	"chef-karigar-backend/fiberlog"
	billinghandler "chef-karigar-backend/lib/billing"
	xlsexport "chef-karigar-backend/lib/export/xls"
	filestorage "chef-karigar-backend/lib/file-storage"
	jobhandler "chef-karigar-backend/lib/job"
	notificationhandler "chef-karigar-backend/lib/notification"
	pipelinehandler "chef-karigar-backend/lib/pipeline"
	ghostworker "chef-karigar-backend/lib/pipeline/ghost-worker"
	referralhandler "chef-karigar-backend/lib/referral"
	staffhandler "chef-karigar-backend/lib/staff"
	staffhistoryhandler "chef-karigar-backend/lib/staff-history"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	staffhistoryhandler.NewHandler()
	staffhandler.NewHandler()
	billinghandler.NewHandler()
	jobhandler.NewHandler()
	pipelinehandler.NewHandler()
	notificationhandler.NewHandler()
	referralhandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

// workers start with a gap to smooth the load
func initWorkers(ctx context.Context) {
	if makeTimeGap(ctx) {
		// sweep for bundles stuck in Interviewing
		ghostworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
