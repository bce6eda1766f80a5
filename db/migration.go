package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "chef-karigar-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.StaffMember{}); err != nil {
		return errors.Wrap(err, "error migrating StaffMember")
	}
	if err := DB.AutoMigrate(&dbmodels.StaffHistory{}); err != nil {
		return errors.Wrap(err, "error migrating StaffHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "error migrating Job")
	}
	if err := DB.AutoMigrate(&dbmodels.MatchBundle{}); err != nil {
		return errors.Wrap(err, "error migrating MatchBundle")
	}
	if err := DB.AutoMigrate(&dbmodels.Transaction{}); err != nil {
		return errors.Wrap(err, "error migrating Transaction")
	}
	if err := DB.AutoMigrate(&dbmodels.Referral{}); err != nil {
		return errors.Wrap(err, "error migrating Referral")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "error migrating Notification")
	}
	log.Info("migrations applied")
	return nil
}
