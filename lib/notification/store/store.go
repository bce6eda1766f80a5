package notificationstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	// CreateOnce inserts the notification unless one with the same alert
	// key already exists. Returns true when a new row was inserted.
	CreateOnce(rec dbmodels.Notification) (created bool, err error)
	List(unreadOnly bool) ([]dbmodels.Notification, error)
	MarkRead(ids []string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateOnce(rec dbmodels.Notification) (created bool, err error) {
	tx := i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "alert_key"}},
			DoNothing: true,
		}).
		Create(&rec)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) List(unreadOnly bool) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.
		Model(dbmodels.Notification{}).
		Order("created_at desc")
	if unreadOnly {
		tx.Where("read = false")
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id in ?", ids).
		Update("read", true).
		Error
}
