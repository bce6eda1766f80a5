package pipelinestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MatchBundle) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.MatchBundle, err error)
	List(status models.BundleStatus) ([]dbmodels.MatchBundle, error)
	ListGhosted(now time.Time) ([]dbmodels.MatchBundle, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MatchBundle) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.MatchBundle{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.MatchBundle, error) {
	rec := dbmodels.MatchBundle{}
	err := i.db.
		Model(&dbmodels.MatchBundle{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// List returns bundles in insertion order. BundleStatusAll (or empty)
// returns the whole collection.
func (i impl) List(status models.BundleStatus) (list []dbmodels.MatchBundle, err error) {
	list = []dbmodels.MatchBundle{}
	tx := i.db.
		Model(dbmodels.MatchBundle{}).
		Order("created_at")
	if status != "" && status != models.BundleStatusAll {
		tx.Where("status = ?", status)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListGhosted(now time.Time) (list []dbmodels.MatchBundle, err error) {
	list = []dbmodels.MatchBundle{}
	err = i.db.
		Model(dbmodels.MatchBundle{}).
		Where("status = ?", models.BundleStatusInterviewing).
		Where("date_created < ?", now.Add(-dbmodels.GhostingThreshold)).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
