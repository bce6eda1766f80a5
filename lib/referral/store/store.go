package referralstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Referral) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Referral, err error)
	List(referrerID string) ([]dbmodels.Referral, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Referral) (id string, err error) {
	err = i.db.
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
		Model(&dbmodels.Referral{}).
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

func (i impl) GetByID(id string) (*dbmodels.Referral, error) {
	rec := dbmodels.Referral{}
	err := i.db.
		Model(&dbmodels.Referral{}).
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

func (i impl) List(referrerID string) (list []dbmodels.Referral, err error) {
	list = []dbmodels.Referral{}
	tx := i.db.
		Model(dbmodels.Referral{}).
		Order("created_at")
	if referrerID != "" {
		tx.Where("referrer_id = ?", referrerID)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
