package billingstore

import (
	"gorm.io/gorm"

	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Transaction) (id string, err error)
	List(txType models.TransactionType) ([]dbmodels.Transaction, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Transaction) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(txType models.TransactionType) (list []dbmodels.Transaction, err error) {
	list = []dbmodels.Transaction{}
	tx := i.db.
		Model(dbmodels.Transaction{}).
		Order("created_at")
	if txType != "" {
		tx.Where("type = ?", txType)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
