package staffhistorystore

import (
	"gorm.io/gorm"

	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.StaffHistory) error
	List(staffID string) ([]dbmodels.StaffHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StaffHistory) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) List(staffID string) (list []dbmodels.StaffHistory, err error) {
	err = i.db.
		Model(dbmodels.StaffHistory{}).
		Where("staff_id = ?", staffID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
