package staffstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.StaffMember) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.StaffMember, err error)
	List(filter dbmodels.StaffFilter) ([]dbmodels.StaffMember, error)
	ListBySkill(skill string) ([]dbmodels.StaffMember, error)
	ListByIDs(ids []string) ([]dbmodels.StaffMember, error)
	IsExistPhone(phone string) (found bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StaffMember) (id string, err error) {
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
		Model(&dbmodels.StaffMember{}).
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

func (i impl) GetByID(id string) (*dbmodels.StaffMember, error) {
	rec := dbmodels.StaffMember{}
	err := i.db.
		Model(&dbmodels.StaffMember{}).
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

func (i impl) List(filter dbmodels.StaffFilter) (list []dbmodels.StaffMember, err error) {
	list = []dbmodels.StaffMember{}
	tx := i.db.
		Model(dbmodels.StaffMember{}).
		Order("created_at")
	i.addFilter(tx, filter)
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListBySkill(skill string) (list []dbmodels.StaffMember, err error) {
	list = []dbmodels.StaffMember{}
	err = i.db.
		Model(dbmodels.StaffMember{}).
		Where("LOWER(skill) = ?", strings.ToLower(skill)).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.StaffMember, err error) {
	list = []dbmodels.StaffMember{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Model(dbmodels.StaffMember{}).
		Where("id in ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) IsExistPhone(phone string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.StaffMember{}).
		Select("count(*) > 0").
		Where("phone = ?", phone).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.StaffFilter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(name) like ? or phone like ?", searchValue, searchValue)
	}
	if filter.Skill != "" {
		tx.Where("LOWER(skill) = ?", strings.ToLower(filter.Skill))
	}
	if filter.OnlyLooking {
		tx.Where("current_location = ?", models.LocationLookingForWork)
	}
}
