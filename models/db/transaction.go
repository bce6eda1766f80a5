package dbmodels

import (
	"chef-karigar-backend/models"
)

// Transaction is one row of the agency money ledger.
type Transaction struct {
	BaseModel
	Type        models.TransactionType `gorm:"type:varchar(50);index"`
	Amount      int
	Description string
	Status      models.TransactionStatus `gorm:"type:varchar(50)"`
	BundleID    string                   `gorm:"type:varchar(36);index"` // filled for placement commissions
	StaffID     string                   `gorm:"type:varchar(36)"`       // filled for referral payouts
}
