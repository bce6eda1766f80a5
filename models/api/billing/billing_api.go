package billingapimodels

import (
	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type TransactionView struct {
	ID          string                   `json:"id"`
	Type        models.TransactionType   `json:"type"`
	Amount      int                      `json:"amount"`
	Description string                   `json:"description"`
	Status      models.TransactionStatus `json:"status"`
	Date        string                   `json:"date"` // DD.MM.YYYY
}

func Convert(rec dbmodels.Transaction) TransactionView {
	return TransactionView{
		ID:          rec.ID,
		Type:        rec.Type,
		Amount:      rec.Amount,
		Description: rec.Description,
		Status:      rec.Status,
		Date:        rec.CreatedAt.Format("02.01.2006"),
	}
}
