package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
)

// StaffHistory is the append-only audit trail of roster edits.
type StaffHistory struct {
	BaseModel
	StaffID    string       `gorm:"type:varchar(36);index"`
	UserName   string       `gorm:"type:varchar(255)"` // acting operator
	ActionType ActionType   `gorm:"type:varchar(255)"`
	Changes    StaffChanges `gorm:"type:jsonb"`
}

type StaffChanges struct {
	Description string        `json:"description"`
	Data        []StaffChange `json:"data"`
}

type StaffChange struct {
	Field    string      `json:"field"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

func (j StaffChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *StaffChanges) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type ActionType string

const (
	HistoryTypeAdded        ActionType = "added"         // member entered the roster
	HistoryTypeUpdate       ActionType = "update"        // profile fields edited
	HistoryTypeCallLog      ActionType = "call_log"      // call log entry recorded
	HistoryTypeVerification ActionType = "verification"  // vetting flags changed
	HistoryTypeStatusChange ActionType = "status_change" // roster status changed
)
