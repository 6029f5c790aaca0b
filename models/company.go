package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Address      string    `json:"address"`
	WorkingHours JSONB     `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	Users        []User        `gorm:"foreignKey:CompanyID" json:"-"`
	Services     []Service     `gorm:"foreignKey:CompanyID" json:"-"`
	Appointments []Appointment `gorm:"foreignKey:CompanyID" json:"-"`
}

// Custom JSONB type for working hours
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
