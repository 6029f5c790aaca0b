package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscription struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;index;not null" json:"userId"`
	PlanID               string    `gorm:"not null" json:"planId"`
	StripeSubscriptionID string    `gorm:"index" json:"subscriptionId"`
	Status               string    `gorm:"type:varchar(20);default:'active'" json:"status"`
	gorm.Model           `json:"-"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
