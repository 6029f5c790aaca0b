package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a status change is legal. The lifecycle only
// moves forward (pending -> confirmed -> completed); cancellation is reachable
// from pending and confirmed. Completed and cancelled are terminal.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	StylistID uuid.UUID `gorm:"type:uuid;index;not null" json:"stylistId"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	// Nil for walk-in bookings created by staff on a customer's behalf.
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customerId,omitempty"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`

	ScheduledTime time.Time         `gorm:"not null" json:"scheduledTime"`
	Status        AppointmentStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	return
}
