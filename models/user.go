package models

import (
	"time"

	"github.com/BelskviK/Styler-sub001/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Phone    string    `json:"phone"`

	Role      Role      `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`

	// Populated for stylers only; assignment is admin-gated.
	Services []Service `gorm:"many2many:stylist_services" json:"services,omitempty"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
