package models

import "time"

// Staff member that actually takes bookings. Separate from User: a
// professional does not necessarily have a login.
type Professional struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Title  string `gorm:"size:100" json:"title"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
