package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Opaque code shared with the customer in confirmations.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ProfessionalID uint         `gorm:"index:idx_bookings_professional_start" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	StartTime time.Time `gorm:"index:idx_bookings_professional_start" json:"start_time"`
	// Copied from the service at booking time; later service edits do not
	// move existing bookings.
	DurationMin int       `json:"duration_min"`
	EndTime     time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
