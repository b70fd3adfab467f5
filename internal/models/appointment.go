package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index:idx_appointments_salon_date" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	TeamMemberID uint       `gorm:"index" json:"team_member_id"`
	TeamMember   TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"team_member"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Identità cliente copiata sul record, nessuna tabella clienti
	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	// Data YYYY-MM-DD e orari HH:MM, confrontabili lessicograficamente
	Date      string `gorm:"size:10;index:idx_appointments_salon_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'Prenotato'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
