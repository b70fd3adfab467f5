package models

import "time"

// Richiesta di prenotazione inviata dal cliente sul sito pubblico.
// Resta separata da Appointment: l'approvazione crea un nuovo
// Appointment, non cambia tabella a questo record.
type OnlineBooking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	SalonID uint  `gorm:"index:idx_online_bookings_salon_date" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	// Opzionale: il cliente può lasciare la scelta al salone
	TeamMemberID *uint       `gorm:"index" json:"team_member_id"`
	TeamMember   *TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"team_member,omitempty"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	Date      string `gorm:"size:10;index:idx_online_bookings_salon_date" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
