package models

import "time"

// Risorsa prenotabile del salone. Non è un account di login:
// un membro del team può esistere senza User associato.
type TeamMember struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Phone  string `gorm:"size:20" json:"phone"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
