package models

import "time"

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Finestra di apertura del salone (HH:MM)
	OpeningTime string `gorm:"size:5;default:'09:00'" json:"opening_time"`
	ClosingTime string `gorm:"size:5;default:'19:00'" json:"closing_time"`

	Active            bool `gorm:"default:true" json:"active"`
	MinAdvanceMinutes int  `gorm:"default:60" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
