package models

import "time"

type TimeOff struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	TeamMemberID uint       `gorm:"index" json:"team_member_id"`
	TeamMember   TeamMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"team_member"`

	StartDate string `gorm:"size:10;not null" json:"start_date"`
	EndDate   string `gorm:"size:10;not null" json:"end_date"`

	// Vuoti = assenza per l'intera giornata
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Reason string `gorm:"size:100" json:"reason"`
	Status string `gorm:"size:20;default:'approved'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
