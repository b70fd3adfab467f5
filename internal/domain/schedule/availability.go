package schedule

import "github.com/zugflow/zugflow-api/internal/models"

type AvailabilityInput struct {
	SalonID   uint
	Date      string
	StartTime string

	// EndTime può essere vuoto se ServiceID è valorizzato: in quel
	// caso viene derivato dalla durata del servizio.
	EndTime   string
	ServiceID uint

	// Facoltativo: se valorizzato limita la verifica a un solo membro
	TeamMemberID uint
}

type AvailabilityResult struct {
	AvailableTeamMembers []models.TeamMember `json:"available_team_members"`
	TotalTeamMembers     int                 `json:"total_team_members"`
	MembersWithTimeOff   int                 `json:"members_with_time_off"`
	RequestedTime        string              `json:"requested_time"`
	EndTime              string              `json:"end_time"`
	ServiceDuration      int                 `json:"service_duration"`
}
