package booking

import (
	"context"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
)

type DailyStats struct {
	Date       string  `json:"date"`
	Total      int     `json:"total"`
	Booked     int     `json:"booked"`
	Completed  int     `json:"completed"`
	Cancelled  int     `json:"cancelled"`
	Revenue    float64 `json:"revenue"`
	ServedMins int     `json:"served_minutes"`
}

type ComputeDailyStats struct {
	repo schedule.Repository
}

func NewComputeDailyStats(repo schedule.Repository) *ComputeDailyStats {
	return &ComputeDailyStats{repo: repo}
}

// Execute ricalcola gli aggregati del giorno a partire dagli
// appuntamenti: nessuna tabella di appoggio, il dato è sempre fresco.
// Il fatturato conta solo gli appuntamenti completati.
func (uc *ComputeDailyStats) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) (*DailyStats, error) {

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	stats := &DailyStats{Date: date}

	for _, ap := range appointments {
		switch schedule.AppointmentStatus(ap.Status) {
		case schedule.StatusBooked:
			stats.Booked++
		case schedule.StatusCompleted:
			stats.Completed++
			stats.Revenue += ap.Service.Price
			stats.ServedMins += ap.Service.DurationMin
		case schedule.StatusCancelled:
			stats.Cancelled++
		case schedule.StatusDeleted:
			continue
		}
		stats.Total++
	}

	return stats, nil
}
