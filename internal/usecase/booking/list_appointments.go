package booking

import (
	"context"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/dto"
	"github.com/zugflow/zugflow-api/internal/models"
)

type ListAppointmentsByDate struct {
	repo schedule.Repository
}

func NewListAppointmentsByDate(
	repo schedule.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

type ListAppointmentsByMonth struct {
	repo schedule.Repository
}

func NewListAppointmentsByMonth(
	repo schedule.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	salonID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByMonth(ctx, salonID, year, month)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date,
			StartTime:    ap.StartTime,
			EndTime:      ap.EndTime,
			Status:       ap.Status,
			CustomerName: ap.CustomerName,
			ServiceName:  ap.Service.Name,
			TeamMember:   ap.TeamMember.Name,
		})
	}
	return out
}
