package booking

import (
	"context"

	domain "github.com/odfbarbers/booking-api/internal/domain/booking"
	"github.com/odfbarbers/booking-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	status *domain.Status,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, status)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		names := make([]string, 0, len(ap.Services))
		for _, svc := range ap.Services {
			names = append(names, svc.Name)
		}

		out = append(out, dto.AppointmentListDTO{
			ID:                ap.ID,
			Ref:               ap.Ref,
			CustomerName:      ap.CustomerName,
			CustomerPhone:     ap.CustomerPhone,
			Date:              ap.TimeSlot.Date,
			Period:            ap.TimeSlot.Period,
			BarberName:        ap.Barber.Name,
			Status:            ap.Status,
			Services:          names,
			EstimatedDuration: ap.EstimatedDuration,
			EstimatedPrice:    ap.EstimatedPrice,
			SubmittedAt:       ap.SubmittedAt,
		})
	}

	return out, nil
}
