package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type AvailabilityInput struct {
	ServiceID uuid.UUID
	Date      time.Time
}

type AvailabilityResult struct {
	Date          string          `json:"date"`
	DateAvailable bool            `json:"date_available"`
	Service       *models.Service `json:"service"`
	Slots         []string        `json:"slots"`
}

type GetAvailability struct {
	repo  domain.Repository
	clock Clock
}

func NewGetAvailability(repo domain.Repository, clock Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListActiveAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	windows := toWindows(rows)

	res := &AvailabilityResult{
		Date:    in.Date.Format(domain.DateLayout),
		Service: service,
		Slots:   []string{},
	}

	if !availability.IsDateAvailable(in.Date, windows, uc.clock.Now()) {
		return res, nil
	}
	res.DateAvailable = true

	apps, err := uc.repo.ListOccupyingAppointments(ctx, in.Date)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	bookings := make([]availability.Booking, 0, len(apps))
	for _, ap := range apps {
		bookings = append(bookings, availability.Booking{
			Date:   ap.AppointmentDate.Format(domain.DateLayout),
			Time:   ap.AppointmentTime,
			Status: domain.Status(ap.Status),
		})
	}

	res.Slots = availability.Slots(
		in.Date,
		windows,
		bookings,
		&availability.Service{
			ID:              service.ID.String(),
			Name:            service.Name,
			DurationMinutes: service.DurationMinutes,
		},
	)

	return res, nil
}
