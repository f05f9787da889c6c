package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type ListFilter struct {
	Status *Status
	From   *time.Time
	To     *time.Time
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// -------- Availability --------
	ListActiveAvailability(
		ctx context.Context,
	) ([]models.Availability, error)

	ListOccupyingAppointments(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create) --------
	CreateBooking(
		ctx context.Context,
		client *models.Client,
		ap *models.Appointment,
	) error

	// -------- Appointment (admin) --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
