package dto

import (
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

type AppointmentListDTO struct {
	ID      uuid.UUID `json:"id"`
	Date    string    `json:"appointment_date"`
	Time    string    `json:"appointment_time"`
	Status  string    `json:"status"`
	Notes   string    `json:"notes"`
	Client  ClientDTO `json:"client"`
	Service Service   `json:"service"`
}

type ClientDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type Service struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
}

const (
	missingClient  = "Cliente não encontrado"
	missingService = "Serviço não encontrado"
)

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:     ap.ID,
		Date:   ap.AppointmentDate.Format(domain.DateLayout),
		Time:   domain.SlotTime(ap.AppointmentTime),
		Status: ap.Status,
		Notes:  ap.Notes,
		Client: ClientDTO{
			ID:    ap.ClientID,
			Name:  ap.Client.Name,
			Email: ap.Client.Email,
			Phone: ap.Client.Phone,
		},
		Service: Service{
			ID:              ap.ServiceID,
			Name:            ap.Service.Name,
			Price:           ap.Service.Price,
			DurationMinutes: ap.Service.DurationMinutes,
		},
	}

	if out.Client.Name == "" {
		out.Client.Name = missingClient
	}
	if out.Service.Name == "" {
		out.Service.Name = missingService
	}
	return out
}
