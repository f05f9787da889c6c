// Package booking models the multi-step booking wizard as a server-side
// session: service, then date and time, then client details.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

type Step string

const (
	StepSelectingService  Step = "selecting_service"
	StepSelectingDateTime Step = "selecting_datetime"
	StepEnteringDetails   Step = "entering_details"
	StepSubmitted         Step = "submitted"
)

var ErrSessionNotFound = errors.New("booking session not found")

type Session struct {
	ID        uuid.UUID  `json:"id"`
	Step      Step       `json:"step"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
	Date      string     `json:"date,omitempty"` // YYYY-MM-DD
	Time      string     `json:"time,omitempty"` // HH:MM

	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store guarda sessões por um tempo limitado.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Step:      StepSelectingService,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) Done() bool {
	return s.Step == StepSubmitted
}

// SelectService volta o fluxo para a escolha de data, descartando
// data e horário já escolhidos.
func (s *Session) SelectService(serviceID uuid.UUID, now time.Time) error {
	if s.Done() {
		return httperr.ErrBusiness("session_submitted")
	}

	s.ServiceID = &serviceID
	s.Date = ""
	s.Time = ""
	s.Step = StepSelectingDateTime
	s.UpdatedAt = now
	return nil
}

// SelectSlot só valida a etapa; quem chama confere o horário no resolvedor.
func (s *Session) SelectSlot(date, hm string, now time.Time) error {
	if s.Step != StepSelectingDateTime && s.Step != StepEnteringDetails {
		return httperr.ErrBusiness("invalid_step")
	}

	s.Date = date
	s.Time = hm
	s.Step = StepEnteringDetails
	s.UpdatedAt = now
	return nil
}

func (s *Session) CanSubmit() error {
	if s.Step != StepEnteringDetails || s.ServiceID == nil || s.Date == "" || s.Time == "" {
		return httperr.ErrBusiness("invalid_step")
	}
	return nil
}

func (s *Session) MarkSubmitted(appointmentID *uuid.UUID, now time.Time) {
	s.AppointmentID = appointmentID
	s.Step = StepSubmitted
	s.UpdatedAt = now
}
