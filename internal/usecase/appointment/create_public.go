package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreatePublicAppointmentInput struct {
	ServiceID uuid.UUID
	Date      time.Time
	Time      string // HH:MM

	Client validators.ClientData
	Notes  string

	// campo invisível do formulário; só robôs preenchem
	Honeypot string
}

type CreatePublicAppointmentResult struct {
	Appointment *models.Appointment
	Discarded   bool
}

// ======================================================
// USE CASE
// ======================================================

type CreatePublicAppointment struct {
	availability *GetAvailability
	repo         domain.Repository
	audit        Auditor
	checkEmail   EmailChecker
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	clock Clock,
	audit Auditor,
	checkEmail EmailChecker,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		availability: NewGetAvailability(repo, clock),
		repo:         repo,
		audit:        audit,
		checkEmail:   checkEmail,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*CreatePublicAppointmentResult, error) {

	// --------------------------------------------------
	// 1️⃣ Honeypot: finge sucesso e não grava nada
	// --------------------------------------------------
	if in.Honeypot != "" {
		return &CreatePublicAppointmentResult{Discarded: true}, nil
	}

	// --------------------------------------------------
	// 2️⃣ Dados do cliente
	// --------------------------------------------------
	client, err := validators.Client(in.Client)
	if err != nil {
		return nil, err
	}

	if uc.checkEmail != nil && !uc.checkEmail(ctx, client.Email) {
		return nil, httperr.ValidationError{Fields: map[string]string{
			"email": "O domínio do e-mail informado não parece ser válido.",
		}}
	}

	// --------------------------------------------------
	// 3️⃣ Data + horário precisam estar entre os slots livres
	// --------------------------------------------------
	storedTime, err := domain.StoredTime(in.Time)
	if err != nil {
		return nil, err
	}

	avail, err := uc.availability.Execute(ctx, AvailabilityInput{
		ServiceID: in.ServiceID,
		Date:      in.Date,
	})
	if err != nil {
		return nil, err
	}
	if !avail.DateAvailable {
		return nil, httperr.ErrBusiness("date_unavailable")
	}
	if !availability.Contains(avail.Slots, domain.SlotTime(storedTime)) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 4️⃣ Cliente + agendamento confirmado
	// --------------------------------------------------
	c := &models.Client{
		Name:  client.Name,
		Email: client.Email,
		Phone: client.Phone,
	}

	ap := &models.Appointment{
		ServiceID:       avail.Service.ID,
		AppointmentDate: in.Date,
		AppointmentTime: storedTime,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, c, ap); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	ap.Client = *c
	ap.Service = *avail.Service

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date": avail.Date,
			"time": storedTime,
		},
	})

	return &CreatePublicAppointmentResult{Appointment: ap}, nil
}
