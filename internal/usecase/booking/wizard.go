package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	appointmentuc "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

// Wizard conduz o agendamento em etapas guardadas no Store.
type Wizard struct {
	store        booking.Store
	repo         domain.Repository
	clock        appointmentuc.Clock
	availability *appointmentuc.GetAvailability
	create       *appointmentuc.CreatePublicAppointment
}

func NewWizard(
	store booking.Store,
	repo domain.Repository,
	clock appointmentuc.Clock,
	create *appointmentuc.CreatePublicAppointment,
) *Wizard {
	return &Wizard{
		store:        store,
		repo:         repo,
		clock:        clock,
		availability: appointmentuc.NewGetAvailability(repo, clock),
		create:       create,
	}
}

type SubmitInput struct {
	Client   validators.ClientData
	Notes    string
	Honeypot string
}

func (w *Wizard) Start(ctx context.Context) (*booking.Session, error) {
	sess := booking.NewSession(w.clock.Now())
	if err := w.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (w *Wizard) Get(ctx context.Context, id uuid.UUID) (*booking.Session, error) {
	sess, err := w.store.Get(ctx, id)
	if errors.Is(err, booking.ErrSessionNotFound) {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

func (w *Wizard) SelectService(ctx context.Context, id, serviceID uuid.UUID) (*booking.Session, error) {
	sess, err := w.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := w.repo.GetService(ctx, serviceID); err != nil {
		return nil, err
	}

	if err := sess.SelectService(serviceID, w.clock.Now()); err != nil {
		return nil, err
	}
	return sess, w.save(ctx, sess)
}

func (w *Wizard) SelectSlot(ctx context.Context, id uuid.UUID, date, hm string) (*booking.Session, error) {
	sess, err := w.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.ServiceID == nil {
		return nil, httperr.ErrBusiness("invalid_step")
	}

	day, err := time.ParseInLocation(domain.DateLayout, date, w.clock.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	stored, err := domain.StoredTime(hm)
	if err != nil {
		return nil, err
	}
	slot := domain.SlotTime(stored)

	avail, err := w.availability.Execute(ctx, appointmentuc.AvailabilityInput{
		ServiceID: *sess.ServiceID,
		Date:      day,
	})
	if err != nil {
		return nil, err
	}
	if !avail.DateAvailable {
		return nil, httperr.ErrBusiness("date_unavailable")
	}
	if !availability.Contains(avail.Slots, slot) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	if err := sess.SelectSlot(avail.Date, slot, w.clock.Now()); err != nil {
		return nil, err
	}
	return sess, w.save(ctx, sess)
}

// Submit grava o agendamento; a sessão vira terminal mesmo quando o
// honeypot descarta o envio.
func (w *Wizard) Submit(
	ctx context.Context,
	id uuid.UUID,
	in SubmitInput,
) (*booking.Session, *appointmentuc.CreatePublicAppointmentResult, error) {

	sess, err := w.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if err := sess.CanSubmit(); err != nil {
		return nil, nil, err
	}

	day, err := time.ParseInLocation(domain.DateLayout, sess.Date, w.clock.Location())
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date")
	}

	res, err := w.create.Execute(ctx, appointmentuc.CreatePublicAppointmentInput{
		ServiceID: *sess.ServiceID,
		Date:      day,
		Time:      sess.Time,
		Client:    in.Client,
		Notes:     in.Notes,
		Honeypot:  in.Honeypot,
	})
	if err != nil {
		return nil, nil, err
	}

	var apID *uuid.UUID
	if res.Appointment != nil {
		apID = &res.Appointment.ID
	}
	sess.MarkSubmitted(apID, w.clock.Now())

	return sess, res, w.save(ctx, sess)
}

func (w *Wizard) save(ctx context.Context, sess *booking.Session) error {
	if err := w.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
