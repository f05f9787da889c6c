package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// UpdateAppointmentInput espelha o formulário de edição do painel:
// campos nil ficam como estão.
type UpdateAppointmentInput struct {
	Date   *time.Time
	Time   *string
	Status *string
	Notes  *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	clock Clock
	audit Auditor
}

func NewUpdateAppointment(
	repo domain.Repository,
	clock Clock,
	audit Auditor,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	userID uuid.UUID,
	appointmentID uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}

	if in.Date != nil {
		ap.AppointmentDate = *in.Date
		changes["date"] = in.Date.Format(domain.DateLayout)
	}

	if in.Time != nil {
		stored, err := domain.StoredTime(*in.Time)
		if err != nil {
			return nil, err
		}
		ap.AppointmentTime = stored
		changes["time"] = stored
	}

	if in.Status != nil {
		next, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if err := domain.ChangeStatus(ap, next, uc.clock.Now()); err != nil {
			return nil, err
		}
		changes["status"] = string(next)
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: changes,
	})

	return ap, nil
}
