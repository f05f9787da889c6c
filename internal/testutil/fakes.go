// Package testutil holds in-memory fakes shared by usecase and handler tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
	"github.com/BruksfildServices01/studio-scheduler/internal/timezone"
)

var BRT = time.FixedZone("BRT", -3*60*60)

// FixedClock para na segunda-feira 04/03/2030 às 10:00 (BRT).
func FixedClock() *timezone.Clock {
	return timezone.FixedClock(time.Date(2030, 3, 4, 10, 0, 0, 0, BRT))
}

func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, BRT)
}

type FakeRepo struct {
	mu           sync.Mutex
	Services     map[uuid.UUID]models.Service
	Windows      []models.Availability
	Appointments map[uuid.UUID]*models.Appointment
	Clients      []models.Client
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{
		Services:     map[uuid.UUID]models.Service{},
		Appointments: map[uuid.UUID]*models.Appointment{},
	}
}

func (r *FakeRepo) AddService(minutes int) models.Service {
	svc := models.Service{ID: uuid.New(), Name: "Design de sobrancelhas", DurationMinutes: minutes, Price: 80, Active: true}
	r.Services[svc.ID] = svc
	return svc
}

func (r *FakeRepo) AddWindow(weekday time.Weekday, start, end string) {
	r.Windows = append(r.Windows, models.Availability{
		ID: uuid.New(), DayOfWeek: int(weekday), StartTime: start, EndTime: end, Active: true,
	})
}

func (r *FakeRepo) AddAppointment(date time.Time, hm string, status domain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:              uuid.New(),
		AppointmentDate: date,
		AppointmentTime: hm + ":00",
		Status:          string(status),
	}
	r.Appointments[ap.ID] = ap
	return ap
}

func (r *FakeRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	svc, ok := r.Services[id]
	if !ok || !svc.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &svc, nil
}

func (r *FakeRepo) ListActiveAvailability(context.Context) ([]models.Availability, error) {
	var out []models.Availability
	for _, w := range r.Windows {
		if w.Active {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *FakeRepo) ListOccupyingAppointments(_ context.Context, date time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.Appointments {
		if ap.AppointmentDate.Format(domain.DateLayout) == date.Format(domain.DateLayout) &&
			domain.Status(ap.Status).Occupies() {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// CreateBooking reproduz o índice único parcial do banco.
func (r *FakeRepo) CreateBooking(_ context.Context, c *models.Client, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.Appointments {
		if other.AppointmentDate.Format(domain.DateLayout) == ap.AppointmentDate.Format(domain.DateLayout) &&
			other.AppointmentTime == ap.AppointmentTime &&
			domain.Status(other.Status).Occupies() {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	c.ID = uuid.New()
	r.Clients = append(r.Clients, *c)

	ap.ID = uuid.New()
	ap.ClientID = c.ID
	stored := *ap
	r.Appointments[ap.ID] = &stored
	return nil
}

func (r *FakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.Appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	cp := *ap
	return &cp, nil
}

func (r *FakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *ap
	r.Appointments[ap.ID] = &cp
	return nil
}

func (r *FakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Appointments[id]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(r.Appointments, id)
	return nil
}

func (r *FakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.Appointments {
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*FakeRepo)(nil)

type RecordingAuditor struct {
	mu     sync.Mutex
	Events []audit.Event
}

func (a *RecordingAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Events = append(a.Events, ev)
}

func (a *RecordingAuditor) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]string, 0, len(a.Events))
	for _, ev := range a.Events {
		out = append(out, ev.Action)
	}
	return out
}
