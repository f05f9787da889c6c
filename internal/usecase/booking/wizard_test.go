package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/infra/sessionstore"
	"github.com/BruksfildServices01/studio-scheduler/internal/testutil"
	appointmentuc "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/validators"
)

func newWizard(t *testing.T) (*Wizard, *testutil.FakeRepo, uuid.UUID) {
	t.Helper()

	repo := testutil.NewFakeRepo()
	svc := repo.AddService(60)
	repo.AddWindow(time.Tuesday, "09:00", "12:00")

	clock := testutil.FixedClock()
	create := appointmentuc.NewCreatePublicAppointment(repo, clock, &testutil.RecordingAuditor{}, nil)

	w := NewWizard(sessionstore.NewMemoryStore(30*time.Minute), repo, clock, create)
	return w, repo, svc.ID
}

func client() validators.ClientData {
	return validators.ClientData{Name: "Ana Lima", Email: "ana@example.com", Phone: "11987654321"}
}

func TestWizard_FullFlow(t *testing.T) {
	ctx := context.Background()
	w, repo, serviceID := newWizard(t)

	sess, err := w.Start(ctx)
	require.NoError(t, err)

	sess, err = w.SelectService(ctx, sess.ID, serviceID)
	require.NoError(t, err)
	assert.Equal(t, booking.StepSelectingDateTime, sess.Step)

	sess, err = w.SelectSlot(ctx, sess.ID, "2030-03-05", "10:30")
	require.NoError(t, err)
	assert.Equal(t, booking.StepEnteringDetails, sess.Step)

	sess, res, err := w.Submit(ctx, sess.ID, SubmitInput{Client: client()})
	require.NoError(t, err)
	assert.Equal(t, booking.StepSubmitted, sess.Step)
	require.NotNil(t, res.Appointment)
	assert.Equal(t, res.Appointment.ID, *sess.AppointmentID)
	assert.Len(t, repo.Appointments, 1)

	// terminal: não aceita novo envio
	_, _, err = w.Submit(ctx, sess.ID, SubmitInput{Client: client()})
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}

func TestWizard_RejectsSlotOutsideResolver(t *testing.T) {
	ctx := context.Background()
	w, _, serviceID := newWizard(t)

	sess, err := w.Start(ctx)
	require.NoError(t, err)
	_, err = w.SelectService(ctx, sess.ID, serviceID)
	require.NoError(t, err)

	_, err = w.SelectSlot(ctx, sess.ID, "2030-03-05", "11:30")
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	_, err = w.SelectSlot(ctx, sess.ID, "2030-03-06", "09:00")
	assert.True(t, httperr.IsBusiness(err, "date_unavailable"))

	_, err = w.SelectSlot(ctx, sess.ID, "05/03/2030", "09:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	got, err := w.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StepSelectingDateTime, got.Step)
}

func TestWizard_SlotBeforeService(t *testing.T) {
	ctx := context.Background()
	w, _, _ := newWizard(t)

	sess, err := w.Start(ctx)
	require.NoError(t, err)

	_, err = w.SelectSlot(ctx, sess.ID, "2030-03-05", "09:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
}

func TestWizard_UnknownServiceAndSession(t *testing.T) {
	ctx := context.Background()
	w, _, _ := newWizard(t)

	_, err := w.Get(ctx, uuid.New())
	assert.True(t, httperr.IsBusiness(err, "session_not_found"))

	sess, err := w.Start(ctx)
	require.NoError(t, err)
	_, err = w.SelectService(ctx, sess.ID, uuid.New())
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestWizard_InvalidClientKeepsSessionOpen(t *testing.T) {
	ctx := context.Background()
	w, repo, serviceID := newWizard(t)

	sess, _ := w.Start(ctx)
	_, err := w.SelectService(ctx, sess.ID, serviceID)
	require.NoError(t, err)
	_, err = w.SelectSlot(ctx, sess.ID, "2030-03-05", "09:00")
	require.NoError(t, err)

	_, _, err = w.Submit(ctx, sess.ID, SubmitInput{Client: validators.ClientData{Name: "A"}})
	_, ok := httperr.AsValidation(err)
	assert.True(t, ok)

	got, err := w.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StepEnteringDetails, got.Step)
	assert.Empty(t, repo.Appointments)
}

func TestWizard_HoneypotClosesSessionWithoutBooking(t *testing.T) {
	ctx := context.Background()
	w, repo, serviceID := newWizard(t)

	sess, _ := w.Start(ctx)
	_, err := w.SelectService(ctx, sess.ID, serviceID)
	require.NoError(t, err)
	_, err = w.SelectSlot(ctx, sess.ID, "2030-03-05", "09:00")
	require.NoError(t, err)

	sess, res, err := w.Submit(ctx, sess.ID, SubmitInput{Client: client(), Honeypot: "x"})
	require.NoError(t, err)

	assert.True(t, res.Discarded)
	assert.Nil(t, sess.AppointmentID)
	assert.Equal(t, booking.StepSubmitted, sess.Step)
	assert.Empty(t, repo.Appointments)
}
