package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

var now = time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC)

func TestSession_HappyPath(t *testing.T) {
	s := NewSession(now)
	assert.Equal(t, StepSelectingService, s.Step)

	require.NoError(t, s.SelectService(uuid.New(), now))
	assert.Equal(t, StepSelectingDateTime, s.Step)

	require.NoError(t, s.SelectSlot("2030-03-05", "09:30", now))
	assert.Equal(t, StepEnteringDetails, s.Step)
	require.NoError(t, s.CanSubmit())

	id := uuid.New()
	s.MarkSubmitted(&id, now)
	assert.True(t, s.Done())
	assert.Equal(t, &id, s.AppointmentID)
}

func TestSession_SlotBeforeService(t *testing.T) {
	s := NewSession(now)

	err := s.SelectSlot("2030-03-05", "09:30", now)
	assert.True(t, httperr.IsBusiness(err, "invalid_step"))
	assert.True(t, httperr.IsBusiness(s.CanSubmit(), "invalid_step"))
}

func TestSession_ChangingServiceResetsSlot(t *testing.T) {
	s := NewSession(now)
	require.NoError(t, s.SelectService(uuid.New(), now))
	require.NoError(t, s.SelectSlot("2030-03-05", "09:30", now))

	other := uuid.New()
	require.NoError(t, s.SelectService(other, now))

	assert.Equal(t, StepSelectingDateTime, s.Step)
	assert.Empty(t, s.Date)
	assert.Empty(t, s.Time)
	assert.Equal(t, other, *s.ServiceID)
}

func TestSession_ChangingSlotKeepsDetailsStep(t *testing.T) {
	s := NewSession(now)
	require.NoError(t, s.SelectService(uuid.New(), now))
	require.NoError(t, s.SelectSlot("2030-03-05", "09:30", now))
	require.NoError(t, s.SelectSlot("2030-03-05", "10:00", now))

	assert.Equal(t, "10:00", s.Time)
	assert.Equal(t, StepEnteringDetails, s.Step)
}

func TestSession_SubmittedIsTerminal(t *testing.T) {
	s := NewSession(now)
	require.NoError(t, s.SelectService(uuid.New(), now))
	require.NoError(t, s.SelectSlot("2030-03-05", "09:30", now))
	s.MarkSubmitted(nil, now)

	assert.True(t, httperr.IsBusiness(s.SelectService(uuid.New(), now), "session_submitted"))
	assert.True(t, httperr.IsBusiness(s.SelectSlot("2030-03-06", "09:30", now), "invalid_step"))
	assert.True(t, httperr.IsBusiness(s.CanSubmit(), "invalid_step"))
}
