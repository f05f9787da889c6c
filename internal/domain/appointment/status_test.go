package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

func TestStatus_Occupies(t *testing.T) {
	assert.True(t, StatusPending.Occupies())
	assert.True(t, StatusConfirmed.Occupies())
	assert.False(t, StatusCancelled.Occupies())
	assert.False(t, StatusCompleted.Occupies())
	assert.Equal(t, []string{"pending", "confirmed"}, ActiveStatusStrings())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, s)

	_, err = ParseStatus("scheduled")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCancel(t *testing.T) {
	now := time.Date(2030, 3, 5, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestComplete(t *testing.T) {
	now := time.Date(2030, 3, 5, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	err := Complete(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestChangeStatus_ClearsStamps(t *testing.T) {
	now := time.Date(2030, 3, 5, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, ChangeStatus(ap, StatusCancelled, now))
	require.NotNil(t, ap.CancelledAt)

	require.NoError(t, ChangeStatus(ap, StatusConfirmed, now))
	assert.Nil(t, ap.CancelledAt)
	assert.Nil(t, ap.CompletedAt)

	assert.Error(t, ChangeStatus(ap, Status("foo"), now))
}

func TestStoredTime(t *testing.T) {
	got, err := StoredTime("9:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", got)

	got, err = StoredTime("14:00:00")
	require.NoError(t, err)
	assert.Equal(t, "14:00:00", got)

	_, err = StoredTime("25:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	assert.Equal(t, "14:00", SlotTime("14:00:00"))
}
