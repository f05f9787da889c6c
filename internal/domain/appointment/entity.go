package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

const (
	DateLayout       = "2006-01-02"
	SlotLayout       = "15:04"
	StoredTimeLayout = "15:04:05"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// ChangeStatus aplica uma troca livre de status feita pelo painel admin,
// registrando os carimbos de cancelamento/conclusão.
func ChangeStatus(ap *models.Appointment, next Status, now time.Time) error {
	if !next.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	ap.Status = string(next)
	switch next {
	case StatusCancelled:
		ap.CancelledAt = &now
		ap.CompletedAt = nil
	case StatusCompleted:
		ap.CompletedAt = &now
		ap.CancelledAt = nil
	default:
		ap.CancelledAt = nil
		ap.CompletedAt = nil
	}
	return nil
}

// StoredTime converte "HH:MM" (ou "HH:MM:SS") para o formato gravado "HH:MM:SS".
func StoredTime(hm string) (string, error) {
	hm = strings.TrimSpace(hm)

	if t, err := time.Parse(SlotLayout, hm); err == nil {
		return t.Format(StoredTimeLayout), nil
	}
	if t, err := time.Parse(StoredTimeLayout, hm); err == nil {
		return t.Format(StoredTimeLayout), nil
	}
	return "", httperr.ErrBusiness("invalid_time")
}

// SlotTime devolve "HH:MM" a partir do horário gravado.
func SlotTime(stored string) string {
	if len(stored) >= 5 {
		return stored[:5]
	}
	return stored
}
