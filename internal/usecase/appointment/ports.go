package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/audit"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/models"
)

// Auditor recebe eventos de auditoria sem bloquear o fluxo.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Clock é o relógio do estúdio.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type EmailChecker func(ctx context.Context, email string) bool

func toWindows(rows []models.Availability) []availability.Window {
	out := make([]availability.Window, 0, len(rows))
	for _, r := range rows {
		out = append(out, availability.Window{
			DayOfWeek: r.DayOfWeek,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Active:    r.Active,
		})
	}
	return out
}
