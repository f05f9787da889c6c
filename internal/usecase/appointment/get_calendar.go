package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

type GetCalendar struct {
	repo  domain.Repository
	clock Clock
}

func NewGetCalendar(repo domain.Repository, clock Clock) *GetCalendar {
	return &GetCalendar{repo: repo, clock: clock}
}

func (uc *GetCalendar) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]availability.CalendarDay, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	rows, err := uc.repo.ListActiveAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}

	return availability.Month(year, time.Month(month), toWindows(rows), uc.clock.Now()), nil
}
