// Package availability computes which dates and start times can be booked,
// given the studio's weekly windows and the appointments already taken.
//
// Everything here is a pure function of its inputs: no I/O and no errors.
// Missing or malformed data degrades to "nothing available".
package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/studio-scheduler/internal/domain/appointment"
)

// StepMinutes is the spacing between candidate start times.
const StepMinutes = 30

// Window is a recurring weekly interval in which bookings are taken.
type Window struct {
	DayOfWeek int // 0 = Sunday
	StartTime string
	EndTime   string
	Active    bool
}

// Booking is an appointment already on the agenda.
type Booking struct {
	Date   string // YYYY-MM-DD
	Time   string // HH:MM:SS
	Status appointment.Status
}

// Service carries the duration used to check whether a slot fits the window.
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
}

// Slots returns the bookable "HH:MM" start times for date, ascending.
//
// Only the first active window for the weekday is used, and only the hour
// part of its start and end: a 09:15-12:00 window is walked from 09:00.
// A candidate is rejected when it would run past the end hour or when an
// occupying booking starts at exactly the same time. Overlaps with bookings
// that start at a different time are not detected.
func Slots(date time.Time, windows []Window, bookings []Booking, service *Service) []string {
	slots := []string{}
	if service == nil {
		return slots
	}

	w, ok := windowFor(date.Weekday(), windows)
	if !ok {
		return slots
	}

	startHour, ok1 := leadingHour(w.StartTime)
	endHour, ok2 := leadingHour(w.EndTime)
	if !ok1 || !ok2 {
		return slots
	}

	booked := bookedTimes(date.Format(appointment.DateLayout), bookings)

	for hour := startHour; hour < endHour; hour++ {
		for minute := 0; minute < 60; minute += StepMinutes {
			endMinutes := hour*60 + minute + service.DurationMinutes
			if endMinutes > endHour*60 {
				continue
			}

			slot := fmt.Sprintf("%02d:%02d", hour, minute)
			if _, taken := booked[slot+":00"]; taken {
				continue
			}
			slots = append(slots, slot)
		}
	}

	return slots
}

// IsDateAvailable reports whether date can be picked on the calendar: not
// before today (midnight, in now's location) and with an active window on
// its weekday.
func IsDateAvailable(date time.Time, windows []Window, now time.Time) bool {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	d := date.In(loc)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	if day.Before(today) {
		return false
	}

	_, ok := windowFor(day.Weekday(), windows)
	return ok
}

// Contains reports whether slot is one of the start times Slots would offer.
func Contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

func windowFor(weekday time.Weekday, windows []Window) (Window, bool) {
	for _, w := range windows {
		if w.Active && w.DayOfWeek == int(weekday) {
			return w, true
		}
	}
	return Window{}, false
}

func leadingHour(hm string) (int, bool) {
	head, _, _ := strings.Cut(strings.TrimSpace(hm), ":")
	h, err := strconv.Atoi(head)
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	return h, true
}

func bookedTimes(date string, bookings []Booking) map[string]struct{} {
	out := make(map[string]struct{})
	for _, b := range bookings {
		if b.Date != date || !b.Status.Occupies() {
			continue
		}
		out[b.Time] = struct{}{}
	}
	return out
}
