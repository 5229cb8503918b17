package entity

import (
	"slices"
	"time"

	"github.com/pkg/errors"
)

// SchedulingWindowDays is the length of the bookable window.
const SchedulingWindowDays = 30

// BookingStatusRequested is the only status a booking request can have.
const BookingStatusRequested = "requested"

// Booking validation errors.
var (
	ErrNoDaysSelected = errors.New("no days selected")
	ErrDayOutOfRange  = errors.New("day is outside the scheduling window")
	ErrDayUnavailable = errors.New("day is already booked")
	ErrDuplicateDay   = errors.New("day selected more than once")
)

// MockBookedDays returns the days that are always shown as booked.
func MockBookedDays() []int {
	return []int{5, 6, 12, 13, 20, 21, 22}
}

// DayAvailability is one day of the scheduling window.
type DayAvailability struct {
	Day    int  `json:"day"`
	Booked bool `json:"booked"`
}

// Availability is the usage calendar of an asset.
type Availability struct {
	AssetID string            `json:"assetId"`
	Days    []DayAvailability `json:"days"`
}

// NewAvailability builds a window of SchedulingWindowDays with the given days booked.
func NewAvailability(assetID string, booked []int) *Availability {
	days := make([]DayAvailability, SchedulingWindowDays)
	for i := range days {
		day := i + 1
		days[i] = DayAvailability{Day: day, Booked: slices.Contains(booked, day)}
	}

	return &Availability{AssetID: assetID, Days: days}
}

// IsBooked reports whether day is taken. Days outside the window are reported as booked.
func (a *Availability) IsBooked(day int) bool {
	if day < 1 || day > len(a.Days) {
		return true
	}

	return a.Days[day-1].Booked
}

// CheckDays verifies a selection can be requested.
func (a *Availability) CheckDays(days []int) error {
	if len(days) == 0 {
		return ErrNoDaysSelected
	}

	seen := make(map[int]struct{}, len(days))
	for _, day := range days {
		if day < 1 || day > len(a.Days) {
			return errors.Wrapf(ErrDayOutOfRange, "day %d", day)
		}
		if _, dup := seen[day]; dup {
			return errors.Wrapf(ErrDuplicateDay, "day %d", day)
		}
		seen[day] = struct{}{}
		if a.Days[day-1].Booked {
			return errors.Wrapf(ErrDayUnavailable, "day %d", day)
		}
	}

	return nil
}

// BookingRequest is a usage request awaiting concierge confirmation.
type BookingRequest struct {
	ID          string    `json:"id"`
	AssetID     string    `json:"assetId"`
	UserID      string    `json:"userId"`
	Days        []int     `json:"days"` // Sorted ascending.
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
}
