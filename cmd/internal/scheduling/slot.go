// Package scheduling holds the rules that decide whether a requested
// appointment time fits a doctor's weekly availability.
package scheduling

import (
	"errors"
	"time"
)

const (
	SlotLayout  = "2006-01-02 15:04"
	ClockLayout = "15:04"
)

var ErrMalformedSlot = errors.New("date must be formatted as YYYY-MM-DD HH:MM")

// Slot is a requested appointment time reduced to what booking needs.
type Slot struct {
	Raw   string
	Day   string // English weekday name
	Clock string // zero-padded HH:MM
}

// ParseSlot accepts exactly "YYYY-MM-DD HH:MM".
func ParseSlot(raw string) (Slot, error) {
	if len(raw) != len(SlotLayout) {
		return Slot{}, ErrMalformedSlot
	}

	t, err := time.Parse(SlotLayout, raw)
	if err != nil {
		return Slot{}, ErrMalformedSlot
	}

	return Slot{
		Raw:   raw,
		Day:   t.Weekday().String(),
		Clock: t.Format(ClockLayout),
	}, nil
}

// IsClock reports whether s is a valid zero-padded 24h "HH:MM".
func IsClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
