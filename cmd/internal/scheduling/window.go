package scheduling

import (
	"fmt"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
)

type Window struct {
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

// Contains is inclusive on both ends. A window with Start after End
// contains nothing.
func (w Window) Contains(clock string) bool {
	return w.Start <= clock && clock <= w.End
}

func WindowsOf(rows []*entity.DoctorAvailability) []Window {
	windows := make([]Window, len(rows))
	for i, row := range rows {
		windows[i] = Window{Start: row.StartTime, End: row.EndTime}
	}
	return windows
}

// NoAvailabilityError means the doctor has no window at all on Day.
type NoAvailabilityError struct {
	Day string
}

func (e *NoAvailabilityError) Error() string {
	return fmt.Sprintf("Doctor is not available on %s", e.Day)
}

// OutsideWindowError means the doctor works on Day but not at the requested time.
type OutsideWindowError struct {
	Day     string
	Windows []Window
}

func (e *OutsideWindowError) Error() string {
	return fmt.Sprintf("Doctor available on %s only during these times", e.Day)
}

// Fits checks slot against the windows the doctor offers on slot.Day. It
// returns nil when any single window contains the slot's clock time.
func Fits(slot Slot, windows []Window) error {
	if len(windows) == 0 {
		return &NoAvailabilityError{Day: slot.Day}
	}

	for _, w := range windows {
		if w.Contains(slot.Clock) {
			return nil
		}
	}
	return &OutsideWindowError{Day: slot.Day, Windows: windows}
}
