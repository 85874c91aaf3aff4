package entity

// DoctorAvailability is one weekly window. StartTime and EndTime are
// zero-padded "HH:MM" strings, so lexical order equals clock order.
type DoctorAvailability struct {
	ID        int    `gorm:"primaryKey"`
	DoctorID  int    `gorm:"index"` // References: doctors(id), not enforced
	Day       string `gorm:"size:9;not null"`
	StartTime string `gorm:"size:5;not null"`
	EndTime   string `gorm:"size:5;not null"`
}

// AvailabilityUpdate carries the subset of fields a caller wants changed.
type AvailabilityUpdate struct {
	Day       *string
	StartTime *string
	EndTime   *string
}

func (u AvailabilityUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Day != nil {
		cols["day"] = *u.Day
	}
	if u.StartTime != nil {
		cols["start_time"] = *u.StartTime
	}
	if u.EndTime != nil {
		cols["end_time"] = *u.EndTime
	}
	return cols
}
