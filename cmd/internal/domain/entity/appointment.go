package entity

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// ParseAppointmentStatus reports whether s names one of the three lifecycle states.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

type Appointment struct {
	ID              int               `gorm:"primaryKey"`
	AppointmentDate string            `gorm:"size:16;not null"` // "YYYY-MM-DD HH:MM", stored as received
	PatientID       int               `gorm:"index"`            // References: patients(id)
	DoctorID        int               `gorm:"index"`            // References: doctors(id)
	Status          AppointmentStatus `gorm:"size:16;not null;default:Scheduled"`
}

// History is a doctor-authored visit note. Rows are never updated.
type History struct {
	ID            int `gorm:"primaryKey"`
	AppointmentID int `gorm:"index"` // References: appointments(id)
	PatientID     int `gorm:"index"` // References: patients(id)
	Tests         *string
	MedicineName  *string
	Instructions  *string
}

// AppointmentCounts is the read-side projection behind the dashboards.
type AppointmentCounts struct {
	Total     int64
	Completed int64
	Scheduled int64
	Cancelled int64
}
