package entity

// Read-only join projections used by the listing endpoints.

type PatientAppointment struct {
	AppointmentID   int
	AppointmentDate string
	Status          AppointmentStatus
	DoctorID        int
	DoctorName      string
	Specialization  string
}

type DoctorAppointment struct {
	AppointmentID   int
	AppointmentDate string
	Status          AppointmentStatus
	PatientID       int
	PatientName     string
	Age             int
	Gender          Gender
	Contact         string
}

type AppointmentOverview struct {
	AppointmentID   int
	AppointmentDate string
	Status          AppointmentStatus
	PatientID       int
	PatientName     string
	PatientContact  string
	DoctorName      string
	Specialization  string
}

type HistoryRecord struct {
	HistoryID       int
	AppointmentID   int
	Tests           *string
	MedicineName    *string
	Instructions    *string
	AppointmentDate string
	Status          AppointmentStatus
	DoctorID        int
	DoctorName      string
	Specialization  string
}

type DoctorDetails struct {
	DoctorID       int
	Name           string
	Specialization string
	DepartmentName *string
}
