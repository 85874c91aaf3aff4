package repository

import (
	"context"
	"errors"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := conn(ctx, a.db).First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appt, err
}

func (a *DefaultAppointmentRepository) Save(ctx context.Context, appointment *entity.Appointment) error {
	return conn(ctx, a.db).Save(appointment).Error
}

// UpdateStatus overwrites the status. Unknown ids are not an error.
func (a *DefaultAppointmentRepository) UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus) error {
	return conn(ctx, a.db).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (a *DefaultAppointmentRepository) ListByPatient(ctx context.Context, patientID int) ([]*entity.PatientAppointment, error) {
	var rows []*entity.PatientAppointment
	err := conn(ctx, a.db).Table("appointments AS a").
		Select("a.id AS appointment_id, a.appointment_date, a.status, d.id AS doctor_id, d.name AS doctor_name, d.specialization").
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Where("a.patient_id = ?", patientID).
		Order("a.appointment_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (a *DefaultAppointmentRepository) ListByDoctor(ctx context.Context, doctorID int) ([]*entity.DoctorAppointment, error) {
	var rows []*entity.DoctorAppointment
	err := conn(ctx, a.db).Table("appointments AS a").
		Select("a.id AS appointment_id, a.appointment_date, a.status, p.id AS patient_id, p.name AS patient_name, p.age, p.gender, p.contact").
		Joins("JOIN patients p ON a.patient_id = p.id").
		Where("a.doctor_id = ?", doctorID).
		Order("a.appointment_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (a *DefaultAppointmentRepository) ListAll(ctx context.Context) ([]*entity.AppointmentOverview, error) {
	var rows []*entity.AppointmentOverview
	err := conn(ctx, a.db).Table("appointments AS a").
		Select("a.id AS appointment_id, a.appointment_date, a.status, a.patient_id, " +
			"p.name AS patient_name, p.contact AS patient_contact, d.name AS doctor_name, d.specialization").
		Joins("JOIN patients p ON a.patient_id = p.id").
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Order("a.appointment_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (a *DefaultAppointmentRepository) CountByDoctor(ctx context.Context, doctorID int) (*entity.AppointmentCounts, error) {
	return a.count(ctx, "doctor_id = ?", doctorID)
}

func (a *DefaultAppointmentRepository) CountByPatient(ctx context.Context, patientID int) (*entity.AppointmentCounts, error) {
	return a.count(ctx, "patient_id = ?", patientID)
}

func (a *DefaultAppointmentRepository) CountAll(ctx context.Context) (*entity.AppointmentCounts, error) {
	return a.count(ctx, "1 = 1")
}

// count derives every figure from one statement, so they all describe the
// same snapshot of the table.
func (a *DefaultAppointmentRepository) count(ctx context.Context, where string, args ...any) (*entity.AppointmentCounts, error) {
	var counts entity.AppointmentCounts
	err := conn(ctx, a.db).Model(&entity.Appointment{}).
		Select("COUNT(*) AS total, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS scheduled, "+
			"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS cancelled",
			entity.StatusCompleted, entity.StatusScheduled, entity.StatusCancelled).
		Where(where, args...).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
