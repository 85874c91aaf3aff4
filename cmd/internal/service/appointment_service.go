package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/scheduling"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	Save(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus) error
	ListByPatient(ctx context.Context, patientID int) ([]*entity.PatientAppointment, error)
	ListByDoctor(ctx context.Context, doctorID int) ([]*entity.DoctorAppointment, error)
	ListAll(ctx context.Context) ([]*entity.AppointmentOverview, error)
	CountByDoctor(ctx context.Context, doctorID int) (*entity.AppointmentCounts, error)
	CountByPatient(ctx context.Context, patientID int) (*entity.AppointmentCounts, error)
	CountAll(ctx context.Context) (*entity.AppointmentCounts, error)
}

type HistoryRepository interface {
	Save(ctx context.Context, history *entity.History) error
	ListByPatient(ctx context.Context, patientID int) ([]*entity.HistoryRecord, error)
}

type BookAppointmentRequest struct {
	PatientID int    `json:"patient_id" validate:"required"`
	DoctorID  int    `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type HistoryRequest struct {
	PatientID    int     `json:"patient_id" validate:"required"`
	Tests        *string `json:"tests"`
	Medicine     *string `json:"medicine"`
	Instructions *string `json:"instructions"`
}

type BookingResponse struct {
	Message       string `json:"message"`
	AppointmentID int    `json:"appointment_id"`
}

type HistoryCreatedResponse struct {
	Message   string `json:"message"`
	HistoryID int    `json:"history_id"`
}

type PatientAppointmentResponse struct {
	AppointmentID   int    `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	DoctorID        int    `json:"doctor_id"`
	DoctorName      string `json:"doctor_name"`
	Specialization  string `json:"specialization"`
}

type DoctorAppointmentResponse struct {
	AppointmentID   int    `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	PatientID       int    `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Contact         string `json:"contact"`
}

type AppointmentOverviewResponse struct {
	AppointmentID   int    `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date"`
	Status          string `json:"status"`
	PatientID       int    `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	PatientContact  string `json:"patient_contact"`
	DoctorName      string `json:"doctor_name"`
	Specialization  string `json:"specialization"`
}

type DefaultAppointmentService struct {
	AppointmentRepo  AppointmentRepository
	AvailabilityRepo AvailabilityRepository
	PatientRepo      PatientRepository
	HistoryRepo      HistoryRepository
	Tx               Transactor
	Validate         *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, availRepo AvailabilityRepository, patientRepo PatientRepository,
	historyRepo HistoryRepository, tx Transactor, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		AppointmentRepo:  apptRepo,
		AvailabilityRepo: availRepo,
		PatientRepo:      patientRepo,
		HistoryRepo:      historyRepo,
		Tx:               tx,
		Validate:         validate,
	}
}

// BookAppointment creates a Scheduled appointment when the patient is not
// blacklisted and the requested time lies inside one of the doctor's windows
// for that weekday. Overlapping bookings for the same doctor are not checked.
func (a *DefaultAppointmentService) BookAppointment(ctx context.Context, req *BookAppointmentRequest) (*BookingResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Missing fields")
	}

	slot, err := scheduling.ParseSlot(req.Date)
	if err != nil {
		return nil, apierror.InvalidDateFormatError
	}

	appointment := &entity.Appointment{
		AppointmentDate: slot.Raw,
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		Status:          entity.StatusScheduled,
	}

	err = a.Tx.InTransaction(ctx, func(ctx context.Context) error {
		patient, err := a.PatientRepo.FindByID(ctx, req.PatientID)
		if err != nil {
			return fmt.Errorf("find patient %d: %w", req.PatientID, err)
		}
		if patient == nil {
			return apierror.PatientNotFoundError
		}
		if patient.IsBlacklisted {
			return apierror.BookingBlacklistedError
		}

		rows, err := a.AvailabilityRepo.FindByDoctorAndDay(ctx, req.DoctorID, slot.Day)
		if err != nil {
			return fmt.Errorf("find availability of doctor %d on %s: %w", req.DoctorID, slot.Day, err)
		}
		if err := scheduling.Fits(slot, scheduling.WindowsOf(rows)); err != nil {
			return toBookingError(err)
		}

		return a.AppointmentRepo.Save(ctx, appointment)
	})
	if apierr := resolve(err, "failed to book appointment"); apierr != nil {
		return nil, apierr
	}

	return &BookingResponse{Message: "Appointment booked successfully", AppointmentID: appointment.ID}, nil
}

// UpdateStatus overwrites the status of an appointment. Any state may follow
// any other, and an unknown id is not reported.
func (a *DefaultAppointmentService) UpdateStatus(ctx context.Context, id int, req *UpdateStatusRequest) (*MessageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if req.Status == "" {
		return nil, apierror.StatusRequiredError
	}

	status, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return nil, apierror.InvalidAppointmentStatus
	}

	if err := a.AppointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		log.Errorf("failed to set appointment %d to %s: %v", id, status, err)
		return nil, apierror.InternalServerError
	}
	return &MessageResponse{Message: fmt.Sprintf("Appointment marked as %s", status)}, nil
}

// CancelAppointment is the patient-side shortcut for UpdateStatus(Cancelled).
func (a *DefaultAppointmentService) CancelAppointment(ctx context.Context, id int) (*MessageResponse, apierror.ErrorResponse) {
	if err := a.AppointmentRepo.UpdateStatus(ctx, id, entity.StatusCancelled); err != nil {
		log.Errorf("failed to cancel appointment %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return &MessageResponse{Message: "Appointment cancelled successfully"}, nil
}

// RecordHistory appends a visit note. It does not check that the appointment
// belongs to the patient.
func (a *DefaultAppointmentService) RecordHistory(ctx context.Context, appointmentID int, req *HistoryRequest) (*HistoryCreatedResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Patient ID required")
	}

	history := &entity.History{
		AppointmentID: appointmentID,
		PatientID:     req.PatientID,
		Tests:         req.Tests,
		MedicineName:  req.Medicine,
		Instructions:  req.Instructions,
	}

	if err := a.HistoryRepo.Save(ctx, history); err != nil {
		log.Errorf("failed to record history for appointment %d: %v", appointmentID, err)
		return nil, apierror.InternalServerError
	}
	return &HistoryCreatedResponse{Message: "Prescription added successfully", HistoryID: history.ID}, nil
}

func (a *DefaultAppointmentService) GetPatientAppointments(ctx context.Context, patientID int) ([]*PatientAppointmentResponse, apierror.ErrorResponse) {
	rows, err := a.AppointmentRepo.ListByPatient(ctx, patientID)
	if err != nil {
		log.Errorf("failed to list appointments of patient %d: %v", patientID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*PatientAppointmentResponse, len(rows))
	for i, row := range rows {
		resp[i] = &PatientAppointmentResponse{
			AppointmentID:   row.AppointmentID,
			AppointmentDate: row.AppointmentDate,
			Status:          string(row.Status),
			DoctorID:        row.DoctorID,
			DoctorName:      row.DoctorName,
			Specialization:  row.Specialization,
		}
	}
	return resp, nil
}

func (a *DefaultAppointmentService) GetDoctorAppointments(ctx context.Context, doctorID int) ([]*DoctorAppointmentResponse, apierror.ErrorResponse) {
	rows, err := a.AppointmentRepo.ListByDoctor(ctx, doctorID)
	if err != nil {
		log.Errorf("failed to list appointments of doctor %d: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DoctorAppointmentResponse, len(rows))
	for i, row := range rows {
		resp[i] = &DoctorAppointmentResponse{
			AppointmentID:   row.AppointmentID,
			AppointmentDate: row.AppointmentDate,
			Status:          string(row.Status),
			PatientID:       row.PatientID,
			PatientName:     row.PatientName,
			Age:             row.Age,
			Gender:          string(row.Gender),
			Contact:         row.Contact,
		}
	}
	return resp, nil
}

func (a *DefaultAppointmentService) GetAllAppointments(ctx context.Context) ([]*AppointmentOverviewResponse, apierror.ErrorResponse) {
	rows, err := a.AppointmentRepo.ListAll(ctx)
	if err != nil {
		log.Errorf("failed to list appointments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*AppointmentOverviewResponse, len(rows))
	for i, row := range rows {
		resp[i] = &AppointmentOverviewResponse{
			AppointmentID:   row.AppointmentID,
			AppointmentDate: row.AppointmentDate,
			Status:          string(row.Status),
			PatientID:       row.PatientID,
			PatientName:     row.PatientName,
			PatientContact:  row.PatientContact,
			DoctorName:      row.DoctorName,
			Specialization:  row.Specialization,
		}
	}
	return resp, nil
}

func toBookingError(err error) apierror.ErrorResponse {
	var outside *scheduling.OutsideWindowError
	if errors.As(err, &outside) {
		return apierror.NewSlots(http.StatusBadRequest, outside.Error(), outside.Windows)
	}
	return apierror.NewSimple(http.StatusBadRequest, err.Error())
}
