package service

import (
	"context"
	"fmt"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

type AppointmentSummaryResponse struct {
	TotalAppointments     int64 `json:"total_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
	UpcomingAppointments  int64 `json:"upcoming_appointments"`
	CancelledAppointments int64 `json:"cancelled_appointments"`
}

type AdminSummaryResponse struct {
	TotalDoctors     int64 `json:"total_doctors"`
	TotalPatients    int64 `json:"total_patients"`
	TotalDepartments int64 `json:"total_departments"`
	AppointmentSummaryResponse
}

type DefaultDashboardService struct {
	AppointmentRepo AppointmentRepository
	DoctorRepo      DoctorRepository
	PatientRepo     PatientRepository
	DepartmentRepo  DepartmentRepository
	Tx              Transactor
}

func NewDashboardService(apptRepo AppointmentRepository, doctorRepo DoctorRepository, patientRepo PatientRepository,
	departmentRepo DepartmentRepository, tx Transactor) *DefaultDashboardService {
	return &DefaultDashboardService{
		AppointmentRepo: apptRepo,
		DoctorRepo:      doctorRepo,
		PatientRepo:     patientRepo,
		DepartmentRepo:  departmentRepo,
		Tx:              tx,
	}
}

func (d *DefaultDashboardService) GetDoctorSummary(ctx context.Context, doctorID int) (*AppointmentSummaryResponse, apierror.ErrorResponse) {
	counts, err := d.AppointmentRepo.CountByDoctor(ctx, doctorID)
	if err != nil {
		log.Errorf("failed to count appointments of doctor %d: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}
	return toSummary(counts), nil
}

func (d *DefaultDashboardService) GetPatientSummary(ctx context.Context, patientID int) (*AppointmentSummaryResponse, apierror.ErrorResponse) {
	counts, err := d.AppointmentRepo.CountByPatient(ctx, patientID)
	if err != nil {
		log.Errorf("failed to count appointments of patient %d: %v", patientID, err)
		return nil, apierror.InternalServerError
	}
	return toSummary(counts), nil
}

// GetAdminSummary reads every counter inside one transaction so they
// describe the same state.
func (d *DefaultDashboardService) GetAdminSummary(ctx context.Context) (*AdminSummaryResponse, apierror.ErrorResponse) {
	resp := &AdminSummaryResponse{}

	err := d.Tx.InTransaction(ctx, func(ctx context.Context) error {
		var err error
		if resp.TotalDoctors, err = d.DoctorRepo.Count(ctx); err != nil {
			return fmt.Errorf("count doctors: %w", err)
		}
		if resp.TotalPatients, err = d.PatientRepo.Count(ctx); err != nil {
			return fmt.Errorf("count patients: %w", err)
		}
		if resp.TotalDepartments, err = d.DepartmentRepo.Count(ctx); err != nil {
			return fmt.Errorf("count departments: %w", err)
		}

		counts, err := d.AppointmentRepo.CountAll(ctx)
		if err != nil {
			return fmt.Errorf("count appointments: %w", err)
		}
		resp.AppointmentSummaryResponse = *toSummary(counts)
		return nil
	})
	if apierr := resolve(err, "failed to build admin summary"); apierr != nil {
		return nil, apierr
	}
	return resp, nil
}

func toSummary(counts *entity.AppointmentCounts) *AppointmentSummaryResponse {
	return &AppointmentSummaryResponse{
		TotalAppointments:     counts.Total,
		CompletedAppointments: counts.Completed,
		UpcomingAppointments:  counts.Scheduled,
		CancelledAppointments: counts.Cancelled,
	}
}
