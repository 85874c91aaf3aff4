package service

import (
	"context"

	"github.com/Gyan0205/hospital-management/cmd/internal/report"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

type HistoryResponse struct {
	HistoryID       int     `json:"history_id"`
	AppointmentID   int     `json:"appointment_id"`
	AppointmentDate string  `json:"appointment_date"`
	Status          string  `json:"status"`
	DoctorID        int     `json:"doctor_id"`
	DoctorName      string  `json:"doctor_name"`
	Specialization  string  `json:"specialization"`
	Tests           *string `json:"tests"`
	MedicineName    *string `json:"medicine_name"`
	Instructions    *string `json:"instructions"`
}

type DefaultHistoryService struct {
	HistoryRepo HistoryRepository
	PatientRepo PatientRepository
}

func NewHistoryService(historyRepo HistoryRepository, patientRepo PatientRepository) *DefaultHistoryService {
	return &DefaultHistoryService{HistoryRepo: historyRepo, PatientRepo: patientRepo}
}

// GetPatientHistory lists every visit note of a patient, newest appointment first.
func (h *DefaultHistoryService) GetPatientHistory(ctx context.Context, patientID int) ([]*HistoryResponse, apierror.ErrorResponse) {
	records, err := h.HistoryRepo.ListByPatient(ctx, patientID)
	if err != nil {
		log.Errorf("failed to list history of patient %d: %v", patientID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*HistoryResponse, len(records))
	for i, r := range records {
		resp[i] = &HistoryResponse{
			HistoryID:       r.HistoryID,
			AppointmentID:   r.AppointmentID,
			AppointmentDate: r.AppointmentDate,
			Status:          string(r.Status),
			DoctorID:        r.DoctorID,
			DoctorName:      r.DoctorName,
			Specialization:  r.Specialization,
			Tests:           r.Tests,
			MedicineName:    r.MedicineName,
			Instructions:    r.Instructions,
		}
	}
	return resp, nil
}

// ExportPatientHistory renders the patient's history as a PDF document.
func (h *DefaultHistoryService) ExportPatientHistory(ctx context.Context, patientID int) ([]byte, apierror.ErrorResponse) {
	patient, err := h.PatientRepo.FindByID(ctx, patientID)
	if err != nil {
		log.Errorf("failed to fetch patient %d: %v", patientID, err)
		return nil, apierror.InternalServerError
	}
	if patient == nil {
		return nil, apierror.PatientNotFoundError
	}

	records, err := h.HistoryRepo.ListByPatient(ctx, patientID)
	if err != nil {
		log.Errorf("failed to list history of patient %d: %v", patientID, err)
		return nil, apierror.InternalServerError
	}

	doc, err := report.HistoryPDF(patient, records)
	if err != nil {
		log.Errorf("failed to render history of patient %d: %v", patientID, err)
		return nil, apierror.InternalServerError
	}
	return doc, nil
}
