package service

import (
	"context"
	"fmt"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type PatientRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]*entity.Patient, error)
	Search(ctx context.Context, q string) ([]*entity.Patient, error)
	Save(ctx context.Context, patient *entity.Patient) error
	Update(ctx context.Context, id int, update entity.PatientUpdate) error
	SetBlacklisted(ctx context.Context, id int, blacklisted bool) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

// ProfileRequest replaces every profile field; only address may be empty.
type ProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Age     *int   `json:"age" validate:"required,min=0,max=150"`
	Gender  string `json:"gender" validate:"required,oneof=Male Female Other"`
	Contact string `json:"contact" validate:"required"`
	Address string `json:"address"`
}

type PatientUpdateRequest struct {
	Name    *string `json:"name"`
	Age     *int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender  *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

type BlacklistRequest struct {
	Status *int `json:"status"`
}

type PatientResponse struct {
	PatientID     int    `json:"patient_id"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Contact       string `json:"contact"`
	Address       string `json:"address"`
	IsBlacklisted bool   `json:"is_blacklisted"`
}

type DefaultPatientService struct {
	PatientRepo PatientRepository
	UserRepo    UserRepository
	Tx          Transactor
	Validate    *validator.Validate
}

func NewPatientService(patientRepo PatientRepository, userRepo UserRepository, tx Transactor, validate *validator.Validate) *DefaultPatientService {
	return &DefaultPatientService{PatientRepo: patientRepo, UserRepo: userRepo, Tx: tx, Validate: validate}
}

func (p *DefaultPatientService) GetProfile(ctx context.Context, id int) (*PatientResponse, apierror.ErrorResponse) {
	patient, err := p.PatientRepo.FindByID(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch patient %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if patient == nil {
		return nil, apierror.PatientNotFoundError
	}
	return toPatientResponse(patient), nil
}

func (p *DefaultPatientService) UpdateProfile(ctx context.Context, id int, req *ProfileRequest) (*MessageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Missing required fields")
	}

	gender := entity.Gender(req.Gender)
	update := entity.PatientUpdate{
		Name:    &req.Name,
		Age:     req.Age,
		Gender:  &gender,
		Contact: &req.Contact,
		Address: &req.Address,
	}

	err := p.Tx.InTransaction(ctx, func(ctx context.Context) error {
		patient, err := p.PatientRepo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch patient %d: %w", id, err)
		}
		if patient == nil {
			return apierror.PatientNotFoundError
		}
		return p.PatientRepo.Update(ctx, id, update)
	})
	if apierr := resolve(err, "failed to update patient profile"); apierr != nil {
		return nil, apierr
	}
	return &MessageResponse{Message: "Profile updated successfully"}, nil
}

func (p *DefaultPatientService) GetPatients(ctx context.Context) ([]*PatientResponse, apierror.ErrorResponse) {
	patients, err := p.PatientRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all patients: %v", err)
		return nil, apierror.InternalServerError
	}
	return toPatientResponses(patients), nil
}

func (p *DefaultPatientService) SearchPatients(ctx context.Context, q string) ([]*PatientResponse, apierror.ErrorResponse) {
	patients, err := p.PatientRepo.Search(ctx, q)
	if err != nil {
		log.Errorf("failed to search patients for %q: %v", q, err)
		return nil, apierror.InternalServerError
	}
	return toPatientResponses(patients), nil
}

// UpdatePatient applies the fields present in req.
func (p *DefaultPatientService) UpdatePatient(ctx context.Context, id int, req *PatientUpdateRequest) (*MessageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := p.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Missing required fields")
	}

	update := entity.PatientUpdate{Name: req.Name, Age: req.Age, Contact: req.Contact, Address: req.Address}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		update.Gender = &gender
	}
	if len(update.Columns()) == 0 {
		return nil, apierror.NoValidFieldsError
	}

	if err := p.PatientRepo.Update(ctx, id, update); err != nil {
		log.Errorf("failed to update patient %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return &MessageResponse{Message: "Patient updated successfully"}, nil
}

func (p *DefaultPatientService) SetBlacklist(ctx context.Context, id int, req *BlacklistRequest) (*MessageResponse, apierror.ErrorResponse) {
	blacklisted, apierr := parseBlacklistStatus(req)
	if apierr != nil {
		return nil, apierr
	}

	if err := p.PatientRepo.SetBlacklisted(ctx, id, blacklisted); err != nil {
		log.Errorf("failed to set blacklist flag of patient %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return &MessageResponse{Message: "Patient " + blacklistVerb(blacklisted) + " successfully"}, nil
}

// DeletePatient removes the patient and its login. Appointments and history
// rows keep their reference.
func (p *DefaultPatientService) DeletePatient(ctx context.Context, id int) (*MessageResponse, apierror.ErrorResponse) {
	err := p.Tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := p.PatientRepo.Delete(ctx, id); err != nil {
			return err
		}
		return p.UserRepo.DeleteByReference(ctx, entity.RolePatient, id)
	})
	if apierr := resolve(err, fmt.Sprintf("failed to delete patient %d", id)); apierr != nil {
		return nil, apierr
	}
	return &MessageResponse{Message: "Patient deleted successfully"}, nil
}

func parseBlacklistStatus(req *BlacklistRequest) (bool, apierror.ErrorResponse) {
	if req.Status == nil || (*req.Status != 0 && *req.Status != 1) {
		return false, apierror.InvalidBlacklistStatus
	}
	return *req.Status == 1, nil
}

func blacklistVerb(blacklisted bool) string {
	if blacklisted {
		return "blacklisted"
	}
	return "unblacklisted"
}

func toPatientResponse(patient *entity.Patient) *PatientResponse {
	return &PatientResponse{
		PatientID:     patient.ID,
		Name:          patient.Name,
		Age:           patient.Age,
		Gender:        string(patient.Gender),
		Contact:       patient.Contact,
		Address:       patient.Address,
		IsBlacklisted: patient.IsBlacklisted,
	}
}

func toPatientResponses(patients []*entity.Patient) []*PatientResponse {
	resp := make([]*PatientResponse, len(patients))
	for i, patient := range patients {
		resp[i] = toPatientResponse(patient)
	}
	return resp
}
