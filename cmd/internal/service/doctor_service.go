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

type DoctorRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Doctor, error)
	FindListedDetails(ctx context.Context, id int) (*entity.DoctorDetails, error)
	FindAll(ctx context.Context) ([]*entity.Doctor, error)
	Search(ctx context.Context, q string) ([]*entity.Doctor, error)
	Save(ctx context.Context, doctor *entity.Doctor) error
	Update(ctx context.Context, id int, update entity.DoctorUpdate) error
	SetBlacklisted(ctx context.Context, id int, blacklisted bool) error
	Delete(ctx context.Context, id int) error
	CountByDepartment(ctx context.Context, departmentID int) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// AvailabilityLister is the read side of the availability service.
type AvailabilityLister interface {
	GetAvailability(ctx context.Context, doctorID int) ([]*AvailabilityResponse, apierror.ErrorResponse)
}

type CreateDoctorRequest struct {
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	DepartmentID   *int   `json:"department_id" validate:"required"`
	Contact        string `json:"contact"`
	Email          string `json:"email" validate:"required,nospaces"`
	Password       string `json:"password"`
}

type DoctorUpdateRequest struct {
	Name           *string `json:"name"`
	Specialization *string `json:"specialization"`
	DepartmentID   *int    `json:"department_id"`
	Contact        *string `json:"contact"`
	Email          *string `json:"email"`
}

type DoctorResponse struct {
	DoctorID       int    `json:"doctor_id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	DepartmentID   *int   `json:"department_id"`
	Contact        string `json:"contact"`
	Email          string `json:"email"`
	IsBlacklisted  bool   `json:"is_blacklisted"`
}

type DoctorCreatedResponse struct {
	Message       string `json:"message"`
	DoctorID      int    `json:"doctor_id"`
	LoginUsername string `json:"login_username"`
}

type DoctorDetailsResponse struct {
	DoctorID       int                     `json:"doctor_id"`
	Name           string                  `json:"name"`
	Specialization string                  `json:"specialization"`
	DepartmentName *string                 `json:"department_name"`
	Availability   []*AvailabilityResponse `json:"availability"`
}

type DefaultDoctorService struct {
	DoctorRepo      DoctorRepository
	UserRepo        UserRepository
	Availability    AvailabilityLister
	Tx              Transactor
	Validate        *validator.Validate
	DefaultPassword string
}

func NewDoctorService(doctorRepo DoctorRepository, userRepo UserRepository, availability AvailabilityLister,
	tx Transactor, validate *validator.Validate, defaultPassword string) *DefaultDoctorService {
	return &DefaultDoctorService{
		DoctorRepo:      doctorRepo,
		UserRepo:        userRepo,
		Availability:    availability,
		Tx:              tx,
		Validate:        validate,
		DefaultPassword: defaultPassword,
	}
}

func (d *DefaultDoctorService) GetDoctors(ctx context.Context) ([]*DoctorResponse, apierror.ErrorResponse) {
	doctors, err := d.DoctorRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all doctors: %v", err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponses(doctors), nil
}

func (d *DefaultDoctorService) SearchDoctors(ctx context.Context, q string) ([]*DoctorResponse, apierror.ErrorResponse) {
	doctors, err := d.DoctorRepo.Search(ctx, q)
	if err != nil {
		log.Errorf("failed to search doctors for %q: %v", q, err)
		return nil, apierror.InternalServerError
	}
	return toDoctorResponses(doctors), nil
}

// GetDoctorDetails is the patient-facing view: blacklisted doctors are hidden.
func (d *DefaultDoctorService) GetDoctorDetails(ctx context.Context, id int) (*DoctorDetailsResponse, apierror.ErrorResponse) {
	details, err := d.DoctorRepo.FindListedDetails(ctx, id)
	if err != nil {
		log.Errorf("failed to fetch doctor %d details: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if details == nil {
		return nil, apierror.DoctorNotFoundError
	}

	slots, apierr := d.Availability.GetAvailability(ctx, id)
	if apierr != nil {
		return nil, apierr
	}

	return &DoctorDetailsResponse{
		DoctorID:       details.DoctorID,
		Name:           details.Name,
		Specialization: details.Specialization,
		DepartmentName: details.DepartmentName,
		Availability:   slots,
	}, nil
}

// CreateDoctor adds the doctor and a Doctor login whose username is the e-mail.
func (d *DefaultDoctorService) CreateDoctor(ctx context.Context, req *CreateDoctorRequest) (*DoctorCreatedResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := d.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Missing required fields (name, specialization, department, email)")
	}

	password := req.Password
	if password == "" {
		password = d.DefaultPassword
	}

	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		DepartmentID:   req.DepartmentID,
		Contact:        req.Contact,
		Email:          req.Email,
	}

	err := d.Tx.InTransaction(ctx, func(ctx context.Context) error {
		found, err := d.UserRepo.ExistsByUsername(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("check username %s: %w", req.Email, err)
		}
		if found {
			return apierror.DoctorEmailInUseError
		}

		if err := d.DoctorRepo.Save(ctx, doctor); err != nil {
			return fmt.Errorf("save doctor: %w", err)
		}

		return d.UserRepo.Save(ctx, &entity.User{
			Username:    req.Email,
			Password:    password,
			Role:        entity.RoleDoctor,
			ReferenceID: &doctor.ID,
		})
	})
	if apierr := resolve(err, "failed to create doctor"); apierr != nil {
		return nil, apierr
	}

	return &DoctorCreatedResponse{Message: "Doctor added successfully", DoctorID: doctor.ID, LoginUsername: req.Email}, nil
}

// UpdateDoctor applies the fields present in req. The login username is not
// changed when the e-mail is.
func (d *DefaultDoctorService) UpdateDoctor(ctx context.Context, id int, req *DoctorUpdateRequest) (*MessageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)

	update := entity.DoctorUpdate{
		Name:           req.Name,
		Specialization: req.Specialization,
		DepartmentID:   req.DepartmentID,
		Contact:        req.Contact,
		Email:          req.Email,
	}
	if len(update.Columns()) == 0 {
		return nil, apierror.NoValidFieldsError
	}

	if err := d.DoctorRepo.Update(ctx, id, update); err != nil {
		log.Errorf("failed to update doctor %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return &MessageResponse{Message: "Doctor updated successfully"}, nil
}

func (d *DefaultDoctorService) SetBlacklist(ctx context.Context, id int, req *BlacklistRequest) (*MessageResponse, apierror.ErrorResponse) {
	blacklisted, apierr := parseBlacklistStatus(req)
	if apierr != nil {
		return nil, apierr
	}

	if err := d.DoctorRepo.SetBlacklisted(ctx, id, blacklisted); err != nil {
		log.Errorf("failed to set blacklist flag of doctor %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return &MessageResponse{Message: "Doctor " + blacklistVerb(blacklisted) + " successfully"}, nil
}

// DeleteDoctor removes the doctor and its login. Availability windows and
// appointments referencing the doctor are left in place.
func (d *DefaultDoctorService) DeleteDoctor(ctx context.Context, id int) (*MessageResponse, apierror.ErrorResponse) {
	err := d.Tx.InTransaction(ctx, func(ctx context.Context) error {
		if err := d.DoctorRepo.Delete(ctx, id); err != nil {
			return err
		}
		return d.UserRepo.DeleteByReference(ctx, entity.RoleDoctor, id)
	})
	if apierr := resolve(err, fmt.Sprintf("failed to delete doctor %d", id)); apierr != nil {
		return nil, apierr
	}
	return &MessageResponse{Message: "Doctor deleted successfully"}, nil
}

func toDoctorResponses(doctors []*entity.Doctor) []*DoctorResponse {
	resp := make([]*DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp[i] = &DoctorResponse{
			DoctorID:       doctor.ID,
			Name:           doctor.Name,
			Specialization: doctor.Specialization,
			DepartmentID:   doctor.DepartmentID,
			Contact:        doctor.Contact,
			Email:          doctor.Email,
			IsBlacklisted:  doctor.IsBlacklisted,
		}
	}
	return resp
}
