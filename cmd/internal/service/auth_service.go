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

type UserRepository interface {
	FindByCredentials(ctx context.Context, username, password string) (*entity.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, user *entity.User) error
	DeleteByReference(ctx context.Context, role entity.Role, referenceID int) error
}

type TokenIssuer interface {
	Issue(userID int, role string, referenceID *int) (string, error)
}

type UserLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,nospaces"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Age      *int   `json:"age" validate:"required,min=0,max=150"`
	Gender   string `json:"gender" validate:"required,oneof=Male Female Other"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
}

type UserLoginResponse struct {
	Message     string `json:"message"`
	Role        string `json:"role"`
	UserID      int    `json:"user_id"`
	ReferenceID *int   `json:"reference_id"`
	Name        string `json:"name"`
	Token       string `json:"token"`
}

type DefaultAuthService struct {
	UserRepo    UserRepository
	DoctorRepo  DoctorRepository
	PatientRepo PatientRepository
	Tokens      TokenIssuer
	Tx          Transactor
	Validate    *validator.Validate
}

func NewAuthService(userRepo UserRepository, doctorRepo DoctorRepository, patientRepo PatientRepository,
	tokens TokenIssuer, tx Transactor, validate *validator.Validate) *DefaultAuthService {
	return &DefaultAuthService{
		UserRepo:    userRepo,
		DoctorRepo:  doctorRepo,
		PatientRepo: patientRepo,
		Tokens:      tokens,
		Tx:          tx,
		Validate:    validate,
	}
}

// Login matches the credential verbatim, then refuses blacklisted doctors and
// patients even though their password was right.
func (u *DefaultAuthService) Login(ctx context.Context, req *UserLoginRequest) (*UserLoginResponse, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Username and password required")
	}

	user, err := u.UserRepo.FindByCredentials(ctx, req.Username, req.Password)
	if err != nil {
		log.Errorf("failed to look up credentials of %s: %v", req.Username, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.InvalidCredentialsError
	}

	name, apierr := u.displayName(ctx, user)
	if apierr != nil {
		return nil, apierr
	}

	signed, err := u.Tokens.Issue(user.ID, string(user.Role), user.ReferenceID)
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &UserLoginResponse{
		Message:     "Login successful",
		Role:        string(user.Role),
		UserID:      user.ID,
		ReferenceID: user.ReferenceID,
		Name:        name,
		Token:       signed,
	}, nil
}

// Register creates a patient and its login in one transaction.
func (u *DefaultAuthService) Register(ctx context.Context, req *RegisterRequest) (*MessageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Missing required fields")
	}

	err := u.Tx.InTransaction(ctx, func(ctx context.Context) error {
		found, err := u.UserRepo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return fmt.Errorf("check username %s: %w", req.Username, err)
		}
		if found {
			return apierror.UserAlreadyExistsError
		}

		patient := &entity.Patient{
			Name:    req.Name,
			Age:     *req.Age,
			Gender:  entity.Gender(req.Gender),
			Contact: req.Contact,
			Address: req.Address,
		}
		if err := u.PatientRepo.Save(ctx, patient); err != nil {
			return fmt.Errorf("save patient: %w", err)
		}

		user := &entity.User{
			Username:    req.Username,
			Password:    req.Password,
			Role:        entity.RolePatient,
			ReferenceID: &patient.ID,
		}
		return u.UserRepo.Save(ctx, user)
	})
	if apierr := resolve(err, "failed to register patient"); apierr != nil {
		return nil, apierr
	}
	return &MessageResponse{Message: "Patient registered successfully"}, nil
}

func (u *DefaultAuthService) displayName(ctx context.Context, user *entity.User) (string, apierror.ErrorResponse) {
	if user.ReferenceID == nil {
		return "Admin", nil
	}

	switch user.Role {
	case entity.RoleDoctor:
		doctor, err := u.DoctorRepo.FindByID(ctx, *user.ReferenceID)
		if err != nil {
			log.Errorf("failed to fetch doctor %d: %v", *user.ReferenceID, err)
			return "", apierror.InternalServerError
		}
		if doctor == nil {
			return "Admin", nil
		}
		if doctor.IsBlacklisted {
			return "", apierror.DoctorBlacklistedError
		}
		return doctor.Name, nil

	case entity.RolePatient:
		patient, err := u.PatientRepo.FindByID(ctx, *user.ReferenceID)
		if err != nil {
			log.Errorf("failed to fetch patient %d: %v", *user.ReferenceID, err)
			return "", apierror.InternalServerError
		}
		if patient == nil {
			return "Admin", nil
		}
		if patient.IsBlacklisted {
			return "", apierror.PatientBlacklistedError
		}
		return patient.Name, nil
	}
	return "Admin", nil
}
