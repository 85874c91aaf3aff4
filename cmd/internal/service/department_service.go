package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DepartmentRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Department, error)
	FindAll(ctx context.Context) ([]*entity.Department, error)
	Save(ctx context.Context, department *entity.Department) error
	Update(ctx context.Context, id int, update entity.DepartmentUpdate) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

type DepartmentRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

type DepartmentUpdateRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type DepartmentResponse struct {
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
}

type DepartmentCreatedResponse struct {
	Message      string `json:"message"`
	DepartmentID int    `json:"department_id"`
}

type DefaultDepartmentService struct {
	DepartmentRepo DepartmentRepository
	DoctorRepo     DoctorRepository
	Tx             Transactor
	Validate       *validator.Validate
}

func NewDepartmentService(departmentRepo DepartmentRepository, doctorRepo DoctorRepository, tx Transactor, validate *validator.Validate) *DefaultDepartmentService {
	return &DefaultDepartmentService{DepartmentRepo: departmentRepo, DoctorRepo: doctorRepo, Tx: tx, Validate: validate}
}

func (d *DefaultDepartmentService) GetDepartments(ctx context.Context) ([]*DepartmentResponse, apierror.ErrorResponse) {
	departments, err := d.DepartmentRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch all departments: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*DepartmentResponse, len(departments))
	for i, dep := range departments {
		resp[i] = &DepartmentResponse{DepartmentID: dep.ID, Name: dep.Name, Location: dep.Location}
	}
	return resp, nil
}

func (d *DefaultDepartmentService) CreateDepartment(ctx context.Context, req *DepartmentRequest) (*DepartmentCreatedResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := d.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err, "Department name is required")
	}

	department := &entity.Department{Name: req.Name, Location: req.Location}
	if err := d.DepartmentRepo.Save(ctx, department); err != nil {
		log.Errorf("failed to create department %s: %v", req.Name, err)
		return nil, apierror.InternalServerError
	}
	return &DepartmentCreatedResponse{Message: "Department added successfully", DepartmentID: department.ID}, nil
}

func (d *DefaultDepartmentService) UpdateDepartment(ctx context.Context, id int, req *DepartmentUpdateRequest) (*MessageResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)

	update := entity.DepartmentUpdate{Name: req.Name, Location: req.Location}
	if len(update.Columns()) == 0 {
		return nil, apierror.NoValidFieldsError
	}

	if err := d.DepartmentRepo.Update(ctx, id, update); err != nil {
		log.Errorf("failed to update department %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return &MessageResponse{Message: "Department updated successfully"}, nil
}

// DeleteDepartment refuses while any doctor still references the department.
func (d *DefaultDepartmentService) DeleteDepartment(ctx context.Context, id int) (*MessageResponse, apierror.ErrorResponse) {
	err := d.Tx.InTransaction(ctx, func(ctx context.Context) error {
		assigned, err := d.DoctorRepo.CountByDepartment(ctx, id)
		if err != nil {
			return fmt.Errorf("count doctors of department %d: %w", id, err)
		}
		if assigned > 0 {
			return apierror.NewSimple(http.StatusBadRequest,
				fmt.Sprintf("Cannot delete department. %d doctor(s) are assigned to it.", assigned))
		}
		return d.DepartmentRepo.Delete(ctx, id)
	})
	if apierr := resolve(err, fmt.Sprintf("failed to delete department %d", id)); apierr != nil {
		return nil, apierr
	}
	return &MessageResponse{Message: "Department deleted successfully"}, nil
}
