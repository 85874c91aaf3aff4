package routes

import (
	"context"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type DepartmentService interface {
	GetDepartments(ctx context.Context) ([]*service.DepartmentResponse, apierror.ErrorResponse)
	CreateDepartment(ctx context.Context, req *service.DepartmentRequest) (*service.DepartmentCreatedResponse, apierror.ErrorResponse)
	UpdateDepartment(ctx context.Context, id int, req *service.DepartmentUpdateRequest) (*service.MessageResponse, apierror.ErrorResponse)
	DeleteDepartment(ctx context.Context, id int) (*service.MessageResponse, apierror.ErrorResponse)
}

type DefaultDepartmentRoute struct {
	DepartmentService DepartmentService
}

func NewDepartmentDefault(departmentService DepartmentService) *DefaultDepartmentRoute {
	return &DefaultDepartmentRoute{DepartmentService: departmentService}
}

func (d *DefaultDepartmentRoute) GetDepartments(c echo.Context) error {
	departments, apierr := d.DepartmentService.GetDepartments(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, departments)
}

func (d *DefaultDepartmentRoute) CreateDepartment(c echo.Context) error {
	var req service.DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := d.DepartmentService.CreateDepartment(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (d *DefaultDepartmentRoute) UpdateDepartment(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.DepartmentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := d.DepartmentService.UpdateDepartment(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (d *DefaultDepartmentRoute) DeleteDepartment(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := d.DepartmentService.DeleteDepartment(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
