package routes

import (
	"context"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type DoctorService interface {
	GetDoctors(ctx context.Context) ([]*service.DoctorResponse, apierror.ErrorResponse)
	SearchDoctors(ctx context.Context, q string) ([]*service.DoctorResponse, apierror.ErrorResponse)
	GetDoctorDetails(ctx context.Context, id int) (*service.DoctorDetailsResponse, apierror.ErrorResponse)
	CreateDoctor(ctx context.Context, req *service.CreateDoctorRequest) (*service.DoctorCreatedResponse, apierror.ErrorResponse)
	UpdateDoctor(ctx context.Context, id int, req *service.DoctorUpdateRequest) (*service.MessageResponse, apierror.ErrorResponse)
	SetBlacklist(ctx context.Context, id int, req *service.BlacklistRequest) (*service.MessageResponse, apierror.ErrorResponse)
	DeleteDoctor(ctx context.Context, id int) (*service.MessageResponse, apierror.ErrorResponse)
}

type DefaultDoctorRoute struct {
	DoctorService DoctorService
}

func NewDoctorDefault(doctorService DoctorService) *DefaultDoctorRoute {
	return &DefaultDoctorRoute{DoctorService: doctorService}
}

func (d *DefaultDoctorRoute) GetDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.GetDoctors(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctors)
}

func (d *DefaultDoctorRoute) SearchDoctors(c echo.Context) error {
	doctors, apierr := d.DoctorService.SearchDoctors(c.Request().Context(), c.QueryParam("q"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctors)
}

func (d *DefaultDoctorRoute) GetDoctorDetails(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	doctor, apierr := d.DoctorService.GetDoctorDetails(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, doctor)
}

func (d *DefaultDoctorRoute) CreateDoctor(c echo.Context) error {
	var req service.CreateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := d.DoctorService.CreateDoctor(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (d *DefaultDoctorRoute) UpdateDoctor(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.DoctorUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := d.DoctorService.UpdateDoctor(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (d *DefaultDoctorRoute) SetBlacklist(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.BlacklistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := d.DoctorService.SetBlacklist(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (d *DefaultDoctorRoute) DeleteDoctor(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := d.DoctorService.DeleteDoctor(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
