package routes

import (
	"context"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type PatientService interface {
	GetProfile(ctx context.Context, id int) (*service.PatientResponse, apierror.ErrorResponse)
	UpdateProfile(ctx context.Context, id int, req *service.ProfileRequest) (*service.MessageResponse, apierror.ErrorResponse)
	GetPatients(ctx context.Context) ([]*service.PatientResponse, apierror.ErrorResponse)
	SearchPatients(ctx context.Context, q string) ([]*service.PatientResponse, apierror.ErrorResponse)
	UpdatePatient(ctx context.Context, id int, req *service.PatientUpdateRequest) (*service.MessageResponse, apierror.ErrorResponse)
	SetBlacklist(ctx context.Context, id int, req *service.BlacklistRequest) (*service.MessageResponse, apierror.ErrorResponse)
	DeletePatient(ctx context.Context, id int) (*service.MessageResponse, apierror.ErrorResponse)
}

type DefaultPatientRoute struct {
	PatientService PatientService
}

func NewPatientDefault(patientService PatientService) *DefaultPatientRoute {
	return &DefaultPatientRoute{PatientService: patientService}
}

func (p *DefaultPatientRoute) GetProfile(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	patient, apierr := p.PatientService.GetProfile(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patient)
}

func (p *DefaultPatientRoute) UpdateProfile(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := p.PatientService.UpdateProfile(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultPatientRoute) GetPatients(c echo.Context) error {
	patients, apierr := p.PatientService.GetPatients(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patients)
}

func (p *DefaultPatientRoute) SearchPatients(c echo.Context) error {
	patients, apierr := p.PatientService.SearchPatients(c.Request().Context(), c.QueryParam("q"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, patients)
}

func (p *DefaultPatientRoute) UpdatePatient(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.PatientUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := p.PatientService.UpdatePatient(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultPatientRoute) SetBlacklist(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.BlacklistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := p.PatientService.SetBlacklist(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *DefaultPatientRoute) DeletePatient(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := p.PatientService.DeletePatient(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
