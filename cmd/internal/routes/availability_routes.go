package routes

import (
	"context"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, doctorID int) ([]*service.AvailabilityResponse, apierror.ErrorResponse)
	AddAvailability(ctx context.Context, doctorID int, req *service.AvailabilityRequest) (*service.AvailabilityCreatedResponse, apierror.ErrorResponse)
	UpdateAvailability(ctx context.Context, id int, req *service.AvailabilityUpdateRequest) (*service.MessageResponse, apierror.ErrorResponse)
	DeleteAvailability(ctx context.Context, id int) (*service.MessageResponse, apierror.ErrorResponse)
}

type DefaultAvailabilityRoute struct {
	AvailabilityService AvailabilityService
}

func NewAvailabilityDefault(availService AvailabilityService) *DefaultAvailabilityRoute {
	return &DefaultAvailabilityRoute{AvailabilityService: availService}
}

func (a *DefaultAvailabilityRoute) GetAvailability(c echo.Context) error {
	doctorID, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	slots, apierr := a.AvailabilityService.GetAvailability(c.Request().Context(), doctorID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, slots)
}

func (a *DefaultAvailabilityRoute) AddAvailability(c echo.Context) error {
	doctorID, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AvailabilityService.AddAvailability(c.Request().Context(), doctorID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *DefaultAvailabilityRoute) UpdateAvailability(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.AvailabilityUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AvailabilityService.UpdateAvailability(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAvailabilityRoute) DeleteAvailability(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := a.AvailabilityService.DeleteAvailability(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}
