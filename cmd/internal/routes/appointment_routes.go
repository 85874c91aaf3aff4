package routes

import (
	"context"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	BookAppointment(ctx context.Context, req *service.BookAppointmentRequest) (*service.BookingResponse, apierror.ErrorResponse)
	UpdateStatus(ctx context.Context, id int, req *service.UpdateStatusRequest) (*service.MessageResponse, apierror.ErrorResponse)
	CancelAppointment(ctx context.Context, id int) (*service.MessageResponse, apierror.ErrorResponse)
	RecordHistory(ctx context.Context, appointmentID int, req *service.HistoryRequest) (*service.HistoryCreatedResponse, apierror.ErrorResponse)
	GetPatientAppointments(ctx context.Context, patientID int) ([]*service.PatientAppointmentResponse, apierror.ErrorResponse)
	GetDoctorAppointments(ctx context.Context, doctorID int) ([]*service.DoctorAppointmentResponse, apierror.ErrorResponse)
	GetAllAppointments(ctx context.Context) ([]*service.AppointmentOverviewResponse, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) BookAppointment(c echo.Context) error {
	var req service.BookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AppointmentService.BookAppointment(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *DefaultAppointmentRoute) CancelAppointment(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := a.AppointmentService.CancelAppointment(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAppointmentRoute) UpdateStatus(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AppointmentService.UpdateStatus(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

// AdminUpdateStatus is UpdateStatus with the admin console's wording.
func (a *DefaultAppointmentRoute) AdminUpdateStatus(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if _, apierr := a.AppointmentService.UpdateStatus(c.Request().Context(), id, &req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, &service.MessageResponse{Message: "Appointment status updated successfully"})
}

func (a *DefaultAppointmentRoute) RecordHistory(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.HistoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AppointmentService.RecordHistory(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *DefaultAppointmentRoute) GetPatientAppointments(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	appts, apierr := a.AppointmentService.GetPatientAppointments(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appts)
}

func (a *DefaultAppointmentRoute) GetDoctorAppointments(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	appts, apierr := a.AppointmentService.GetDoctorAppointments(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appts)
}

func (a *DefaultAppointmentRoute) GetAllAppointments(c echo.Context) error {
	appts, apierr := a.AppointmentService.GetAllAppointments(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appts)
}
