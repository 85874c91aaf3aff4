package routes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type HistoryService interface {
	GetPatientHistory(ctx context.Context, patientID int) ([]*service.HistoryResponse, apierror.ErrorResponse)
	ExportPatientHistory(ctx context.Context, patientID int) ([]byte, apierror.ErrorResponse)
}

type DashboardService interface {
	GetDoctorSummary(ctx context.Context, doctorID int) (*service.AppointmentSummaryResponse, apierror.ErrorResponse)
	GetPatientSummary(ctx context.Context, patientID int) (*service.AppointmentSummaryResponse, apierror.ErrorResponse)
	GetAdminSummary(ctx context.Context) (*service.AdminSummaryResponse, apierror.ErrorResponse)
}

// DefaultReportRoute serves the read-only views: visit history and dashboards.
type DefaultReportRoute struct {
	HistoryService   HistoryService
	DashboardService DashboardService
}

func NewReportDefault(historyService HistoryService, dashboardService DashboardService) *DefaultReportRoute {
	return &DefaultReportRoute{HistoryService: historyService, DashboardService: dashboardService}
}

func (r *DefaultReportRoute) GetPatientHistory(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	history, apierr := r.HistoryService.GetPatientHistory(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, history)
}

func (r *DefaultReportRoute) ExportPatientHistory(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	doc, apierr := r.HistoryService.ExportPatientHistory(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=history-%d.pdf", id))
	return c.Blob(http.StatusOK, "application/pdf", doc)
}

func (r *DefaultReportRoute) GetDoctorSummary(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	summary, apierr := r.DashboardService.GetDoctorSummary(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, summary)
}

func (r *DefaultReportRoute) GetPatientSummary(c echo.Context) error {
	id, apierr := utils.ParamID(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	summary, apierr := r.DashboardService.GetPatientSummary(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, summary)
}

func (r *DefaultReportRoute) GetAdminSummary(c echo.Context) error {
	summary, apierr := r.DashboardService.GetAdminSummary(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, summary)
}
