package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/scheduling"
	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/token"
	"github.com/labstack/echo/v4"
)

type fakeAppointmentService struct {
	booked    *service.BookAppointmentRequest
	bookErr   apierror.ErrorResponse
	statusFor int
}

func (f *fakeAppointmentService) BookAppointment(_ context.Context, req *service.BookAppointmentRequest) (*service.BookingResponse, apierror.ErrorResponse) {
	f.booked = req
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return &service.BookingResponse{Message: "Appointment booked successfully", AppointmentID: 1}, nil
}

func (f *fakeAppointmentService) UpdateStatus(_ context.Context, id int, _ *service.UpdateStatusRequest) (*service.MessageResponse, apierror.ErrorResponse) {
	f.statusFor = id
	return &service.MessageResponse{Message: "Appointment marked as Completed"}, nil
}

func (f *fakeAppointmentService) CancelAppointment(context.Context, int) (*service.MessageResponse, apierror.ErrorResponse) {
	return &service.MessageResponse{Message: "Appointment cancelled successfully"}, nil
}

func (f *fakeAppointmentService) RecordHistory(context.Context, int, *service.HistoryRequest) (*service.HistoryCreatedResponse, apierror.ErrorResponse) {
	return &service.HistoryCreatedResponse{Message: "Prescription added successfully"}, nil
}

func (f *fakeAppointmentService) GetPatientAppointments(context.Context, int) ([]*service.PatientAppointmentResponse, apierror.ErrorResponse) {
	return []*service.PatientAppointmentResponse{}, nil
}

func (f *fakeAppointmentService) GetDoctorAppointments(context.Context, int) ([]*service.DoctorAppointmentResponse, apierror.ErrorResponse) {
	return []*service.DoctorAppointmentResponse{}, nil
}

func (f *fakeAppointmentService) GetAllAppointments(context.Context) ([]*service.AppointmentOverviewResponse, apierror.ErrorResponse) {
	return nil, apierror.InternalServerError
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBookAppointment_Created(t *testing.T) {
	svc := &fakeAppointmentService{}
	route := NewAppointmentDefault(svc)
	c, rec := newJSONContext(http.MethodPost, "/api/patient/appointments/book", `{"patient_id":3,"doctor_id":1,"date":"2025-01-06 10:00"}`)

	if err := route.BookAppointment(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.booked == nil || svc.booked.PatientID != 3 || svc.booked.Date != "2025-01-06 10:00" {
		t.Fatalf("request not forwarded: %+v", svc.booked)
	}
}

func TestBookAppointment_MalformedBody(t *testing.T) {
	route := NewAppointmentDefault(&fakeAppointmentService{})
	c, rec := newJSONContext(http.MethodPost, "/api/patient/appointments/book", `{"patient_id":`)

	_ = route.BookAppointment(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookAppointment_SlotsInBody(t *testing.T) {
	windows := []scheduling.Window{{Start: "09:00", End: "12:00"}}
	svc := &fakeAppointmentService{bookErr: apierror.NewSlots(http.StatusBadRequest, "Doctor available on Monday only during these times", windows)}
	route := NewAppointmentDefault(svc)
	c, rec := newJSONContext(http.MethodPost, "/api/patient/appointments/book", `{"patient_id":3,"doctor_id":1,"date":"2025-01-06 13:00"}`)

	_ = route.BookAppointment(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body struct {
		Error          string              `json:"error"`
		AvailableSlots []scheduling.Window `json:"available_slots"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(body.Error, "Monday") || len(body.AvailableSlots) != 1 || body.AvailableSlots[0].Start != "09:00" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestUpdateStatus_PathID(t *testing.T) {
	tests := []struct {
		name  string
		param string
		code  int
	}{
		{"valid", "12", http.StatusOK},
		{"not a number", "abc", http.StatusBadRequest},
		{"zero", "0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAppointmentService{}
			route := NewAppointmentDefault(svc)
			c, rec := newJSONContext(http.MethodPut, "/", `{"status":"Completed"}`)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			_ = route.UpdateStatus(c)
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if tt.code == http.StatusOK && svc.statusFor != 12 {
				t.Fatalf("expected id 12, got %d", svc.statusFor)
			}
		})
	}
}

func TestAdminUpdateStatus_Wording(t *testing.T) {
	route := NewAppointmentDefault(&fakeAppointmentService{})
	c, rec := newJSONContext(http.MethodPut, "/", `{"status":"Completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("4")

	_ = route.AdminUpdateStatus(c)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Appointment status updated successfully") {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestGetAllAppointments_ServiceError(t *testing.T) {
	route := NewAppointmentDefault(&fakeAppointmentService{})
	c, rec := newJSONContext(http.MethodGet, "/api/admin/appointments", "")

	_ = route.GetAllAppointments(c)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

type fakeParser struct {
	claims *token.Claims
}

func (f fakeParser) Parse(raw string) (*token.Claims, error) {
	if raw != "good" {
		return nil, token.ErrInvalidToken
	}
	return f.claims, nil
}

func TestRoleGate(t *testing.T) {
	parser := fakeParser{claims: &token.Claims{Role: string(entity.RolePatient)}}

	tests := []struct {
		name   string
		header string
		roles  []entity.Role
		code   int
	}{
		{"missing header", "", []entity.Role{entity.RolePatient}, http.StatusUnauthorized},
		{"not bearer", "Basic good", []entity.Role{entity.RolePatient}, http.StatusUnauthorized},
		{"bad token", "Bearer nope", []entity.Role{entity.RolePatient}, http.StatusUnauthorized},
		{"wrong role", "Bearer good", []entity.Role{entity.RoleAdmin}, http.StatusForbidden},
		{"allowed", "Bearer good", []entity.Role{entity.RoleAdmin, entity.RolePatient}, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodGet, "/", "")
			if tt.header != "" {
				c.Request().Header.Set(echo.HeaderAuthorization, tt.header)
			}

			next := func(c echo.Context) error {
				if _, err := utils.ParseTokenDataCtx(c); err != nil {
					return errors.New("claims were not stored")
				}
				return c.NoContent(http.StatusNoContent)
			}
			if err := RoleGate(parser, tt.roles...)(next)(c); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
		})
	}
}

func TestMe_WithoutClaims(t *testing.T) {
	route := NewAuthDefault(nil)
	c, rec := newJSONContext(http.MethodGet, "/api/auth/me", "")

	_ = route.Me(c)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
