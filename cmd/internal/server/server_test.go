package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Gyan0205/hospital-management/cmd/internal/config"
	"github.com/Gyan0205/hospital-management/cmd/internal/domain/database"
	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T, enforced bool) *echo.Echo {
	t.Helper()
	cfg := &config.Config{
		Env:                   "test",
		CORSOrigins:           []string{"*"},
		DefaultDoctorPassword: "doctor123",
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			URL:          filepath.Join(t.TempDir(), "server.db"),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		Auth: config.AuthConfig{Enforced: enforced, Secret: "test-secret", TokenTTL: time.Hour},
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	return New(cfg, db, nil)
}

func do(t *testing.T, e *echo.Echo, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func expect(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
}

func TestBookingFlow(t *testing.T) {
	e := newTestServer(t, false)

	rec := do(t, e, http.MethodPost, "/api/admin/departments", `{"name":"Cardiology","location":"Block A"}`, "")
	expect(t, rec, http.StatusCreated)
	dep := decode[struct {
		DepartmentID int `json:"department_id"`
	}](t, rec)

	rec = do(t, e, http.MethodPost, "/api/admin/doctors",
		`{"name":"Sharma","specialization":"Cardiology","department_id":`+itoa(dep.DepartmentID)+`,"email":"sharma@hospital.com"}`, "")
	expect(t, rec, http.StatusCreated)
	doc := decode[struct {
		DoctorID      int    `json:"doctor_id"`
		LoginUsername string `json:"login_username"`
	}](t, rec)
	if doc.LoginUsername != "sharma@hospital.com" {
		t.Fatalf("unexpected login username %q", doc.LoginUsername)
	}
	doctorPath := "/api/doctor/" + itoa(doc.DoctorID) + "/availability"

	rec = do(t, e, http.MethodPost, doctorPath, `{"day":"Monday","start_time":"09:00","end_time":"12:00"}`, "")
	expect(t, rec, http.StatusCreated)

	rec = do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"arjun","password":"pass","name":"Arjun","age":28,"gender":"Male","contact":"9876543210"}`, "")
	expect(t, rec, http.StatusCreated)
	rec = do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"arjun","password":"pass","name":"Arjun","age":28,"gender":"Male"}`, "")
	expect(t, rec, http.StatusConflict)

	rec = do(t, e, http.MethodPost, "/api/auth/login", `{"username":"arjun","password":"pass"}`, "")
	expect(t, rec, http.StatusOK)
	login := decode[struct {
		Role        string `json:"role"`
		ReferenceID int    `json:"reference_id"`
		Token       string `json:"token"`
	}](t, rec)
	if login.Role != "Patient" || login.Token == "" {
		t.Fatalf("unexpected login %+v", login)
	}

	book := func(date string) *httptest.ResponseRecorder {
		return do(t, e, http.MethodPost, "/api/patient/appointments/book",
			`{"patient_id":`+itoa(login.ReferenceID)+`,"doctor_id":`+itoa(doc.DoctorID)+`,"date":"`+date+`"}`, "")
	}

	expect(t, book("2025-01-06 10:00"), http.StatusCreated)

	rec = book("2025-01-07 10:00")
	expect(t, rec, http.StatusBadRequest)
	if !strings.Contains(rec.Body.String(), "Tuesday") {
		t.Fatalf("expected weekday in %s", rec.Body.String())
	}

	rec = book("2025-01-06 13:00")
	expect(t, rec, http.StatusBadRequest)
	slots := decode[struct {
		AvailableSlots []struct {
			StartTime string `json:"start_time"`
			EndTime   string `json:"end_time"`
		} `json:"available_slots"`
	}](t, rec)
	if len(slots.AvailableSlots) != 1 || slots.AvailableSlots[0].StartTime != "09:00" || slots.AvailableSlots[0].EndTime != "12:00" {
		t.Fatalf("unexpected slots %s", rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/api/doctor/dashboard/"+itoa(doc.DoctorID)+"/summary", "", "")
	expect(t, rec, http.StatusOK)
	summary := decode[map[string]int](t, rec)
	if summary["total_appointments"] != 1 || summary["upcoming_appointments"] != 1 {
		t.Fatalf("unexpected summary %v", summary)
	}

	rec = do(t, e, http.MethodGet, "/api/patient/doctor/"+itoa(doc.DoctorID), "", "")
	expect(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"department_name":"Cardiology"`) {
		t.Fatalf("unexpected doctor details %s", rec.Body.String())
	}

	rec = do(t, e, http.MethodDelete, "/api/admin/departments/"+itoa(dep.DepartmentID), "", "")
	expect(t, rec, http.StatusBadRequest)
}

func TestHistoryExportIsPDF(t *testing.T) {
	e := newTestServer(t, false)

	rec := do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"meera","password":"pass","name":"Meera","age":40,"gender":"Female"}`, "")
	expect(t, rec, http.StatusCreated)

	rec = do(t, e, http.MethodGet, "/api/patient/history/1/export", "", "")
	expect(t, rec, http.StatusOK)
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF-") {
		t.Fatal("expected a PDF body")
	}

	rec = do(t, e, http.MethodGet, "/api/patient/history/99/export", "", "")
	expect(t, rec, http.StatusNotFound)
}

func TestRoleGateWhenEnforced(t *testing.T) {
	e := newTestServer(t, true)

	expect(t, do(t, e, http.MethodGet, "/api/admin/doctors", "", ""), http.StatusUnauthorized)

	rec := do(t, e, http.MethodPost, "/api/auth/register",
		`{"username":"arjun","password":"pass","name":"Arjun","age":28,"gender":"Male"}`, "")
	expect(t, rec, http.StatusCreated)

	rec = do(t, e, http.MethodPost, "/api/auth/login", `{"username":"arjun","password":"pass"}`, "")
	expect(t, rec, http.StatusOK)
	login := decode[struct {
		Token string `json:"token"`
	}](t, rec)

	expect(t, do(t, e, http.MethodGet, "/api/admin/doctors", "", login.Token), http.StatusForbidden)
	expect(t, do(t, e, http.MethodGet, "/api/patient/profile/1", "", login.Token), http.StatusOK)

	rec = do(t, e, http.MethodGet, "/api/auth/me", "", login.Token)
	expect(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"role":"Patient"`) {
		t.Fatalf("unexpected session %s", rec.Body.String())
	}
}

func TestRoutesOpenByDefault(t *testing.T) {
	e := newTestServer(t, false)

	expect(t, do(t, e, http.MethodGet, "/api/admin/doctors", "", ""), http.StatusOK)
	expect(t, do(t, e, http.MethodGet, "/api/auth/me", "", ""), http.StatusUnauthorized)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
