package server

import (
	"github.com/Gyan0205/hospital-management/cmd/internal/config"
	"github.com/Gyan0205/hospital-management/cmd/internal/domain/database/repository"
	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/Gyan0205/hospital-management/cmd/internal/routes"
	"github.com/Gyan0205/hospital-management/cmd/internal/service"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/token"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// New wires repositories, services and routes over db. A nil cache serves
// availability straight from the store.
func New(cfg *config.Config, db *gorm.DB, cache service.AvailabilityCache) *echo.Echo {
	validate := validator.New()
	validators.Register(validate)

	secret := cfg.TokenSecret()
	if secret == "" {
		log.Warn("JWT_SECRET is not set, login tokens will not survive a restart")
		secret = uuid.NewString()
	}
	issuer := token.NewIssuer(secret, cfg.Auth.TokenTTL)

	// Getting repositories
	tx := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)
	availRepo := repository.NewAvailabilityRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Getting services
	availService := service.NewAvailabilityService(availRepo, cache, validate)
	authService := service.NewAuthService(userRepo, doctorRepo, patientRepo, issuer, tx, validate)
	apptService := service.NewAppointmentService(apptRepo, availRepo, patientRepo, historyRepo, tx, validate)
	patientService := service.NewPatientService(patientRepo, userRepo, tx, validate)
	doctorService := service.NewDoctorService(doctorRepo, userRepo, availService, tx, validate, cfg.DefaultDoctorPassword)
	departmentService := service.NewDepartmentService(departmentRepo, doctorRepo, tx, validate)
	historyService := service.NewHistoryService(historyRepo, patientRepo)
	dashboardService := service.NewDashboardService(apptRepo, doctorRepo, patientRepo, departmentRepo, tx)

	h := &handlers{
		auth:         routes.NewAuthDefault(authService),
		appointments: routes.NewAppointmentDefault(apptService),
		availability: routes.NewAvailabilityDefault(availService),
		patients:     routes.NewPatientDefault(patientService),
		doctors:      routes.NewDoctorDefault(doctorService),
		departments:  routes.NewDepartmentDefault(departmentService),
		reports:      routes.NewReportDefault(historyService, dashboardService),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.CORSOrigins}))

	gate := func(roles ...entity.Role) []echo.MiddlewareFunc {
		if !cfg.Auth.Enforced {
			return nil
		}
		return []echo.MiddlewareFunc{routes.RoleGate(issuer, roles...)}
	}

	register(e, h, issuer, gate)
	return e
}

type handlers struct {
	auth         *routes.DefaultAuthRoute
	appointments *routes.DefaultAppointmentRoute
	availability *routes.DefaultAvailabilityRoute
	patients     *routes.DefaultPatientRoute
	doctors      *routes.DefaultDoctorRoute
	departments  *routes.DefaultDepartmentRoute
	reports      *routes.DefaultReportRoute
}

func register(e *echo.Echo, h *handlers, parser routes.TokenParser, gate func(roles ...entity.Role) []echo.MiddlewareFunc) {
	// Auth
	auth := e.Group("/api/auth")
	auth.POST("/login", h.auth.CreateLogin)
	auth.POST("/register", h.auth.Register)
	auth.GET("/me", h.auth.Me, routes.RoleGate(parser, entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient))

	// Patient portal
	patient := e.Group("/api/patient", gate(entity.RolePatient, entity.RoleAdmin)...)
	patient.GET("/profile/:id", h.patients.GetProfile)
	patient.PUT("/profile/:id", h.patients.UpdateProfile)
	patient.GET("/appointments/:id", h.appointments.GetPatientAppointments)
	patient.POST("/appointments/book", h.appointments.BookAppointment)
	patient.PUT("/appointments/:id/cancel", h.appointments.CancelAppointment)
	patient.GET("/history/:id", h.reports.GetPatientHistory)
	patient.GET("/history/:id/export", h.reports.ExportPatientHistory)
	patient.GET("/dashboard/:id/summary", h.reports.GetPatientSummary)
	patient.GET("/doctor/:id", h.doctors.GetDoctorDetails)

	// Doctor portal
	doctor := e.Group("/api/doctor", gate(entity.RoleDoctor, entity.RoleAdmin)...)
	doctor.GET("/appointments/:id", h.appointments.GetDoctorAppointments)
	doctor.PUT("/appointments/:id/status", h.appointments.UpdateStatus)
	doctor.POST("/appointments/:id/history", h.appointments.RecordHistory)
	doctor.GET("/patients/:id/history", h.reports.GetPatientHistory)
	doctor.GET("/dashboard/:id/summary", h.reports.GetDoctorSummary)
	doctor.GET("/:id/availability", h.availability.GetAvailability)
	doctor.POST("/:id/availability", h.availability.AddAvailability)
	doctor.PUT("/availability/:id", h.availability.UpdateAvailability)
	doctor.DELETE("/availability/:id", h.availability.DeleteAvailability)

	// Admin console
	admin := e.Group("/api/admin", gate(entity.RoleAdmin)...)
	admin.GET("/doctors", h.doctors.GetDoctors)
	admin.GET("/doctors/search", h.doctors.SearchDoctors)
	admin.POST("/doctors", h.doctors.CreateDoctor)
	admin.PUT("/doctors/:id", h.doctors.UpdateDoctor)
	admin.PUT("/doctors/:id/blacklist", h.doctors.SetBlacklist)
	admin.DELETE("/doctors/:id", h.doctors.DeleteDoctor)

	admin.GET("/patients", h.patients.GetPatients)
	admin.GET("/patients/search", h.patients.SearchPatients)
	admin.PUT("/patients/:id", h.patients.UpdatePatient)
	admin.PUT("/patients/:id/blacklist", h.patients.SetBlacklist)
	admin.DELETE("/patients/:id", h.patients.DeletePatient)
	admin.GET("/patients/:id/history", h.reports.GetPatientHistory)

	admin.GET("/departments", h.departments.GetDepartments)
	admin.POST("/departments", h.departments.CreateDepartment)
	admin.PUT("/departments/:id", h.departments.UpdateDepartment)
	admin.DELETE("/departments/:id", h.departments.DeleteDepartment)

	admin.GET("/appointments", h.appointments.GetAllAppointments)
	admin.PUT("/appointments/:id/status", h.appointments.AdminUpdateStatus)

	admin.GET("/dashboard/summary", h.reports.GetAdminSummary)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				log.Errorf("%s %s %d %s request_id=%s: %v", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error)
				return nil
			}
			log.Infof("%s %s %d %s request_id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	})
}
