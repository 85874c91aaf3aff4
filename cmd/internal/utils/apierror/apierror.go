package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what every service returns in place of a plain error.
// It is rendered as the JSON body, with Code as the HTTP status.
type ErrorResponse interface {
	error
	Code() int
}

type SimpleError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *SimpleError) Error() string { return e.Message }
func (e *SimpleError) Code() int     { return e.Status }

// SlotsError is a rejected booking that lists the windows the doctor does offer.
type SlotsError struct {
	Status         int    `json:"-"`
	Message        string `json:"error"`
	AvailableSlots any    `json:"available_slots"`
}

func (e *SlotsError) Error() string { return e.Message }
func (e *SlotsError) Code() int     { return e.Status }

func NewSimple(code int, message string) *SimpleError {
	return &SimpleError{Status: code, Message: message}
}

func NewSlots(code int, message string, slots any) *SlotsError {
	return &SlotsError{Status: code, Message: message, AvailableSlots: slots}
}

func NewMissingParamError(name string) *SimpleError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter '%s'", name))
}

func NewInvalidParamTypeError(name, typ string) *SimpleError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter '%s' must be of type %s", name, typ))
}

func NewNotFoundError(what string) *SimpleError {
	return NewSimple(http.StatusNotFound, what+" not found")
}

// FromValidationError turns validator failures into a 400. A missing required
// field is reported with missingMsg; any other failure names the first
// offending field.
func FromValidationError(err error, missingMsg string) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MalformedBodyError
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return NewSimple(http.StatusBadRequest, missingMsg)
		}
	}
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Invalid %s", verrs[0].Field()))
}

// As extracts an ErrorResponse from an error chain, typically one returned
// out of a transaction callback.
func As(err error) (ErrorResponse, bool) {
	var apierr ErrorResponse
	if errors.As(err, &apierr) {
		return apierr, true
	}
	return nil, false
}

var (
	InternalServerError   = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError    = NewSimple(http.StatusBadRequest, "Malformed request body")
	InvalidAuthTokenError = NewSimple(http.StatusUnauthorized, "Missing or invalid auth token")
	RoleNotAllowedError   = NewSimple(http.StatusForbidden, "Role is not allowed to use this endpoint")
	NoValidFieldsError    = NewSimple(http.StatusBadRequest, "No valid fields provided")

	InvalidCredentialsError  = NewSimple(http.StatusUnauthorized, "Invalid credentials")
	DoctorBlacklistedError   = NewSimple(http.StatusForbidden, "Doctor account is blacklisted. Contact admin.")
	PatientBlacklistedError  = NewSimple(http.StatusForbidden, "Patient account is blacklisted. Contact admin.")
	UserAlreadyExistsError   = NewSimple(http.StatusConflict, "Username already exists")
	DoctorEmailInUseError    = NewSimple(http.StatusBadRequest, "A user with this email already exists")
	InvalidBlacklistStatus   = NewSimple(http.StatusBadRequest, "Invalid status value")
	InvalidDateFormatError   = NewSimple(http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD HH:MM")
	BookingBlacklistedError  = NewSimple(http.StatusForbidden, "Patient account is blacklisted")
	InvalidAppointmentStatus = NewSimple(http.StatusBadRequest, "Invalid status")
	StatusRequiredError      = NewSimple(http.StatusBadRequest, "Status is required")

	PatientNotFoundError    = NewNotFoundError("Patient")
	DoctorNotFoundError     = NewNotFoundError("Doctor")
	DepartmentNotFoundError = NewNotFoundError("Department")
)
