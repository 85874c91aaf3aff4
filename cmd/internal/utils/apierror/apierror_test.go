package apierror

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
)

type probe struct {
	Name string `validate:"required"`
	Age  int    `validate:"max=150"`
}

func TestFromValidationError(t *testing.T) {
	v := validator.New()

	err := FromValidationError(v.Struct(&probe{Age: 1}), "Missing required fields")
	if err.Code() != http.StatusBadRequest || err.Error() != "Missing required fields" {
		t.Errorf("unexpected response for missing field: %d %q", err.Code(), err.Error())
	}

	err = FromValidationError(v.Struct(&probe{Name: "x", Age: 200}), "Missing required fields")
	if err.Error() != "Invalid Age" {
		t.Errorf("expected field error, got %q", err.Error())
	}

	err = FromValidationError(fmt.Errorf("not a validation error"), "x")
	if err != MalformedBodyError {
		t.Errorf("expected malformed body error, got %v", err)
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("tx: %w", PatientNotFoundError)
	got, ok := As(wrapped)
	if !ok || got.Code() != http.StatusNotFound {
		t.Fatalf("expected to unwrap not found, got %v %v", got, ok)
	}

	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("expected plain error not to match")
	}
}
