package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gyan0205/hospital-management/cmd/internal/utils/token"
	"github.com/labstack/echo/v4"
)

func TestSanitize(t *testing.T) {
	note := "  take with water "
	req := struct {
		Name  string
		Note  *string
		Tags  []string
		Count int
	}{Name: " Arjun ", Note: &note, Tags: []string{" a", "b "}, Count: 2}

	Sanitize(&req)

	if req.Name != "Arjun" || *req.Note != "take with water" || req.Tags[0] != "a" || req.Tags[1] != "b" {
		t.Errorf("unexpected result %+v (note %q)", req, *req.Note)
	}
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Sanitize(struct{}{})
}

func TestParamID(t *testing.T) {
	e := echo.New()
	tests := []struct {
		value    string
		wantID   int
		wantCode int
	}{
		{"12", 12, 0},
		{"", 0, http.StatusBadRequest},
		{"abc", 0, http.StatusBadRequest},
		{"-1", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(tt.value)

		id, apierr := ParamID(c, "id")
		if tt.wantCode == 0 {
			if apierr != nil || id != tt.wantID {
				t.Errorf("%q: got %d %v", tt.value, id, apierr)
			}
			continue
		}
		if apierr == nil || apierr.Code() != tt.wantCode {
			t.Errorf("%q: expected code %d, got %v", tt.value, tt.wantCode, apierr)
		}
	}
}

func TestParseTokenDataCtx(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, err := ParseTokenDataCtx(c); err == nil {
		t.Error("expected error without claims")
	}

	c.Set(TokenDataKey, &token.Claims{Role: "Admin"})
	claims, err := ParseTokenDataCtx(c)
	if err != nil || claims.Role != "Admin" {
		t.Errorf("unexpected %v %v", claims, err)
	}
}
