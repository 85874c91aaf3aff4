package utils

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/Gyan0205/hospital-management/cmd/internal/utils/apierror"
	"github.com/Gyan0205/hospital-management/cmd/internal/utils/token"
	"github.com/labstack/echo/v4"
)

// TokenDataKey is where the role gate stores parsed claims on the echo context.
const TokenDataKey = "token_data"

var ErrNoTokenData = errors.New("no token data on context")

func ParseTokenDataCtx(c echo.Context) (*token.Claims, error) {
	claims, ok := c.Get(TokenDataKey).(*token.Claims)
	if !ok || claims == nil {
		return nil, ErrNoTokenData
	}
	return claims, nil
}

// ParamID reads a positive integer path parameter.
func ParamID(c echo.Context, name string) (int, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, apierror.NewMissingParamError(name)
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apierror.NewInvalidParamTypeError(name, "positive integer")
	}
	return id, nil
}

// Sanitize trims every string, *string and []string field of the struct o points to.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
