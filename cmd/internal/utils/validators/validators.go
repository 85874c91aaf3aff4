package validators

import (
	"reflect"
	"strings"

	"github.com/Gyan0205/hospital-management/cmd/internal/scheduling"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom tags and makes errors report json field names.
func Register(validate *validator.Validate) {
	validate.RegisterTagNameFunc(jsonName)
	_ = validate.RegisterValidation("weekday", IsWeekday)
	_ = validate.RegisterValidation("clock", IsClock)
	_ = validate.RegisterValidation("nospaces", NoWhiteSpaces)
}

func IsWeekday(fl validator.FieldLevel) bool {
	return scheduling.IsWeekday(fl.Field().String())
}

func IsClock(fl validator.FieldLevel) bool {
	return scheduling.IsClock(fl.Field().String())
}

func NoWhiteSpaces(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), " \t\n\r")
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
