// Package validate wraps go-playground/validator with the custom tags used
// by the config file and the API payloads.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// FieldError describes one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
}

// Errors is a collection of field errors
type Errors []FieldError

// Error implements the error interface
func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Message)
	}
	return strings.Join(messages, "; ")
}

var (
	hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	phoneRe    = regexp.MustCompile(`^[0-9+()\- ]*$`)
)

// New creates a validator. Field names in messages come from the yaml tag,
// then the json tag, then the Go name.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"yaml", "json"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("hexcolor6", validateHexColor)
	_ = v.RegisterValidation("phone", validatePhone)

	return &Validator{validate: v}
}

// Struct validates s and returns Errors on failure
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: msgForTag(fe),
			Tag:     fe.Tag(),
		})
	}
	return out
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must contain at least %s items", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port", field)
	case "loglevel":
		return fmt.Sprintf("%s must be one of DEBUG, INFO, WARN, ERROR", field)
	case "hexcolor6":
		return fmt.Sprintf("%s must look like #RRGGBB", field)
	case "phone":
		return fmt.Sprintf("%s may only contain digits, spaces and +-()", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch strings.ToUpper(strings.TrimSpace(fl.Field().String())) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
		return true
	}
	return false
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRe.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRe.MatchString(fl.Field().String())
}
