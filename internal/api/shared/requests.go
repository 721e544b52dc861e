package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/domain"
)

// ErrInvalidBody is returned by DecodeJSON for bodies that are not JSON.
var ErrInvalidBody = errors.New("invalid request body")

// validate is shared by all handlers; validator caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into v. An empty body decodes to the
// zero value so that field validation reports what is missing. A value of
// the wrong JSON type is reported as a domain.ValidationErrors on that
// field; any other malformed body yields ErrInvalidBody.
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewValidationError(typeErr.Field, typeMessage(typeErr.Field, typeErr.Type))
	}
	return fmt.Errorf("%w: %w", ErrInvalidBody, err)
}

func typeMessage(field string, t reflect.Type) string {
	attr := attribute(field)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return fmt.Sprintf("The %s field must be a string.", attr)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("The %s field must be an integer.", attr)
	case reflect.Bool:
		return fmt.Sprintf("The %s field must be true or false.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}

// ValidateRequest validates v's struct tags and returns the failures as a
// domain.ValidationErrors keyed by JSON field name.
func ValidateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := domain.ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), TranslateFieldError(fe))
	}
	return errs
}

// TranslateFieldError renders a validator failure as a client-facing message.
func TranslateFieldError(fe validator.FieldError) string {
	attr := attribute(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", attr)
	case "min":
		if isString && fe.Param() == "1" {
			return fmt.Sprintf("The %s field is required.", attr)
		}
		if isString {
			return fmt.Sprintf("The %s field must be at least %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", attr, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", attr, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s field confirmation does not match.", attr)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", attr)
	case "datetime":
		return fmt.Sprintf("The %s field must match the format Y-m-d.", attr)
	case "number", "numeric":
		return fmt.Sprintf("The %s field must be an integer.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}

func attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
