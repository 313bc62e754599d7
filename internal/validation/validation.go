package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so error messages match the wire
	// format, not the Go struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors aggregates per-field validation failures for one request.
type FieldErrors struct {
	Messages []string
}

func (e *FieldErrors) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Struct validates v and returns a *FieldErrors carrying one message
// per failed field, or nil if everything passed.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fe := &FieldErrors{}
	for _, ve := range verrs {
		fe.Messages = append(fe.Messages, message(ve))
	}
	return fe
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", ve.Field())
	case "min":
		return fmt.Sprintf("%s must not be empty.", ve.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", ve.Field(), ve.Param())
	default:
		return fmt.Sprintf("%s is invalid.", ve.Field())
	}
}
