package questionnaire

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JaimeStill/brand-lab/internal/analysis"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	v.RegisterValidation("personality", func(fl validator.FieldLevel) bool {
		return analysis.IsPersonality(fl.Field().String())
	})
	v.RegisterValidation("style", func(fl validator.FieldLevel) bool {
		return analysis.IsStyle(fl.Field().String())
	})
	v.RegisterValidation("features", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// FieldError describes one failed field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists every field that failed validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "invalid questionnaire: " + strings.Join(parts, "; ")
}

// Fields returns the names of the failed fields in order.
func (v ValidationErrors) Fields() []string {
	names := make([]string, len(v))
	for i, fe := range v {
		names[i] = fe.Field
	}
	return names
}

// Validate checks q against the questionnaire rules. It returns
// ValidationErrors naming every failing field.
func (q *Questionnaire) Validate() error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "personality":
		return "must be one of " + strings.Join(analysis.Personalities, ", ")
	case "style":
		return "must be one of " + strings.Join(analysis.Styles, ", ")
	case "features":
		return "must list at least one feature"
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}
