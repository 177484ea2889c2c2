package analysis

import (
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		return IsHexColor(fl.Field().String())
	})
	v.RegisterValidation("personality", func(fl validator.FieldLevel) bool {
		return IsPersonality(fl.Field().String())
	})
	v.RegisterValidation("style", func(fl validator.FieldLevel) bool {
		return IsStyle(fl.Field().String())
	})
	return v
}

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}

// IsPersonality reports whether s is one of Personalities.
func IsPersonality(s string) bool {
	return slices.Contains(Personalities, s)
}

// IsStyle reports whether s is one of Styles.
func IsStyle(s string) bool {
	return slices.Contains(Styles, s)
}

// Validate checks the structural contract of a decoded analysis.
func (a *BrandAnalysis) Validate() error {
	return validate.Struct(a)
}
