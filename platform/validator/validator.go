// Package validator provides validation infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// TagCityName is the tag of the place-name rule.
const TagCityName = "cityname"

const maxCityNameRunes = 100

// Validator wraps the go-playground validator for structured validation.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator instance with the custom rules registered.
func New() *Validator {
	v := validator.New()
	if err := Register(v); err != nil {
		panic("register validation rules: " + err.Error())
	}
	return &Validator{v: v}
}

// Register adds the custom rules to an existing engine, such as the one
// behind gin's binding package.
func Register(v *validator.Validate) error {
	return v.RegisterValidation(TagCityName, cityName)
}

// Struct validates a struct based on validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single variable against a tag.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// CityName validates a free-text place query.
func (val *Validator) CityName(name string) error {
	return val.v.Var(name, "required,"+TagCityName)
}

// cityName accepts any non-blank text up to 100 runes without control
// characters. Whether the place exists is for the geocoder to decide.
func cityName(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" || utf8.RuneCountInString(s) > maxCityNameRunes {
		return false
	}
	return strings.IndexFunc(s, unicode.IsControl) < 0
}
