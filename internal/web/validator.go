package web

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate    *validator.Validate
	pokeNameRgx = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("pokename", validatePokeName)
}

func validatePokeName(fl validator.FieldLevel) bool {
	return pokeNameRgx.MatchString(fl.Field().String())
}

// DetailsQuery is the query string of the details screen.
type DetailsQuery struct {
	Name string `validate:"omitempty,max=100,pokename"`
}

// normalizeName trims and lower-cases an identifier the way the catalog
// expects it.
func normalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (q DetailsQuery) Validate() error {
	return validate.Struct(q)
}
