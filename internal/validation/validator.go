package validation

import "github.com/go-playground/validator/v10"

// RequestValidator plugs go-playground/validator into echo's Validator slot.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
