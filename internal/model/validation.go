package model

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom binding rules on gin's validator
// engine. Must be called once before serving requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
		return ValidSpecialty(fl.Field().String())
	})
}
