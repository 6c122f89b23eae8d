package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fibernet/internal/domain/customer"
	"fibernet/internal/shared/authorization"
)

// RegisterValidators installs the custom binding validators used by
// the request structs in this package. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		_, ok := authorization.ParseRole(fl.Field().String())
		return ok
	})
	v.RegisterValidation("connectiontype", func(fl validator.FieldLevel) bool {
		return customer.ConnectionType(fl.Field().String()).IsValid()
	})
}
