package validation

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
)

// RegisterValidators adds the bucode and priority binding tags to v.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("bucode", func(fl validator.FieldLevel) bool {
		return domain.BusinessUnit(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return domain.Priority(fl.Field().String()).Valid()
	})
}

// FailedOn reports whether err is a validation failure of the named struct field.
func FailedOn(err error, field string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.StructField() == field {
			return true
		}
	}
	return false
}

// RegisterBindingValidators installs the custom tags on gin's default binding engine.
func RegisterBindingValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a go-playground validator")
	}
	return RegisterValidators(v)
}
