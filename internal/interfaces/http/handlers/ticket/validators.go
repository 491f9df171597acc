package ticket

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "tansy/internal/domain/ticket/valueobjects"
)

// RegisterValidations wires the ticket enum checks into gin's binding
// engine so bad enum values are rejected at the request boundary with
// a field-level message instead of reaching the store's CHECK
// constraint.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
		return vo.Status(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("ticketpriority", func(fl validator.FieldLevel) bool {
		return vo.Priority(fl.Field().String()).IsValid()
	})
}
