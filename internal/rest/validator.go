package rest

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding rules the request DTOs use.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notfuture", notFuture)
	}
}

// notFuture rejects visited dates after today; a trip can't be blogged
// before it happened.
func notFuture(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	t, err := time.Parse(visitedDateFormat, s)
	if err != nil {
		return false
	}
	return !t.After(time.Now())
}
