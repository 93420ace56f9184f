package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/mma_web/internal/utils/accounting"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags used by the DTOs:
//
//	amount: an amount field as typed, digits with at most one '.'; empty is allowed.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("gin validator engine is not go-playground/validator")
		}
		if err := v.RegisterValidation("amount", validateAmount); err != nil {
			panic(fmt.Sprintf("register amount validator: %v", err))
		}
	})
}

func validateAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	return accounting.SanitizeKeystroke(raw) == raw
}
