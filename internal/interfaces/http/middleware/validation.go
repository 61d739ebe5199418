package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ponsiv/backend/internal/domain/engagement"
)

// SetupValidator configures gin's validator with custom tags. Must be
// called once before the engine starts serving requests.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use json/form tag names for field names in binding errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("interaction_kind", func(fl validator.FieldLevel) bool {
		return engagement.Kind(fl.Field().String()).IsValid()
	})
}
