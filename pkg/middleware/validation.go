package middleware

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// InitValidator initializes the validator with custom validators
func InitValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		registerCustom(validate)

		// Also register on Gin's binding validator so `binding` tags pick
		// up the custom rules.
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustom(v)
		}
	})

	return validate
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		return InitValidator()
	}
	return validate
}

func registerCustom(v *validator.Validate) {
	_ = v.RegisterValidation("sku", validateSKU)
	_ = v.RegisterValidation("adjustment_type", validateAdjustmentType)
	_ = v.RegisterValidation("object_id", validateObjectID)

	// Use JSON tag names for error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
}

var (
	skuRegex      = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{1,49}$`)
	objectIDRegex = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)
)

func validateSKU(fl validator.FieldLevel) bool {
	return skuRegex.MatchString(fl.Field().String())
}

func validateObjectID(fl validator.FieldLevel) bool {
	return objectIDRegex.MatchString(fl.Field().String())
}

func validateAdjustmentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "damage", "theft", "return", "correction", "initial_count", "supplier_return":
		return true
	}
	return false
}
