package validator

import (
	"reflect"
	"regexp"
	"strings"

	"clinic-manager/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// looseEmailPattern only asks for something on both sides of an "@"; the
// API applies its own stricter check.
var looseEmailPattern = regexp.MustCompile(`^\S+@\S+$`)

type CustomValidator struct {
	validator *validator.Validate
	messages  map[string]string
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields under their JSON names so they line up with API issues
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("specialisation", func(fl validator.FieldLevel) bool {
		return entity.IsValidSpecialisation(fl.Field().String())
	})

	return &CustomValidator{
		validator: v,
		messages:  make(map[string]string),
	}
}

// RegisterMessages sets user-facing messages keyed by "field" or
// "field.tag". The more specific key wins.
func (cv *CustomValidator) RegisterMessages(messages map[string]string) {
	for key, msg := range messages {
		cv.messages[key] = msg
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors returns one message per failing field.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			if _, seen := errors[field]; seen {
				continue
			}
			if msg, ok := cv.messages[field+"."+e.Tag()]; ok {
				errors[field] = msg
				continue
			}
			if msg, ok := cv.messages[field]; ok {
				errors[field] = msg
				continue
			}
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email", "loose_email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "len":
				errors[field] = field + " must be exactly " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "calendar_date":
				errors[field] = field + " must be a valid date"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
