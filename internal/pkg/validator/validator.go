package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pratik-mahalle/calendrical/pkg/datetime"
)

// Validator wraps go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// New creates a new validator instance with the calendar tags registered:
// instant, local_date, local_datetime, period, date_period and unit.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range map[string]validator.Func{
		"instant":        parses(datetime.ParseInstant),
		"local_date":     parses(datetime.ParseLocalDate),
		"local_datetime": parses(datetime.ParseLocalDateTime),
		"period":         parses(datetime.ParseDateTimePeriod),
		"date_period":    parses(datetime.ParseDatePeriod),
		"unit":           parses(datetime.ParseDateTimeUnit),
	} {
		// only fails for an empty tag or a nil func
		_ = v.RegisterValidation(tag, fn)
	}

	return &Validator{
		validate: v,
	}
}

func parses[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}

// Validate validates a struct
func (v *Validator) Validate(i interface{}) []ValidationError {
	var validationErrors []ValidationError

	err := v.validate.Struct(i)
	if err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []ValidationError{{Message: err.Error()}}
		}
		for _, fe := range fieldErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Value:   fmt.Sprintf("%v", fe.Value()),
				Message: msgForTag(fe),
			})
		}
	}

	return validationErrors
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "instant":
		return fmt.Sprintf("%s must be an ISO-8601 instant with an offset, e.g. 2021-03-28T01:30:00Z", field)
	case "local_date":
		return fmt.Sprintf("%s must be an ISO-8601 date, e.g. 2021-03-28", field)
	case "local_datetime":
		return fmt.Sprintf("%s must be an ISO-8601 local date-time, e.g. 2021-03-28T02:30", field)
	case "period":
		return fmt.Sprintf("%s must be an ISO-8601 period, e.g. P1M2DT3H", field)
	case "date_period":
		return fmt.Sprintf("%s must be an ISO-8601 date period, e.g. P1Y2M3D", field)
	case "unit":
		return fmt.Sprintf("%s must be a unit such as HOUR, DAY or 3-MONTH", field)
	default:
		return fmt.Sprintf("%s failed validation for tag: %s", field, fe.Tag())
	}
}

var globalValidator *Validator

// Init initializes the global validator
func Init() {
	globalValidator = New()
}

// Validate validates a struct using the global validator
func Validate(i interface{}) []ValidationError {
	if globalValidator == nil {
		Init()
	}
	return globalValidator.Validate(i)
}
