package validation

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	errors "github.com/budgetwise/expense-tracker/internal"
	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
)

type ValidatorFunc func(interface{}) string

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		switch v := value.(type) {
		case string:
			if v == "" {
				return "This field is required."
			}
		case *string:
			if v == nil || *v == "" {
				return "This field is required."
			}
		case *decimal.Decimal:
			if v == nil {
				return "This field is required."
			}
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if v, ok := value.(string); ok && len(v) > max {
			return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
		}
		return ""
	})
	return fv
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if v, ok := value.(string); ok && v != "" && !emailPattern.MatchString(v) {
			return "Enter a valid email address."
		}
		return ""
	})
	return fv
}

// NoSpaces enforces the username convention of underscores over spaces.
func (fv *FieldValidator) NoSpaces() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if v, ok := value.(string); ok && strings.Contains(v, " ") {
			return "Username must be separated by underscores instead of spaces."
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) Lowercase() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if v, ok := value.(string); ok && strings.ToLower(v) != v {
			return "Username must be in lowercase letters."
		}
		return ""
	})
	return fv
}

// Phone requires a parseable, valid E.164 number. Numbers without a leading
// country code are rejected because no default region is assumed.
func (fv *FieldValidator) Phone() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		v, ok := value.(string)
		if !ok || v == "" {
			return ""
		}
		parsed, err := phonenumbers.Parse(v, "")
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			return "Enter a valid phone number."
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) DecimalMin(min decimal.Decimal) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if v, ok := value.(*decimal.Decimal); ok && v != nil && v.LessThan(min) {
			return fmt.Sprintf("Ensure this value is greater than or equal to %s.", min.StringFixed(2))
		}
		return ""
	})
	return fv
}

// DecimalDigits mirrors a NUMERIC(maxDigits, places) column constraint.
func (fv *FieldValidator) DecimalDigits(maxDigits, places int32) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		v, ok := value.(*decimal.Decimal)
		if !ok || v == nil {
			return ""
		}
		if -v.Exponent() > places {
			return fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)
		}
		whole := v.Abs().Truncate(0)
		if int32(len(whole.String())) > maxDigits-places {
			return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places)
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) Custom(validator ValidatorFunc) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate runs every rule and folds failures into one field-scoped AppError.
// Multiple messages for the same field are joined with a space, matching the
// API's historical envelope.
func (v *ValidationBuilder) Validate() *errors.AppError {
	fieldErrors := make(map[string]string)

	for _, field := range v.fields {
		var msgs []string
		for _, validator := range field.Validators {
			if msg := validator(field.Value); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		if len(msgs) > 0 {
			if existing, ok := fieldErrors[field.FieldName]; ok {
				msgs = append([]string{existing}, msgs...)
			}
			fieldErrors[field.FieldName] = strings.Join(msgs, " ")
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}

	return &errors.AppError{
		Type:       errors.ErrorTypeValidation,
		Code:       errors.ErrCodeValidationFailed,
		Message:    "Validation failed",
		Kind:       errors.EnvelopeValidations,
		StatusCode: http.StatusBadRequest,
		Fields:     fieldErrors,
	}
}
