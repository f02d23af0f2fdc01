package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kakeibo-app/backend/internal/i18n"
	"golang.org/x/exp/slices"
)

// RecordCreate is the payload for creating a record. All fields are pointers
// so that a missing field can be told apart from a zero value.
type RecordCreate struct {
	Amount      *int64      `json:"amount" validate:"required,min=1" example:"1200"`
	Description *string     `json:"description" validate:"required,min=1" example:"ランチ"`
	Category    *string     `json:"category" validate:"required,min=1" example:"食費"`
	Type        *RecordType `json:"type" validate:"required,oneof=expense income" example:"expense"`
}

// RecordUpdate is the payload for a partial update. Fields that are nil
// are left untouched.
type RecordUpdate struct {
	Amount      *int64      `json:"amount,omitempty" validate:"omitnil,min=1" example:"1500"`
	Description *string     `json:"description,omitempty" validate:"omitnil,min=1" example:"ディナー"`
	Category    *string     `json:"category,omitempty" validate:"omitnil,min=1" example:"娯楽"`
	Type        *RecordType `json:"type,omitempty" validate:"omitnil,oneof=expense income" example:"income"`
}

// recordFields is the order in which field errors are reported.
var recordFields = []string{"amount", "description", "category", "type"}

// FieldError is a violated rule for a single field.
type FieldError struct {
	Field   string `json:"field" example:"amount"`
	Message string `json:"message" example:"the amount must be at least 1 yen"`
}

// ValidationError lists every field of a payload that violates a rule.
// Messages are i18n message keys.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}

	return "invalid record: " + strings.Join(parts, ", ")
}

// Has reports if the error contains a violation for the field.
func (e *ValidationError) Has(field string) bool {
	return slices.ContainsFunc(e.Fields, func(f FieldError) bool {
		return f.Field == field
	})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields with the name used in the API
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateCreate validates a creation payload.
func ValidateCreate(payload RecordCreate) (RecordFields, error) {
	invalid := violations(validate.Struct(payload))
	if len(invalid) > 0 {
		return RecordFields{}, collect(invalid)
	}

	return RecordFields{
		Amount:      *payload.Amount,
		Description: *payload.Description,
		Category:    *payload.Category,
		Type:        *payload.Type,
	}, nil
}

// ValidatePartialUpdate validates the fields set in an update payload.
// An empty payload is valid.
//
// present are the JSON keys contained in the request body. A present key
// with a nil field was sent as null, which is a violation.
func ValidatePartialUpdate(payload RecordUpdate, present ...string) (RecordUpdate, error) {
	invalid := violations(validate.Struct(payload))

	nilFields := map[string]bool{
		"amount":      payload.Amount == nil,
		"description": payload.Description == nil,
		"category":    payload.Category == nil,
		"type":        payload.Type == nil,
	}

	for _, field := range present {
		if nilFields[field] {
			invalid[field] = i18n.MsgFieldNull
		}
	}

	if len(invalid) > 0 {
		return RecordUpdate{}, collect(invalid)
	}

	return payload, nil
}

// violations maps the field names of validator errors to their message key.
func violations(err error) map[string]string {
	result := make(map[string]string)

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return result
	}

	for _, e := range errs {
		result[e.Field()] = message(e)
	}

	return result
}

func message(e validator.FieldError) string {
	switch e.Field() {
	case "amount":
		return i18n.MsgAmountMin
	case "description":
		return i18n.MsgDescriptionMissing
	case "category":
		return i18n.MsgCategoryMissing
	case "type":
		if e.Tag() == "required" {
			return i18n.MsgTypeMissing
		}
		return i18n.MsgTypeInvalid
	}

	return i18n.MsgFieldInvalid
}

func collect(invalid map[string]string) *ValidationError {
	e := &ValidationError{}
	for _, field := range recordFields {
		if msg, ok := invalid[field]; ok {
			e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
		}
	}

	return e
}
