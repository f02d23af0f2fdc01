package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/i18n"
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/rs/zerolog/log"
)

var (
	errCleanupConfirmation = errors.New(i18n.MsgCleanupConfirmation)
	errNoFilePost          = errors.New(i18n.MsgNoFile)
	errWrongFileType       = errors.New(i18n.MsgWrongFileType)
	errInvalidTimeWindow   = errors.New(i18n.MsgInvalidTimeWindow)
	errInvalidTimeZone     = errors.New(i18n.MsgInvalidTimeZone)
)

// clientErrors are the errors whose message is shown to the user as is.
var clientErrors = []error{
	httputil.ErrInvalidID,
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	errCleanupConfirmation,
	errNoFilePost,
	errWrongFileType,
	errInvalidTimeWindow,
	errInvalidTimeZone,
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	var validationError *models.ValidationError
	if errors.As(err, &validationError) {
		return http.StatusBadRequest
	}

	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// typeError converts a JSON type error into a validation error for
// the field. It returns nil for all other errors.
func typeError(err error) *models.ValidationError {
	var jsonUnmarshalTypeError *json.UnmarshalTypeError
	if !errors.As(err, &jsonUnmarshalTypeError) || jsonUnmarshalTypeError.Field == "" {
		return nil
	}

	message := i18n.MsgFieldInvalid
	if jsonUnmarshalTypeError.Field == "amount" {
		message = i18n.MsgAmountInvalid
	}

	return &models.ValidationError{
		Fields: []models.FieldError{{Field: jsonUnmarshalTypeError.Field, Message: message}},
	}
}

// withTypeError adds the type violation to the result of a validation.
// The type violation replaces any other violation of the same field.
func withTypeError(err error, typeErr *models.ValidationError) error {
	if typeErr == nil {
		return err
	}

	var validationError *models.ValidationError
	if !errors.As(err, &validationError) {
		return typeErr
	}

	merged := &models.ValidationError{}
	for _, f := range validationError.Fields {
		for _, t := range typeErr.Fields {
			if t.Field == f.Field {
				f.Message = t.Message
			}
		}
		merged.Fields = append(merged.Fields, f)
	}

	for _, t := range typeErr.Fields {
		if !merged.Has(t.Field) {
			merged.Fields = append(merged.Fields, t)
		}
	}

	return merged
}

// fail sends the error response for err.
//
// Server errors are logged and reported with the failure message of the
// operation, their details are never sent to the client.
func fail(c *gin.Context, err error, failure string) {
	code := status(err)

	var validationError *models.ValidationError
	switch {
	case code == http.StatusInternalServerError:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		httputil.NewError(c, code, failure)

	case code == http.StatusNotFound:
		httputil.NewError(c, code, i18n.MsgRecordNotFound)

	case errors.As(err, &validationError):
		p := i18n.Printer(c)

		fields := make([]httputil.FieldError, 0, len(validationError.Fields))
		for _, f := range validationError.Fields {
			fields = append(fields, httputil.FieldError{
				Field:   f.Field,
				Message: p.Sprintf(f.Message),
			})
		}

		httputil.NewError(c, code, i18n.MsgInvalidInput, fields...)

	default:
		httputil.NewError(c, code, err.Error())
	}
}
