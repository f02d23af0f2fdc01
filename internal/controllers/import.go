package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/i18n"
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
)

// importPattern is the file name pattern for imports
const importPattern = "*.json"

// importRecord is a record in an export file.
type importRecord struct {
	models.RecordCreate
	Date time.Time `json:"date"`
}

func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsImport)
	r.POST("", co.Import)
}

// getUploadedFile returns the content of the form file and handles potential errors.
func getUploadedFile(c *gin.Context) ([]byte, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !glob.Glob(importPattern, formFile.Filename) {
		return nil, errWrongFileType
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// parseImport splits an export file into its records. Files containing
// only the list of records are accepted, too.
func parseImport(content []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage

	content = bytes.TrimSpace(content)
	if bytes.HasPrefix(content, []byte("[")) {
		err := json.Unmarshal(content, &records)
		if err != nil {
			return nil, errWrongFileType
		}
		return records, nil
	}

	var file struct {
		Data *[]json.RawMessage `json:"data"`
	}

	err := json.Unmarshal(content, &file)
	if err != nil || file.Data == nil {
		return nil, errWrongFileType
	}

	return *file.Data, nil
}

// decodeImportRecord decodes and validates a single record of an import.
func decodeImportRecord(raw json.RawMessage) (models.Record, error) {
	var r importRecord

	err := json.Unmarshal(raw, &r)
	typeErr := typeError(err)
	if err != nil && typeErr == nil {
		return models.Record{}, errWrongFileType
	}

	fields, err := models.ValidateCreate(r.RecordCreate)
	err = withTypeError(err, typeErr)
	if err != nil {
		return models.Record{}, err
	}

	record := fields.Record()
	record.Date = r.Date.UTC()
	return record, nil
}

// validateImport decodes and validates all records of an import. Fields
// are reported with the index of the record.
func validateImport(raw []json.RawMessage) ([]models.Record, error) {
	result := make([]models.Record, 0, len(raw))
	invalid := &models.ValidationError{}

	for i, r := range raw {
		record, err := decodeImportRecord(r)

		var validationError *models.ValidationError
		if errors.As(err, &validationError) {
			for _, f := range validationError.Fields {
				invalid.Fields = append(invalid.Fields, models.FieldError{
					Field:   fmt.Sprintf("data[%d].%s", i, f.Field),
					Message: f.Message,
				})
			}
			continue
		} else if err != nil {
			return nil, err
		}

		result = append(result, record)
	}

	if len(invalid.Fields) > 0 {
		return nil, invalid
	}

	return result, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import & Export
// @Success		204
// @Router			/import [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import
// @Description	Imports a file created by the export. Records that already exist are skipped. If any record is invalid, nothing is imported.
// @Tags			Import & Export
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			file	formData	file	true	"File to import"
// @Router			/import [post]
func (co Controller) Import(c *gin.Context) {
	content, err := getUploadedFile(c)
	if err != nil {
		if status(err) == http.StatusInternalServerError {
			log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			err = errNoFilePost
		}
		fail(c, err, i18n.MsgImportFailed)
		return
	}

	parsed, err := parseImport(content)
	if err != nil {
		fail(c, err, i18n.MsgImportFailed)
		return
	}

	records, err := validateImport(parsed)
	if err != nil {
		fail(c, err, i18n.MsgImportFailed)
		return
	}

	created, skipped, err := co.Gateway.Import(c.Request.Context(), records)
	if err != nil {
		fail(c, err, i18n.MsgImportFailed)
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Int("created", created).Int("skipped", skipped).Msg("import")

	c.JSON(http.StatusOK, ImportResponse{
		Data: ImportResult{
			Created: created,
			Skipped: skipped,
		},
	})
}
