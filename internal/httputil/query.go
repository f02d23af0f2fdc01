package httputil

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetBodyFields returns the top level JSON keys that are set in the
// request body, including keys with a null value.
//
// This function reads and copies the request body, it must always
// be called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context) ([]string, error) {
	// Copy the body to be able to use it multiple times
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	// Parse the body into a map to have all fields available
	var mapBody map[string]json.RawMessage
	if err := json.Unmarshal(body, &mapBody); err != nil || mapBody == nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err)
		return nil, ErrInvalidBody
	}

	fields := make([]string, 0, len(mapBody))
	for key := range mapBody {
		fields = append(fields, key)
	}

	return fields, nil
}
