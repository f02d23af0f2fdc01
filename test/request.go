package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/kakeibo-app/backend/internal/config"
	"github.com/kakeibo-app/backend/internal/controllers"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/kakeibo-app/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Controller returns the controller backed by the test database.
func Controller() controllers.Controller {
	return controllers.Controller{
		Gateway: models.GormGateway{DB: models.DB},
		Version: router.Version,
	}
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// The body can be a string, a *bytes.Buffer or any value that is
// marshalled to JSON.
func Request(t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	return RequestWith(t, Controller(), method, url, body, headers...)
}

// RequestWith makes a HTTP request to the API served by co.
func RequestWith(t *testing.T, co controllers.Controller, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	cfg, err := config.Load()
	require.Nil(t, err, "Configuration could not be loaded")

	r, teardown, err := router.Config(cfg)
	require.Nil(t, err, "Router could not be initialized")
	defer teardown()

	router.AttachRoutes(co, r.Group(cfg.APIURL.Path), cfg.EnablePprof)

	recorder := httptest.NewRecorder()
	req, err := http.NewRequest(method, url, requestBody(t, body))
	require.Nil(t, err)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

func requestBody(t *testing.T, body any) *bytes.Buffer {
	switch b := body.(type) {
	case nil:
		return new(bytes.Buffer)
	case string:
		return bytes.NewBufferString(b)
	case *bytes.Buffer:
		return b
	}

	byteStr, err := json.Marshal(body)
	if err != nil {
		assert.FailNow(t, "Request body could not be marshalled", err)
	}

	return bytes.NewBuffer(byteStr)
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError decodes the error response.
func DecodeError(t *testing.T, r *httptest.ResponseRecorder) httputil.HTTPError {
	var e httputil.HTTPError
	DecodeResponse(t, r, &e)
	return e
}

// AssertHTTPStatus verifies that the response has the expected status.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus int) {
	assert.Equal(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
