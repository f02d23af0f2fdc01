// Package client talks to the record API and keeps the state of the user
// interface: the cached record list, the entry form and the dashboard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kakeibo-app/backend/internal/controllers"
	"github.com/kakeibo-app/backend/internal/httputil"
	"github.com/kakeibo-app/backend/internal/i18n"
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/kakeibo-app/backend/internal/stats"
	"golang.org/x/text/message"
)

// ErrTransport is wrapped by all errors where no response was received.
var ErrTransport = errors.New(i18n.MsgTransportFailed)

// APIError is a response of the API with a status other than 2xx.
type APIError struct {
	Status  int
	Message string
	Fields  []httputil.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Message returns the text to show to the user for an error.
func Message(err error) string {
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError.Message
	}

	p := message.NewPrinter(i18n.Match(""))

	if errors.Is(err, ErrTransport) {
		return p.Sprintf(i18n.MsgTransportFailed)
	}

	var validationError *models.ValidationError
	if errors.As(err, &validationError) {
		return p.Sprintf(i18n.MsgInvalidInput)
	}

	return err.Error()
}

// Client is an HTTP client for the record API.
type Client struct {
	// BaseURL is the URL the API is mounted at, e.g. http://localhost:8080/api
	BaseURL string

	// Language is sent as Accept-Language
	Language string

	HTTPClient *http.Client
}

// New returns a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// do sends a request and decodes the response body into target if it is not nil.
func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Language != "" {
		req.Header.Set("Accept-Language", c.Language)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e httputil.HTTPError
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}

		return &APIError{
			Status:  resp.StatusCode,
			Message: e.Error,
			Fields:  e.Errors,
		}
	}

	if target == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// List returns all records.
func (c *Client) List(ctx context.Context) ([]models.Record, error) {
	records := []models.Record{}
	err := c.do(ctx, http.MethodGet, "/expenses", nil, &records)
	return records, err
}

// Get returns a single record.
func (c *Client) Get(ctx context.Context, id uint64) (models.Record, error) {
	var record models.Record
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/expenses/%d", id), nil, &record)
	return record, err
}

// Create creates a record.
func (c *Client) Create(ctx context.Context, payload models.RecordCreate) (models.Record, error) {
	var record models.Record
	err := c.do(ctx, http.MethodPost, "/expenses", payload, &record)
	return record, err
}

// Update changes the fields of a record that are set in the update.
func (c *Client) Update(ctx context.Context, id uint64, update models.RecordUpdate) (models.Record, error) {
	var record models.Record
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/expenses/%d", id), update, &record)
	return record, err
}

// Delete deletes a record.
func (c *Client) Delete(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/expenses/%d", id), nil, nil)
}

// DeleteAll deletes all records.
func (c *Client) DeleteAll(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "?confirm=yes-please-delete-everything", nil, nil)
}

// Summary returns the statistics for the current month as calculated by the server.
func (c *Client) Summary(ctx context.Context, filter stats.Filter, timeZone string) (controllers.SummaryObject, error) {
	query := url.Values{}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Window != "" {
		query.Set("window", string(filter.Window))
	}
	if timeZone != "" {
		query.Set("tz", timeZone)
	}

	path := "/summary"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var response controllers.SummaryResponse
	err := c.do(ctx, http.MethodGet, path, nil, &response)
	return response.Data, err
}

// Export returns all records in the export format.
func (c *Client) Export(ctx context.Context) (controllers.ExportFile, error) {
	var export controllers.ExportFile
	err := c.do(ctx, http.MethodGet, "/export", nil, &export)
	return export, err
}
