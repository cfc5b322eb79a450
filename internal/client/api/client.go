// Package api provides a Go HTTP client for the noteboard REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"noteboard/internal/server/app/dto"
)

// APIError is a non-2xx response decoded from the `{"error": ...}` body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%q", e.StatusCode, e.Message)
}

// Client provides strongly-typed access to the noteboard REST API.
// Client instances are safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an API client. baseURL includes protocol and host
// without a trailing slash, e.g. "http://localhost:3000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest performs an HTTP request with a JSON body.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// decodeResponse decodes the JSON response into target, turning non-2xx
// statuses into an *APIError carrying the server's error message.
func decodeResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		var errBody dto.ErrorResponse
		if err := json.Unmarshal(raw, &errBody); err != nil || errBody.Error == "" {
			errBody.Error = string(raw)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if target != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListNotes returns all notes, newest update first.
func (c *Client) ListNotes(ctx context.Context) ([]*dto.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, err
	}

	var result []*dto.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetNote retrieves a note by id.
func (c *Client) GetNote(ctx context.Context, id int64) (*dto.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/notes/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var result dto.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateNote creates a note; categoryID may be nil.
func (c *Client) CreateNote(ctx context.Context, title, content string, categoryID *int64) (*dto.Note, error) {
	req := dto.CreateNoteRequest{
		Title:      title,
		Content:    content,
		CategoryID: dto.NewOptionalID(categoryID),
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/notes", &req)
	if err != nil {
		return nil, err
	}

	var result dto.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateNote applies a partial update. Only the keys present in fields are
// sent, preserving the server's absent/null/value semantics for categoryId.
func (c *Client) UpdateNote(ctx context.Context, id int64, fields map[string]any) (*dto.Note, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/notes/%d", id), fields)
	if err != nil {
		return nil, err
	}

	var result dto.Note
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteNote removes a note by id.
func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/notes/%d", id), nil)
	if err != nil {
		return err
	}
	return decodeResponse(resp, nil)
}

// ListCategories returns all categories ordered by name.
func (c *Client) ListCategories(ctx context.Context) ([]*dto.Category, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/categories", nil)
	if err != nil {
		return nil, err
	}

	var result []*dto.Category
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateCategory creates a category with the given name.
func (c *Client) CreateCategory(ctx context.Context, name string) (*dto.Category, error) {
	req := dto.CreateCategoryRequest{Name: name}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/categories", &req)
	if err != nil {
		return nil, err
	}

	var result dto.Category
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
