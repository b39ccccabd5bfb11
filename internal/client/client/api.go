package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// FixedExtension mirrors the server's fixed-override wire shape.
type FixedExtension struct {
	Name      string `json:"name"`
	IsBlocked bool   `json:"isBlocked"`
}

// CustomExtension mirrors the server's custom-entry wire shape.
type CustomExtension struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIError is a non-2xx response decoded from the server envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// APIClient talks to the backend's HTTP/JSON endpoints.
type APIClient struct {
	baseURL string
	hc      *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

// do performs one request and decodes the response envelope. A non-2xx
// status or success=false yields *APIError with the server's message.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("invalid server response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	return env, nil
}

func (c *APIClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/ping", nil, nil)
	return err
}

func (c *APIClient) ListFixed(ctx context.Context, userID string) ([]FixedExtension, error) {
	env, err := c.do(ctx, http.MethodGet, "/extensions/fixed", url.Values{"userId": {userID}}, nil)
	if err != nil {
		return nil, err
	}

	var list []FixedExtension
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &list); err != nil {
			return nil, fmt.Errorf("invalid server response: %w", err)
		}
	}
	return list, nil
}

func (c *APIClient) SaveFixed(ctx context.Context, userID string, exts []FixedExtension) ([]FixedExtension, error) {
	body := struct {
		UserID     string           `json:"userId"`
		Extensions []FixedExtension `json:"extensions"`
	}{UserID: userID, Extensions: exts}

	if body.Extensions == nil {
		body.Extensions = []FixedExtension{}
	}

	env, err := c.do(ctx, http.MethodPut, "/extensions/fixed", nil, body)
	if err != nil {
		return nil, err
	}

	var list []FixedExtension
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &list); err != nil {
			return nil, fmt.Errorf("invalid server response: %w", err)
		}
	}
	return list, nil
}

func (c *APIClient) ListCustom(ctx context.Context, userID string) ([]CustomExtension, error) {
	env, err := c.do(ctx, http.MethodGet, "/extensions/custom", url.Values{"userId": {userID}}, nil)
	if err != nil {
		return nil, err
	}

	var list []CustomExtension
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &list); err != nil {
			return nil, fmt.Errorf("invalid server response: %w", err)
		}
	}
	return list, nil
}

func (c *APIClient) AddCustom(ctx context.Context, userID, name string) (*CustomExtension, error) {
	body := struct {
		UserID string `json:"userId"`
		Name   string `json:"name"`
	}{UserID: userID, Name: name}

	env, err := c.do(ctx, http.MethodPost, "/extensions/custom", nil, body)
	if err != nil {
		return nil, err
	}

	created := &CustomExtension{}
	if err := json.Unmarshal(env.Data, created); err != nil {
		return nil, fmt.Errorf("invalid server response: %w", err)
	}
	return created, nil
}

func (c *APIClient) DeleteCustom(ctx context.Context, userID, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/extensions/custom/"+url.PathEscape(id),
		url.Values{"userId": {userID}}, nil)
	return err
}
