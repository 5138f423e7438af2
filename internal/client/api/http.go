package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avetins/sessionkeeper/internal/client/models"
	"github.com/avetins/sessionkeeper/internal/logging"
)

// RESTClient talks to the account service over plain HTTP with JSON bodies.
type RESTClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client
	log     logging.Logger
}

// NewRESTClient builds a client for the service at baseURL. apiKey may be
// empty; the public demo deployment requires one and it is sent as the
// x-api-key header when set.
func NewRESTClient(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/login", nil, credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *RESTClient) Register(ctx context.Context, email, password string) (int64, string, error) {
	var resp struct {
		ID    int64  `json:"id"`
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/register", nil, credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return 0, "", err
	}
	return resp.ID, resp.Token, nil
}

func (c *RESTClient) ListUsers(ctx context.Context, page, perPage int) (*UserPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var resp struct {
		Page       int           `json:"page"`
		PerPage    int           `json:"per_page"`
		Total      int           `json:"total"`
		TotalPages int           `json:"total_pages"`
		Data       []models.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/users", q, nil, &resp); err != nil {
		return nil, err
	}
	return &UserPage{
		Page:       resp.Page,
		PerPage:    resp.PerPage,
		Total:      resp.Total,
		TotalPages: resp.TotalPages,
		Users:      resp.Data,
	}, nil
}

func (c *RESTClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var resp struct {
		Data models.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *RESTClient) UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*models.User, error) {
	var resp models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, upd, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *RESTClient) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

func (c *RESTClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// do performs one request/response round trip. Non-2xx responses are mapped
// to *Error with the payload message when the service provided one; out is
// left untouched in that case.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn(ctx, "account service request failed",
			"method", method, "path", path, "status", resp.StatusCode, "request_id", reqID)
		return &Error{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage pulls the "error" field out of a failure payload, if any.
func errorMessage(data []byte) string {
	var p struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return ""
	}
	return p.Error
}
