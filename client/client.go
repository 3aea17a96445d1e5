// Package client talks to the dashboard's REST backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adminpanel/models"
)

// APIError 백엔드가 2xx 이외의 상태 코드로 응답한 경우
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

type authKey struct{}

// WithAuthorization stores the caller's Authorization header value so that backend calls carry it.
func WithAuthorization(ctx context.Context, value string) context.Context {
	if value == "" {
		return ctx
	}
	return context.WithValue(ctx, authKey{}, value)
}

func authorizationFrom(ctx context.Context) string {
	v, _ := ctx.Value(authKey{}).(string)
	return v
}

// Client 백엔드 REST API 클라이언트
type Client struct {
	baseURL string
	http    *http.Client

	Users             *UserService
	Roles             *RoleService
	Modules           *ModuleService
	Permissions       *PermissionService
	Maintenance       *MaintenanceService
	Uploads           *UploadService
	Sites             *CatalogService[models.Site]
	Areas             *CatalogService[models.Area]
	Positions         *CatalogService[models.Position]
	Dispensers        *CatalogService[models.Dispenser]
	Customers         *CatalogService[models.Customer]
	Employees         *CatalogService[models.Employee]
	Merchandisers     *CatalogService[models.Merchandiser]
	Routes            *CatalogService[models.Route]
	MerchandiserTypes *CatalogService[models.MerchandiserType]
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// New 클라이언트 생성. baseURL 은 "/usuarios" 같은 리소스 경로 앞에 붙는다.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Users = &UserService{c: c}
	c.Roles = &RoleService{c: c}
	c.Modules = &ModuleService{c: c}
	c.Permissions = &PermissionService{c: c}
	c.Maintenance = &MaintenanceService{c: c}
	c.Uploads = &UploadService{c: c}
	c.Sites = newCatalog[models.Site](c, "sites", "/sedes")
	c.Areas = newCatalog[models.Area](c, "areas", "/areas")
	c.Positions = newCatalog[models.Position](c, "positions", "/cargos")
	c.Dispensers = newCatalog[models.Dispenser](c, "dispensers", "/choperas")
	c.Customers = newCatalog[models.Customer](c, "customers", "/clientes")
	c.Employees = newCatalog[models.Employee](c, "employees", "/empleados")
	c.Merchandisers = newCatalog[models.Merchandiser](c, "merchandisers", "/mercaderistas")
	c.Routes = newCatalog[models.Route](c, "routes", "/rutas")
	c.MerchandiserTypes = newCatalog[models.MerchandiserType](c, "merchandiser_types", "/tipos-mercaderista")
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, resource, path string, out interface{}) error {
	return c.do(ctx, resource, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, resource, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", resource, err)
		}
		body = bytes.NewReader(payload)
	}
	return c.do(ctx, resource, method, path, body, "application/json", out)
}

func (c *Client) do(ctx context.Context, resource, method, path string, body io.Reader, contentType string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		observeRequest(resource, method, err, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth := authorizationFrom(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", resource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Message:    errorMessage(resp.StatusCode, raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := decodeBody(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

// decodeBody accepts either a bare JSON value or a {"data": ...} envelope.
// {"data": null} leaves out at its zero value.
func decodeBody(raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if data, ok := envelope["data"]; ok {
				if string(bytes.TrimSpace(data)) == "null" {
					return nil
				}
				return json.Unmarshal(data, out)
			}
		}
	}
	return json.Unmarshal(trimmed, out)
}

func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Mensaje string `json:"mensaje"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			return body.Message
		case body.Mensaje != "":
			return body.Mensaje
		case body.Error != "":
			return body.Error
		}
	}
	return http.StatusText(status)
}
