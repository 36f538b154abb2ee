// Package client calls the task template API on behalf of an operator.
package client

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

	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/dto"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/mapper"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/middleware"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Identity is forwarded in the headers the API gateway would otherwise set.
type Identity struct {
	UserID       string
	Role         string
	BusinessUnit string
}

// RequestError is a non-2xx answer. Error returns the server message unchanged so it can be
// shown to the operator as is.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

type Client struct {
	baseURL  string
	identity Identity
	http     *http.Client
	language string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithLanguage(lang string) Option {
	return func(c *Client) {
		c.language = lang
	}
}

func New(baseURL string, identity Identity, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		identity: identity,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.TaskGenerator = (*Client)(nil)

func (c *Client) ListTemplates(ctx context.Context, bu string, includeInactive bool) ([]domain.TaskTemplate, error) {
	query := url.Values{}
	if bu != "" {
		query.Set("bu", bu)
	}
	if includeInactive {
		query.Set("include_inactive", "true")
	}

	path := "/api/task-templates"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var items []dto.TemplateItem
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}

	templates := make([]domain.TaskTemplate, 0, len(items))
	for _, item := range items {
		template, err := mapper.ToDomainTemplate(item)
		if err != nil {
			return nil, fmt.Errorf("decode template %d: %w", item.ID, err)
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func (c *Client) GetTemplate(ctx context.Context, id uint64) (domain.TaskTemplate, error) {
	var item dto.TemplateItem
	if err := c.do(ctx, http.MethodGet, "/api/task-templates/"+strconv.FormatUint(id, 10), nil, &item); err != nil {
		return domain.TaskTemplate{}, err
	}
	return mapper.ToDomainTemplate(item)
}

// GenerateTasks persists the tasks through the API in a single request.
func (c *Client) GenerateTasks(ctx context.Context, input domain.GenerateTasksInput) (domain.GenerateTasksResult, error) {
	var resp dto.GenerateTasksResponse
	if err := c.do(ctx, http.MethodPost, "/api/task-templates/generate", mapper.ToGenerateTasksRequest(input), &resp); err != nil {
		return domain.GenerateTasksResult{}, err
	}

	tasks := make([]domain.ProjectTask, 0, len(resp.Tasks))
	for _, item := range resp.Tasks {
		task, err := mapper.ToDomainProjectTask(item)
		if err != nil {
			return domain.GenerateTasksResult{}, fmt.Errorf("decode task %d: %w", item.ID, err)
		}
		tasks = append(tasks, task)
	}
	return domain.GenerateTasksResult{Tasks: tasks, Count: resp.Count}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}
	req.Header.Set(middleware.HeaderUserID, c.identity.UserID)
	req.Header.Set(middleware.HeaderUserRole, c.identity.Role)
	if c.identity.BusinessUnit != "" {
		req.Header.Set(middleware.HeaderUserBU, c.identity.BusinessUnit)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	zap.L().Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return &RequestError{Status: status, Message: payload.Error}
	}
	return &RequestError{Status: status, Message: http.StatusText(status)}
}
