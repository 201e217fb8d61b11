package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/lead-dashboard/internal/api/dto"
	"github.com/spec-kit/lead-dashboard/internal/config"
	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/domain"
)

// ErrNotAuthenticated is returned by Logout when no session exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client talks to the lead dashboard HTTP API.
type Client struct {
	baseURL string
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
}

// New builds a client from front-end configuration.
func New(cfg config.ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		timeout: cfg.Timeout(),
		logger:  logger,
	}
}

// Login exchanges admin credentials for a bearer token used on later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Data dto.LoginResponse `json:"data"`
	}
	if err := c.do(ctx, fiber.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = resp.Data.Auth.Token
	c.mu.Unlock()
	c.logger.Info("logged in", zap.String("email", resp.Data.Email), zap.Time("expires_at", resp.Data.Auth.ExpiresAt))
	return nil
}

// Logout revokes the current token.
func (c *Client) Logout(ctx context.Context) error {
	if c.bearer() == "" {
		return ErrNotAuthenticated
	}
	if err := c.do(ctx, fiber.MethodPost, "/auth/logout", nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return nil
}

// List fetches the full lead collection.
func (c *Client) List(ctx context.Context) ([]domain.Lead, error) {
	var leads []domain.Lead
	if err := c.do(ctx, fiber.MethodGet, "/api/leads", nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// Update sends a partial update for the lead and returns the stored record.
func (c *Client) Update(ctx context.Context, id string, patch domain.LeadPatch) (domain.Lead, error) {
	var lead domain.Lead
	if err := c.do(ctx, fiber.MethodPatch, "/api/leads/"+url.PathEscape(id), patch, &lead); err != nil {
		return domain.Lead{}, err
	}
	return lead, nil
}

// Countries fetches the country select options.
func (c *Client) Countries(ctx context.Context) ([]countries.Option, error) {
	var opts []countries.Option
	if err := c.do(ctx, fiber.MethodGet, "/api/countries", nil, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Bytes releases the agent back to the pool.
	agent := fiber.AcquireAgent()

	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if token := c.bearer(); token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		agent.JSON(body)
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	start := time.Now()
	status, payload, errs := agent.Bytes()
	if len(errs) > 0 {
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Errors("errors", errs))
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	)

	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return decodeError(status, payload)
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(status int, payload []byte) error {
	var envelope struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(payload, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	}
	return apiErr
}
