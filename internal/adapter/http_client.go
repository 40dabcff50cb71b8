package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/snesterov/ciphervault/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds the resty-backed [ServerAdapter].
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("%w: register: %w", ErrServerUnreachable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Salt(ctx context.Context, login string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("login", login).
		Get("/api/auth/salt")
	if err != nil {
		return "", fmt.Errorf("%w: salt: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var sr models.SaltResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return "", fmt.Errorf("decode salt response: %w", err)
	}

	return sr.KDFSalt, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("%w: login: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(lr.Token)
	return lr.Token, nil
}

func (h *httpServerAdapter) SaveItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post("/api/vault/items")
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: save item: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return decodeItem(resp.Body())
}

func (h *httpServerAdapter) GetItem(ctx context.Context, clientSideID string) (models.VaultItem, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/vault/items/" + url.PathEscape(clientSideID))
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: get item: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return decodeItem(resp.Body())
}

func (h *httpServerAdapter) ListItems(ctx context.Context, filters models.ListFilters) ([]models.VaultItem, error) {
	req := h.authedRequest(ctx)
	if filters.Type != "" {
		req.SetQueryParam("type", string(filters.Type))
	}
	if filters.NamePrefix != "" {
		req.SetQueryParam("name_prefix", filters.NamePrefix)
	}

	resp, err := req.Get("/api/vault/items")
	if err != nil {
		return nil, fmt.Errorf("%w: list items: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.VaultItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return items, nil
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Put("/api/vault/items/" + url.PathEscape(item.ClientSideID))
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: update item: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	return decodeItem(resp.Body())
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, clientSideID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/vault/items/" + url.PathEscape(clientSideID))
	if err != nil {
		return fmt.Errorf("%w: delete item: %w", ErrServerUnreachable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeItem(body []byte) (models.VaultItem, error) {
	var item models.VaultItem
	if err := json.Unmarshal(body, &item); err != nil {
		return models.VaultItem{}, fmt.Errorf("decode item response: %w", err)
	}
	return item, nil
}
