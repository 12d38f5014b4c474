package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ivmolchanov/goshop/pkg/api"
)

// Типизированные ошибки авторизации. Клиент различает их, потому что
// реакция разная: по ErrUnauthenticated identity сбрасывается (force
// logout), по ErrPermissionDenied — нет, пользователь легитимно
// аутентифицирован.
var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrPermissionDenied = errors.New("permission denied")
)

// TokenSource отдает актуальный токен в момент вызова.
// Реализуется session.Session: клиент никогда не кеширует токен сам.
type TokenSource interface {
	Token() string
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// NewClient создает новый API клиент.
// tokens может быть nil для клиента, который делает только публичные запросы.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового покупателя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Verify проверяет у сервера, что текущий токен действителен
func (c *Client) Verify(ctx context.Context) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyAdmin проверяет у сервера, что текущий токен действителен
// и принадлежит администратору
func (c *Client) VerifyAdmin(ctx context.Context) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/auth/verify-admin", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListUsers возвращает список пользователей (только для админов)
func (c *Client) ListUsers(ctx context.Context) (*api.UsersResponse, error) {
	var resp api.UsersResponse
	if err := c.doRequest(ctx, http.MethodGet, "/dashboard/admin/users", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListProducts возвращает каталог товаров
func (c *Client) ListProducts(ctx context.Context) (*api.ProductsResponse, error) {
	var resp api.ProductsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/products", nil, &resp); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return &resp, nil
}

// GetProduct возвращает один товар каталога
func (c *Client) GetProduct(ctx context.Context, productID string) (*api.ProductPayload, error) {
	var resp api.ProductPayload
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/products/"+productID, nil, &resp); err != nil {
		return nil, fmt.Errorf("get product request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос, подставляя актуальный токен
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Токен читается в момент вызова, а не при создании клиента:
	// после логина/логаута все последующие запросы сразу видят
	// актуальное состояние
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Ошибки авторизации маппим на типизированные ошибки
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthenticated, errorMessage(respBody))
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, errorMessage(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, errorMessage(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// errorMessage достает текст ошибки из тела ответа
func errorMessage(body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return string(body)
}
