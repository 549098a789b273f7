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
	"strconv"
	"time"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

// ErrNotAuthenticated is returned when an operation requires a session and
// none is stored.
var ErrNotAuthenticated = errors.New("not signed in")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// envelope is the standard response wrapper used by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the invoice service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      SessionStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API at baseURL, persisting the session in the
// given store.
func New(baseURL string, store SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// signInResponse matches the data object of the signin and refresh endpoints.
type signInResponse struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

// SignIn authenticates with username (or email) and password and stores the
// resulting session.
func (c *Client) SignIn(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}

	env, err := c.doOnce(ctx, http.MethodPost, "/api/v1/auth/signin", body, "")
	if err != nil {
		return nil, err
	}

	var data signInResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode signin response: %w", err)
	}

	session := &Session{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		User:         data.User,
	}
	if err := c.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SignOut tells the server to log out and clears the stored session. The
// local session is cleared even when the server call fails.
func (c *Client) SignOut(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil)
	if clearErr := c.store.Clear(); clearErr != nil {
		return clearErr
	}
	if err != nil && !errors.Is(err, ErrNotAuthenticated) {
		return err
	}
	return nil
}

// Session returns the stored session, or ErrNotAuthenticated when none
// exists.
func (c *Client) Session() (*Session, error) {
	session, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotAuthenticated
	}
	return session, nil
}

// InvoiceListParams are the filters accepted by ListInvoices.
type InvoiceListParams struct {
	Page   int
	Size   int
	Search string
	// Type is the UI label ("Export", "Commercial", "Packing List") or the
	// raw enum value. Empty means all types.
	Type string
}

// ListInvoices fetches one page of invoices.
func (c *Client) ListInvoices(ctx context.Context, params InvoiceListParams) (*pagination.Result[entity.Invoice], error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Type != "" {
		docType, ok := enum.ParseDocumentType(params.Type)
		if !ok {
			return nil, fmt.Errorf("unknown invoice type %q", params.Type)
		}
		q.Set("type", string(docType))
	}

	path := "/api/v1/invoices"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result pagination.Result[entity.Invoice]
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, fmt.Errorf("decode invoice list: %w", err)
	}
	return &result, nil
}

// GetInvoice fetches one invoice with its items and packing details.
func (c *Client) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/v1/invoices/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeInvoice(env.Data)
}

// CreateInvoice submits a new invoice and returns the persisted record.
func (c *Client) CreateInvoice(ctx context.Context, payload *request.CreateInvoiceRequest) (*entity.Invoice, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/v1/invoices", payload)
	if err != nil {
		return nil, err
	}
	return decodeInvoice(env.Data)
}

// UpdateInvoice replaces an existing invoice.
func (c *Client) UpdateInvoice(ctx context.Context, id string, payload *request.UpdateInvoiceRequest) (*entity.Invoice, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/v1/invoices/"+id, payload)
	if err != nil {
		return nil, err
	}
	return decodeInvoice(env.Data)
}

// DeleteInvoice deletes an invoice with its items and packing details.
func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/v1/invoices/"+id, nil)
	return err
}

// DownloadDocument fetches one rendered PDF for an invoice.
func (c *Client) DownloadDocument(ctx context.Context, id string, docType enum.DocumentType) ([]byte, error) {
	path := "/api/v1/invoices/" + id + "/pdf?type=" + url.QueryEscape(string(docType))

	resp, err := c.doRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiErrorFromResponse(resp)
	}
	return io.ReadAll(resp.Body)
}

// decodeInvoice handles both response shapes for an invoice payload: a plain
// object and a single-element array.
func decodeInvoice(data json.RawMessage) (*entity.Invoice, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []entity.Invoice
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode invoice: %w", err)
		}
		if len(list) == 0 {
			return nil, errors.New("decode invoice: empty array")
		}
		return &list[0], nil
	}

	var inv entity.Invoice
	if err := json.Unmarshal(trimmed, &inv); err != nil {
		return nil, fmt.Errorf("decode invoice: %w", err)
	}
	return &inv, nil
}

// do performs an authenticated request. On a 401 it refreshes the access
// token once and retries; if the refresh fails the session is cleared and the
// caller has to sign in again.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	session, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotAuthenticated
	}

	env, err := c.doOnce(ctx, method, path, body, session.AccessToken)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		return env, err
	}

	refreshed, err := c.refresh(ctx, session)
	if err != nil {
		_ = c.store.Clear()
		return nil, fmt.Errorf("session expired: %w", err)
	}

	return c.doOnce(ctx, method, path, body, refreshed.AccessToken)
}

// refresh exchanges the refresh token for a new token pair and stores it.
func (c *Client) refresh(ctx context.Context, session *Session) (*Session, error) {
	body := map[string]string{"refresh_token": session.RefreshToken}

	env, err := c.doOnce(ctx, http.MethodPost, "/api/v1/auth/refresh", body, "")
	if err != nil {
		return nil, err
	}

	var data signInResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode refresh response: %w", err)
	}

	refreshed := &Session{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		User:         session.User,
	}
	if err := c.store.Save(refreshed); err != nil {
		return nil, err
	}
	return refreshed, nil
}

// doOnce performs a single request without retry logic.
func (c *Client) doOnce(ctx context.Context, method, path string, body interface{}, token string) (*envelope, error) {
	resp, err := c.doRawWithToken(ctx, method, path, body, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &envelope{Success: true}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFromResponse(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env, nil
}

// doRaw performs an authenticated request and returns the raw response. It
// applies the same single refresh-and-retry on 401 as do.
func (c *Client) doRaw(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	session, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotAuthenticated
	}

	resp, err := c.doRawWithToken(ctx, method, path, body, session.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	refreshed, err := c.refresh(ctx, session)
	if err != nil {
		_ = c.store.Clear()
		return nil, fmt.Errorf("session expired: %w", err)
	}

	return c.doRawWithToken(ctx, method, path, body, refreshed.AccessToken)
}

func (c *Client) doRawWithToken(ctx context.Context, method, path string, body interface{}, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

func apiErrorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
		apiErr.Message = env.Message
	}
	return apiErr
}
