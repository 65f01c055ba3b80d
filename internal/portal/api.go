package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crm-portal/crm_portal/internal/customer"
)

// Typed outcomes of portal API calls. The controller decides what the user
// sees; raw transport detail stays inside these errors.
var (
	ErrUnauthorized = errors.New("portal: unauthorized")
	ErrNotFound     = errors.New("portal: customer not found")
	ErrUnavailable  = errors.New("portal: service unavailable")
)

// LoginReply mirrors the login response body of the portal API.
type LoginReply struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// API is the surface the session controller drives. Implemented by Client;
// replaced with a stub in tests.
type API interface {
	Login(ctx context.Context, username, password string) (LoginReply, error)
	GetCustomer(ctx context.Context, customerID, token string) (customer.Info, error)
}

// Client is a typed HTTP client for the portal API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a portal API client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Login submits the credential pair and returns the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (LoginReply, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return LoginReply{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", strings.NewReader(string(payload)))
	if err != nil {
		return LoginReply{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LoginReply{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var reply LoginReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return LoginReply{}, fmt.Errorf("%w: malformed login response", ErrUnavailable)
	}

	if resp.StatusCode != http.StatusOK || !reply.Success {
		msg := reply.Message
		if msg == "" {
			msg = "login failed"
		}
		return reply, errors.New(msg)
	}

	return reply, nil
}

// GetCustomer fetches one customer record using the session token.
func (c *Client) GetCustomer(ctx context.Context, customerID, token string) (customer.Info, error) {
	endpoint := fmt.Sprintf("%s/api/customer/%s", c.baseURL, url.PathEscape(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return customer.Info{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return customer.Info{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var info customer.Info
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return customer.Info{}, fmt.Errorf("%w: malformed customer response", ErrUnavailable)
		}
		return info, nil
	case resp.StatusCode == http.StatusNotFound:
		return customer.Info{}, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return customer.Info{}, ErrUnauthorized
	default:
		// Drain so the connection can be reused; detail is not user-facing.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return customer.Info{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
}
