package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/D1yWeb/S2C/pkg/clients"
)

const checkoutsPath = "/v1/checkouts/"

var ErrNotConfigured = errors.New("checkout provider is not configured")

type SessionRequest struct {
	ProductID  string
	SuccessURL string
	Metadata   map[string]string
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type createSessionBody struct {
	Products   []string          `json:"products"`
	SuccessURL string            `json:"success_url"`
	Metadata   map[string]string `json:"metadata"`
}

// Client talks to the payment provider's hosted checkout API.
type Client struct {
	baseURL string
	token   string
	client  clients.HTTPClientI
}

func New(baseURL, token string, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	if c.token == "" || c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(createSessionBody{
		Products:   []string{req.ProductID},
		SuccessURL: req.SuccessURL,
		Metadata:   req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkout request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.token)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	status, body, _, err := c.client.Post(ctx, c.baseURL+checkoutsPath, headers, payload)
	if err != nil {
		return nil, fmt.Errorf("checkout request failed: %w", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		zap.L().Error("unexpected checkout provider status", zap.Int("status", status), zap.ByteString("body", body))
		return nil, fmt.Errorf("checkout provider returned status %d", status)
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout response: %w", err)
	}
	return &session, nil
}
