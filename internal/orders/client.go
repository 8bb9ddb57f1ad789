// Package orders is the boundary to the external order service. It fetches
// board snapshots, persists stage transitions, and defines the
// reconciliation contract for optimistic local moves.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mgolovko/tsekh/internal/models"
)

// DefaultPollInterval is the fixed cadence at which the board re-fetches
// snapshots to pick up changes made by other operators.
const DefaultPollInterval = 30 * time.Second

// Client is a JSON/HTTP client for the order service.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. The token, when
// non-empty, is sent as a bearer token. No client-side deadline is
// enforced; callers control cancellation through the context.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// FetchBoard retrieves the full board snapshot.
func (c *Client) FetchBoard(ctx context.Context) (*models.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/board", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build board request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order service returned %s fetching board", resp.Status)
	}

	var payload boardPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode board snapshot: %w", err)
	}

	return payload.toBoard(), nil
}

// UpdateStage sets the production stage of one order. The stage is the
// human-readable column title; the server owns the translation into its
// own status field.
func (c *Client) UpdateStage(ctx context.Context, orderID int, stage string) error {
	body, err := json.Marshal(map[string]string{"stage": stage})
	if err != nil {
		return fmt.Errorf("failed to encode stage update: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/orders/%d/stage", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build stage request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to update stage: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order service returned %s updating stage of order %d", resp.Status, orderID)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
