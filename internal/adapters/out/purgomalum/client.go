// Package purgomalum checks display names against the PurgoMalum profanity service.
package purgomalum

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const containsProfanityPath = "/service/containsprofanity"

// Client implements kernel.ContentPolicy over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "purgomalum"),
	}
}

// ContainsDisallowedContent asks the service whether text contains profanity.
// The service answers with a plain "true" or "false" body.
func (c *Client) ContainsDisallowedContent(ctx context.Context, text string) (bool, error) {
	endpoint := c.baseURL + containsProfanityPath + "?" + url.Values{"text": {text}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build purgomalum request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("purgomalum request failed", "error", err)
		return false, fmt.Errorf("call purgomalum: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return false, fmt.Errorf("read purgomalum response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("purgomalum returned unexpected status", "status", resp.StatusCode)
		return false, fmt.Errorf("purgomalum responded with status %d", resp.StatusCode)
	}

	switch strings.TrimSpace(string(body)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("unexpected purgomalum response %q", body)
	}
}
