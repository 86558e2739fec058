package graph

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

	"github.com/DIMO-Network/fb-group-relay/internal/config"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// PostFailureCode is the code returned when posting to the group failed.
	PostFailureCode = -1

	// Default timeout for feed requests
	defaultPostTimeout = 15 * time.Second
	// Maximum response body size to read for error reporting
	maxResponseBodySize = 1024
)

var (
	// ErrNotConfigured is returned when the group id or access token is missing.
	ErrNotConfigured = errors.New("graph client is not configured")
	// ErrTransport is returned when the request could not be delivered.
	ErrTransport = errors.New("graph api request failed")
	// ErrRemoteStatus is returned when the Graph API answers with a non-2xx status.
	ErrRemoteStatus = errors.New("graph api returned an error status")
	// ErrBadResponse is returned when a successful response body cannot be decoded.
	ErrBadResponse = errors.New("graph api returned an unreadable response")
)

// PostResult is the decoded Graph API response for a created post.
type PostResult map[string]any

// Client publishes posts into a single Facebook group.
type Client struct {
	feedURL     string
	accessToken string
	creditLine  string
	httpClient  *http.Client
}

// New creates a new Client. A nil httpClient gets the configured post timeout.
func New(settings *config.Settings, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(settings.GraphAPIBase, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph API base URL: %w", err)
	}
	if httpClient == nil {
		timeout := settings.PostTimeout
		if timeout <= 0 {
			timeout = defaultPostTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	feedURL := ""
	if settings.GroupID != "" {
		feedURL = base.JoinPath(settings.GroupID, "feed").String()
	}
	return &Client{
		feedURL:     feedURL,
		accessToken: settings.AccessToken,
		creditLine:  settings.CreditLine,
		httpClient:  httpClient,
	}, nil
}

// ComposeMessage appends the credit line to a message.
func (c *Client) ComposeMessage(message string) string {
	return message + "\n\n" + c.creditLine
}

// PostToGroup creates a feed post in the configured group.
// A failed call is never retried; calling again creates a second post.
func (c *Client) PostToGroup(ctx context.Context, message string) (PostResult, error) {
	if c.feedURL == "" || c.accessToken == "" {
		return nil, richerrors.Error{
			Code:        PostFailureCode,
			ExternalMsg: "Group posting is not configured",
			Err:         ErrNotConfigured,
		}
	}

	params := url.Values{}
	params.Set("message", c.ComposeMessage(message))
	params.Set("access_token", c.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.feedURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, richerrors.Error{
			Code: PostFailureCode,
			// url.Error carries the full request URL, which includes the access token.
			Err: fmt.Errorf("%w: %s", ErrTransport, redact(err.Error(), c.accessToken)),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, richerrors.Error{
			Code: PostFailureCode,
			Err:  fmt.Errorf("%w: status code %d: %s", ErrRemoteStatus, resp.StatusCode, string(respBody)),
		}
	}

	var result PostResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, richerrors.Error{
			Code: PostFailureCode,
			Err:  fmt.Errorf("%w: %w", ErrBadResponse, err),
		}
	}
	return result, nil
}

func redact(s, secret string) string {
	if secret == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.QueryEscape(secret), "REDACTED")
	return strings.ReplaceAll(s, secret, "REDACTED")
}
