// Package x posts to the X API v2 with OAuth 1.0a user credentials.
package x

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/goccy/go-json"
)

// ErrNotConfigured is returned when credentials are missing.
var ErrNotConfigured = errors.New("x credentials are not configured")

type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

func (c Credentials) complete() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	configured bool
}

func NewClient(baseURL string, creds Credentials, timeout time.Duration) *Client {
	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	httpClient := config.Client(context.Background(), oauth1.NewToken(creds.AccessToken, creds.AccessSecret))
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		configured: creds.complete(),
	}
}

type tweetRequest struct {
	Text string `json:"text"`
}

type tweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (e errorResponse) message() string {
	switch {
	case e.Detail != "":
		return e.Detail
	case e.Title != "":
		return e.Title
	case len(e.Errors) > 0:
		return e.Errors[0].Message
	}
	return ""
}

// Post publishes text and returns the id of the created post.
func (c *Client) Post(ctx context.Context, text string) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(tweetRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("marshal tweet: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tweets", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if msg := e.message(); msg != "" {
			return "", fmt.Errorf("x api: status %d: %s", resp.StatusCode, msg)
		}
		return "", fmt.Errorf("x api: unexpected status: %d", resp.StatusCode)
	}

	var out tweetResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Data.ID == "" {
		return "", fmt.Errorf("x api: response without post id")
	}
	return out.Data.ID, nil
}
