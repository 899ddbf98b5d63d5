package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Client calls the Slack Web API with a bot token.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the Web API rooted at baseURL. Every request
// carries the token as a bearer credential.
func NewClient(ctx context.Context, baseURL, token string, timeout time.Duration) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	base := &http.Client{Timeout: timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = timeout

	return &Client{baseURL: baseURL, client: httpClient}
}

// apiResponse is the envelope shared by every Web API method.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type profileResponse struct {
	apiResponse
	Profile struct {
		RealName string `json:"real_name"`
	} `json:"profile"`
}

// UserRealName returns the real name on a user's profile.
func (c *Client) UserRealName(ctx context.Context, userID string) (string, error) {
	form := url.Values{"user": {userID}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"users.profile.get", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp profileResponse
	if err := c.do(req, &resp); err != nil {
		return "", fmt.Errorf("users.profile.get: %w", err)
	}
	return resp.Profile.RealName, nil
}

type postMessageRequest struct {
	Channel  string `json:"channel"`
	Text     string `json:"text"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

// PostMessage posts text to a channel as a reply in the thread threadTS.
func (c *Client) PostMessage(ctx context.Context, channel, text, threadTS string) error {
	body, err := json.Marshal(postMessageRequest{Channel: channel, Text: text, ThreadTS: threadTS})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	var resp apiResponse
	if err := c.do(req, &resp); err != nil {
		return fmt.Errorf("chat.postMessage: %w", err)
	}
	return nil
}

// okResponse lets do inspect the envelope of any response type.
type okResponse interface {
	ok() (bool, string)
}

func (r *apiResponse) ok() (bool, string) { return r.OK, r.Error }

func (c *Client) do(req *http.Request, out okResponse) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %s", ErrAPI, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if ok, msg := out.ok(); !ok {
		return fmt.Errorf("%w: %s", ErrAPI, msg)
	}
	return nil
}
