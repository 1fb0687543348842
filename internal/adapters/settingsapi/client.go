package settingsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"admintools/internal/domain"
	"admintools/internal/ports/output"
)

var _ output.SettingsAPI = (*Client)(nil)

// Client talks to the admin settings REST API.
type Client struct {
	BaseURL string
	http    *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetTimeout(timeout).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{BaseURL: baseURL, http: c}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Data        struct {
		AccessToken      string `json:"access_token"`
		AccessTokenCamel string `json:"accessToken"`
	} `json:"data"`
}

func (r loginResponse) token() string {
	switch {
	case r.AccessToken != "":
		return r.AccessToken
	case r.Data.AccessToken != "":
		return r.Data.AccessToken
	default:
		return r.Data.AccessTokenCamel
	}
}

type settingResponse struct {
	Data struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	} `json:"data"`
}

// Login exchanges credentials for a bearer token. The status is returned
// as-is; callers decide what counts as success.
func (c *Client) Login(ctx context.Context, email, password string) (string, output.Response, error) {
	rr, err := c.http.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/login")
	if err != nil {
		return "", output.Response{}, fmt.Errorf("login: %w", err)
	}
	resp := output.Response{Status: rr.StatusCode(), Body: rr.Body()}
	if rr.IsError() {
		return "", resp, nil
	}
	var body loginResponse
	if err := json.Unmarshal(rr.Body(), &body); err != nil {
		return "", resp, fmt.Errorf("login: decode body: %w", err)
	}
	return body.token(), resp, nil
}

// GetSetting reads data.value of a single setting. A 200 without a value
// yields domain.ErrSettingMissing.
func (c *Client) GetSetting(ctx context.Context, token, key string) (json.RawMessage, output.Response, error) {
	rr, err := c.http.R().SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("key", key).
		Get("/settings/{key}")
	if err != nil {
		return nil, output.Response{}, fmt.Errorf("get setting %s: %w", key, err)
	}
	resp := output.Response{Status: rr.StatusCode(), Body: rr.Body()}
	if rr.IsError() {
		return nil, resp, nil
	}
	var body settingResponse
	if err := json.Unmarshal(rr.Body(), &body); err != nil {
		return nil, resp, fmt.Errorf("get setting %s: decode body: %w", key, err)
	}
	if len(body.Data.Value) == 0 {
		return nil, resp, fmt.Errorf("get setting %s: %w", key, domain.ErrSettingMissing)
	}
	return body.Data.Value, resp, nil
}

// UpdateSetting patches a setting with value and an audit reason.
func (c *Client) UpdateSetting(ctx context.Context, token, key string, value json.RawMessage, reason string) (output.Response, error) {
	rr, err := c.http.R().SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("key", key).
		SetBody(map[string]any{"value": value, "reason": reason}).
		Patch("/settings/{key}")
	if err != nil {
		return output.Response{}, fmt.Errorf("update setting %s: %w", key, err)
	}
	return output.Response{Status: rr.StatusCode(), Body: rr.Body()}, nil
}
