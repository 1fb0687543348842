package output

import (
	"context"
	"encoding/json"
)

// Response is the raw outcome of a settings API call.
type Response struct {
	Status int
	Body   []byte
}

// SettingsAPI is the settings REST service seen by the smoke test.
type SettingsAPI interface {
	Login(ctx context.Context, email, password string) (token string, resp Response, err error)
	GetSetting(ctx context.Context, token, key string) (value json.RawMessage, resp Response, err error)
	UpdateSetting(ctx context.Context, token, key string, value json.RawMessage, reason string) (Response, error)
}
