package domain

import "errors"

// Domain errors.
var (
	ErrCatalogNotFound  = errors.New("translation catalog not found")
	ErrCatalogMalformed = errors.New("translation catalog is malformed")
	ErrCatalogFormat    = errors.New("unsupported translation catalog format")
	ErrPageUnreadable   = errors.New("page source is unreadable")
	ErrLoginFailed      = errors.New("login failed")
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrSettingMissing   = errors.New("setting value missing from response")
	ErrSettingMismatch  = errors.New("setting value does not match")
)

var codes = map[error]string{
	ErrCatalogNotFound:  "catalog_not_found",
	ErrCatalogMalformed: "catalog_malformed",
	ErrCatalogFormat:    "catalog_format",
	ErrPageUnreadable:   "page_unreadable",
	ErrLoginFailed:      "login_failed",
	ErrUnexpectedStatus: "unexpected_status",
	ErrSettingMissing:   "setting_missing",
	ErrSettingMismatch:  "setting_mismatch",
}

// Code returns the stable code of the first domain error wrapped by err,
// or "" when err does not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
