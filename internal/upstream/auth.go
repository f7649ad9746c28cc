package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

// LoginResult is the token grant issued by the platform API.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The platform login endpoint
// speaks OAuth2 password form encoding, with the email in the username field.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var result LoginResult
	if err := c.post(ctx, "/api/auth/login", "", form, &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, appErrors.New(appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "login response missing access token")
	}
	return &result, nil
}

// Logout invalidates the token upstream. A missing logout endpoint is not an
// error; the console session is destroyed either way.
func (c *Client) Logout(ctx context.Context, token string) error {
	err := c.post(ctx, "/api/auth/logout", token, nil, nil)
	if appErr := appErrors.FromError(err); appErr != nil && appErr.Status == http.StatusNotFound {
		return nil
	}
	return err
}

// Me resolves the current identity. Any non-200 answer means "anonymous" to
// callers; they must inspect the returned error's status for 401 themselves.
func (c *Client) Me(ctx context.Context, token string) (*models.Identity, error) {
	var identity models.Identity
	if err := c.get(ctx, "/api/auth/me", token, nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}
