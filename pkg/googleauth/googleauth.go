package googleauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Scopes requested from the user: read-only calendar plus the account email.
var Scopes = []string{
	calendar.CalendarReadonlyScope,
	googleoauth.UserinfoEmailScope,
}

// ErrMissingCode is returned when the callback carries no authorization code.
var ErrMissingCode = errors.New("googleauth: authorization code is missing")

// Client drives the OAuth authorization-code flow against Google.
type Client struct {
	oauth *oauth2.Config
	cfg   Config
}

// New creates a new OAuth client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       Scopes,
			Endpoint:     google.Endpoint,
		},
		cfg: cfg,
	}, nil
}

// NewFromCredentialsJSON builds a client from a downloaded OAuth client file.
func NewFromCredentialsJSON(data []byte, redirectURL string) (*Client, error) {
	oc, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("googleauth: invalid credentials: %w", err)
	}
	if redirectURL != "" {
		oc.RedirectURL = redirectURL
	}
	return New(Config{ClientID: oc.ClientID, ClientSecret: oc.ClientSecret, RedirectURL: oc.RedirectURL})
}

// AuthCodeURL returns the consent page URL. Offline access asks for a refresh token.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, ErrMissingCode
	}
	tok, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("googleauth: token exchange failed: %w", err)
	}
	return tok, nil
}

// TokenSource returns a refreshing token source for tok.
func (c *Client) TokenSource(ctx context.Context, tok *oauth2.Token) oauth2.TokenSource {
	return c.oauth.TokenSource(c.withHTTPClient(ctx), tok)
}

// Email resolves the email address of the token's owner.
func (c *Client) Email(ctx context.Context, tok *oauth2.Token) (string, error) {
	httpClient := oauth2.NewClient(c.withHTTPClient(ctx), c.TokenSource(ctx, tok))
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if c.cfg.UserinfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.cfg.UserinfoEndpoint))
	}

	svc, err := googleoauth.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("googleauth: failed to create userinfo service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("googleauth: failed to fetch userinfo: %w", err)
	}
	return info.Email, nil
}

// Config returns the underlying oauth2 configuration.
func (c *Client) Config() *oauth2.Config {
	return c.oauth
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	if c.cfg.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, c.cfg.HTTPClient)
}
