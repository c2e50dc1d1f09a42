package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/utils"
	"github.com/MKhiriev/go-deploy-config/models"
)

// tokenResponse is the provider's password-grant response body.
type tokenResponse struct {
	AccessToken  string          `json:"access_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
	RefreshToken string          `json:"refresh_token"`
	User         models.Identity `json:"user"`
}

// httpProvider is the REST implementation of [Provider] for a GoTrue-style
// auth API (POST /token?grant_type=password, GET /user). The configured API
// key is attached to every request; the user bearer token only to Verify.
type httpProvider struct {
	client *utils.HTTPClient

	apiKey string

	logger *logger.Logger
}

// NewHTTPProvider constructs an HTTP/REST implementation of [Provider].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL, API key and request
// timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPProvider(cfg config.Identity, logger *logger.Logger) (Provider, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity provider address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.APIKey)

	return &httpProvider{client: client, apiKey: cfg.APIKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignIn implements [Provider]. It POSTs the credentials to the password
// grant endpoint and returns the issued identity and session verbatim.
// Providers configured to return only token material leave the user object
// empty; in that case the identity is recovered from the access token's
// claims.
func (p *httpProvider) SignIn(ctx context.Context, creds models.Credentials) (models.Identity, models.Session, error) {
	var tokens tokenResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(creds).
		SetResult(&tokens).
		Post("/token")
	if err != nil {
		return models.Identity{}, models.Session{}, fmt.Errorf("%w: sign-in request: %w", ErrProviderUnavailable, err)
	}
	if err := mapProviderError(resp, ErrInvalidCredentials); err != nil {
		return models.Identity{}, models.Session{}, err
	}

	session := models.Session{
		AccessToken:  tokens.AccessToken,
		TokenType:    tokens.TokenType,
		ExpiresIn:    tokens.ExpiresIn,
		RefreshToken: tokens.RefreshToken,
	}

	who := tokens.User
	if who.ID == "" {
		claims, err := decodeIdentityClaims(tokens.AccessToken)
		if err != nil {
			return models.Identity{}, models.Session{}, fmt.Errorf("%w: decoding token claims: %w", ErrProviderUnavailable, err)
		}
		who = claims
	}

	return who, session, nil
}

// Verify implements [Provider]. It presents the bearer token to the
// provider's user endpoint; a 2xx answer means the token is valid and the
// response body carries the identity it belongs to. Read-only.
func (p *httpProvider) Verify(ctx context.Context, token string) (models.Identity, error) {
	var who models.Identity

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&who).
		Get("/user")
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: verify request: %w", ErrProviderUnavailable, err)
	}
	if err := mapProviderError(resp, ErrInvalidToken); err != nil {
		return models.Identity{}, err
	}

	return who, nil
}

// mapProviderError converts a non-2xx provider response into a sentinel
// error: client-side rejections (400/401/403/422) become rejection, anything
// else becomes [ErrProviderUnavailable]. The response body is carried along
// for server-side logging; it is never echoed to end users.
func mapProviderError(resp *resty.Response, rejection error) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", rejection, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrProviderUnavailable, resp.StatusCode(), body)
	}
}
