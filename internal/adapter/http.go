package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
	"github.com/MKhiriev/go-deploy-config/internal/utils"
	"github.com/MKhiriev/go-deploy-config/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerAddress and configures the underlying HTTP client with
// the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// SignIn implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth. On success the session's access token is stored via
// SetToken. Returns [ErrUnauthorized] (wrapped) if the server rejects the
// credentials and [ErrBadGateway] (wrapped) if the identity provider behind
// the server is unreachable.
func (h *httpServerAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.Identity, models.Session, error) {
	var signInResponse models.SignInResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&signInResponse).
		Post("/api/auth")
	if err != nil {
		return models.Identity{}, models.Session{}, fmt.Errorf("sign-in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, models.Session{}, err
	}

	h.SetToken(signInResponse.Session.AccessToken)
	return signInResponse.User, signInResponse.Session, nil
}

// GetConfig implements [ServerAdapter]. It GETs /api/config on behalf of the
// deployment identified by url: the origin is forwarded via the
// X-Forwarded-Proto and X-Forwarded-Host headers, which is how the server
// resolves the requesting deployment behind a proxy.
func (h *httpServerAdapter) GetConfig(ctx context.Context, deploymentURL string) (models.ConfigDocument, error) {
	scheme, host, err := splitOrigin(deploymentURL)
	if err != nil {
		return nil, fmt.Errorf("invalid deployment url: %w", err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Forwarded-Proto", scheme).
		SetHeader("X-Forwarded-Host", host).
		Get("/api/config")
	if err != nil {
		return nil, fmt.Errorf("get config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var doc models.ConfigDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("decode config response: %w", err)
	}

	return doc, nil
}

// UpdateConfig implements [ServerAdapter]. It POSTs the update request to
// POST /api/deployments/update-config. Requires a valid bearer token.
// Returns [ErrUnauthorized] (wrapped) when the token is missing or rejected.
func (h *httpServerAdapter) UpdateConfig(ctx context.Context, req models.UpdateConfigRequest) (models.UpdateConfigResponse, error) {
	var updateResponse models.UpdateConfigResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&updateResponse).
		Post("/api/deployments/update-config")
	if err != nil {
		return models.UpdateConfigResponse{}, fmt.Errorf("update config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateConfigResponse{}, err
	}

	return updateResponse, nil
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version and
// returns the plain-text build version reported by the server.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// splitOrigin validates a public deployment URL and returns its scheme and
// host parts. Only `scheme://host` origins are accepted; paths, queries, and
// fragments are rejected so that keys in the store stay canonical.
func splitOrigin(raw string) (scheme, host string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty url")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("url must include host and scheme")
	}
	if u.Path != "" && u.Path != "/" {
		return "", "", fmt.Errorf("url must not include a path")
	}

	return strings.ToLower(u.Scheme), strings.ToLower(u.Host), nil
}
