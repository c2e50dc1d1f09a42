package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-deploy-config/models"
)

const (
	FieldURL    = "url"
	FieldConfig = "config"
)

type DeploymentValidator struct {
}

func NewDeploymentValidator() Validator {
	return &DeploymentValidator{}
}

func (v *DeploymentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateURL(ctx, value)

	case models.UpdateConfigRequest:
		return v.validateUpdateConfigRequest(ctx, value, fields...)
	case *models.UpdateConfigRequest:
		return v.validateUpdateConfigRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DeploymentValidator) validateUpdateConfigRequest(ctx context.Context, req models.UpdateConfigRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL, FieldConfig}
	}

	for _, field := range fields {
		switch field {
		case FieldURL:
			if err := v.validateURL(ctx, req.URL); err != nil {
				return err
			}
		case FieldConfig:
			if _, err := models.ParseConfigDocument(req.Config); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateURL enforces the canonical `scheme://host` origin form used as the
// deployment key: no path, no query, no fragment, http or https only.
func (v *DeploymentValidator) validateURL(_ context.Context, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return ErrInvalidURLScheme
	}
	if u.Host == "" {
		return ErrMissingURLHost
	}
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" || u.Fragment != "" {
		return ErrURLNotAnOrigin
	}

	return nil
}
