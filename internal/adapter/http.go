package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-soulkey/internal/config"
	"github.com/MKhiriev/go-soulkey/internal/logger"
	"github.com/MKhiriev/go-soulkey/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const valuePath = "/api/projects/{projectId}/env/{envKey}"

type httpValueAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPValueAdapter constructs an HTTP/REST implementation of
// [ValueFetcher]. It normalises the base URL from cfg.BaseURL and applies
// cfg.RequestTimeout only when it is positive, so the zero value keeps the
// transport default. The client never retries and never follows redirects.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPValueAdapter(cfg config.ValueService, logger *logger.Logger) (ValueFetcher, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid value service address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetRedirectPolicy(noRedirects)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpValueAdapter{client: client, logger: logger}, nil
}

// noRedirects hands a 3xx answer back to Fetch as the final response.
var noRedirects = resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
})

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

// Fetch implements [ValueFetcher]. It GETs
// /api/projects/{projectId}/env/{envKey} and accepts a 2xx JSON object
// carrying a "type" and a non-null "value". The returned tag is lowercased
// and Raw holds the JSON text of "value".
func (h *httpValueAdapter) Fetch(ctx context.Context, token models.ReferenceToken) (models.RemoteValue, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParams(map[string]string{
			"projectId": token.ProjectID,
			"envKey":    token.EnvKey,
		}).
		Get(valuePath)
	if err != nil {
		return models.RemoteValue{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteValue{}, err
	}

	value, err := decodeValue(resp.Body())
	if err != nil {
		return models.RemoteValue{}, err
	}

	h.logger.Debug().
		Str("token", token.String()).
		Str("type", value.Tag).
		Dur("elapsed", resp.Time()).
		Msg("value service answered")

	return value, nil
}

func decodeValue(body []byte) (models.RemoteValue, error) {
	if !gjson.ValidBytes(body) {
		return models.RemoteValue{}, fmt.Errorf("%w: %w: not json", ErrRemoteBadResponse, ErrInvalidBody)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return models.RemoteValue{}, fmt.Errorf("%w: %w: not a json object", ErrRemoteBadResponse, ErrInvalidBody)
	}

	tag := doc.Get("type")
	if !tag.Exists() || tag.Type == gjson.Null {
		return models.RemoteValue{}, fmt.Errorf("%w: %w: type", ErrRemoteBadResponse, ErrMissingField)
	}
	val := doc.Get("value")
	if !val.Exists() || val.Type == gjson.Null {
		return models.RemoteValue{}, fmt.Errorf("%w: %w: value", ErrRemoteBadResponse, ErrMissingField)
	}

	return models.RemoteValue{
		Tag: strings.ToLower(tag.String()),
		Raw: []byte(val.Raw),
	}, nil
}
