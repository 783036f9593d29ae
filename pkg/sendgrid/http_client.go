/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sendgrid

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	coreapi "github.com/dynatrace/dynatrace-configuration-as-code-core/api"
	corerest "github.com/dynatrace/dynatrace-configuration-as-code-core/api/rest"
	"github.com/go-logr/logr"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/dynatrace/sendgrid-manager/internal/log"
	"github.com/dynatrace/sendgrid-manager/internal/secret"
	"github.com/dynatrace/sendgrid-manager/pkg/version"
)

const (
	// DefaultURL is the base URL of the public provider API.
	DefaultURL = "https://api.sendgrid.com"

	templatesPath = "/v3/templates"
	pageSize      = "200"
)

// HTTPClient implements Client against the provider's v3 REST API.
type HTTPClient struct {
	client *corerest.Client
}

var _ Client = (*HTTPClient)(nil)

type clientOptions struct {
	userAgent    string
	httpClient   *http.Client
	httpListener *corerest.HTTPListener
}

// Option configures NewClient.
type Option func(*clientOptions)

// WithUserAgent overrides the user agent sent with each request.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) {
		o.userAgent = ua
	}
}

// WithHTTPClient sets the client whose transport requests are sent with. Authorization and user agent are added on top.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithHTTPListener registers l to receive every request sent and response received.
func WithHTTPListener(l *corerest.HTTPListener) Option {
	return func(o *clientOptions) {
		o.httpListener = l
	}
}

// NewClient creates a Client for the API at baseURL, authenticating every request with apiKey as bearer token.
func NewClient(ctx context.Context, baseURL string, apiKey secret.MaskedString, opts ...Option) (*HTTPClient, error) {
	o := clientOptions{
		userAgent:  version.UserAgent(),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid provider URL %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, pkgerrors.Errorf("invalid provider URL %q: scheme and host are required", baseURL)
	}

	if apiKey.Value() == "" {
		return nil, errors.New("no API key provided")
	}

	base := &http.Client{
		Transport: NewCustomUserAgentTransport(o.httpClient.Transport, o.userAgent),
		Timeout:   o.httpClient.Timeout,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	authClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey.Value()}))

	restOpts := []corerest.Option{corerest.WithRateLimiter()}
	if o.httpListener != nil {
		restOpts = append(restOpts, corerest.WithHTTPListener(o.httpListener))
	}

	return &HTTPClient{
		client: corerest.NewClient(u, authClient, restOpts...),
	}, nil
}

type listResponse struct {
	Result    []Template `json:"result"`
	Templates []Template `json:"templates"`
	Metadata  struct {
		Next string `json:"next"`
	} `json:"_metadata"`
}

// ListTemplates returns legacy and dynamic templates, following pagination until the last page.
func (c *HTTPClient) ListTemplates(ctx context.Context) ([]Template, error) {
	ctx = logr.NewContextWithSlogLogger(ctx, slog.Default())

	var templates []Template
	seen := map[string]struct{}{}
	pageToken := ""

	for {
		query := url.Values{
			"generations": []string{"legacy,dynamic"},
			"page_size":   []string{pageSize},
		}
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		resp, err := coreapi.AsResponseOrError(c.client.GET(ctx, templatesPath, corerest.RequestOptions{QueryParams: query}))
		if err != nil {
			logAPIError(err)
			return nil, pkgerrors.Wrap(err, "failed to list templates")
		}

		var page listResponse
		if err := json.Unmarshal(resp.Data, &page); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to parse template list")
		}

		templates = append(templates, page.Result...)
		templates = append(templates, page.Templates...)

		next, err := nextPageToken(page.Metadata.Next)
		if err != nil {
			return nil, err
		}
		if next == "" {
			break
		}
		if _, ok := seen[next]; ok {
			log.Warn("Template list returned page token %q twice, stopping pagination", next)
			break
		}
		seen[next] = struct{}{}
		pageToken = next
	}

	return templates, nil
}

func nextPageToken(next string) (string, error) {
	if next == "" {
		return "", nil
	}
	u, err := url.Parse(next)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "invalid next page URL %q", next)
	}
	return u.Query().Get("page_token"), nil
}

// GetVersion returns a template version including its content.
func (c *HTTPClient) GetVersion(ctx context.Context, templateID, versionID string) (VersionContent, error) {
	ctx = logr.NewContextWithSlogLogger(ctx, slog.Default())

	path, err := url.JoinPath(templatesPath, url.PathEscape(templateID), "versions", url.PathEscape(versionID))
	if err != nil {
		return VersionContent{}, pkgerrors.Wrapf(err, "failed to build path for version %q of template %q", versionID, templateID)
	}

	resp, err := coreapi.AsResponseOrError(c.client.GET(ctx, path, corerest.RequestOptions{}))
	if err != nil {
		logAPIError(err)
		return VersionContent{}, pkgerrors.Wrapf(err, "failed to get version %q of template %q", versionID, templateID)
	}

	var v VersionContent
	if err := json.Unmarshal(resp.Data, &v); err != nil {
		return VersionContent{}, pkgerrors.Wrapf(err, "failed to parse version %q of template %q", versionID, templateID)
	}
	return v, nil
}

func logAPIError(err error) {
	var apiErr coreapi.APIError
	if errors.As(err, &apiErr) {
		log.Debug("Provider API responded with status %d: %s", apiErr.StatusCode, secret.Mask(apiErr.Body))
	}
}
