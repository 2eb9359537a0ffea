// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package oidc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pypa/gh-action-pypi-publish/env"
	validation "github.com/pypa/gh-action-pypi-publish/validation/http"
)

// Variables the runner exports when the job has the id-token: write permission.
const (
	EnvRequestURL   = "ACTIONS_ID_TOKEN_REQUEST_URL"
	EnvRequestToken = "ACTIONS_ID_TOKEN_REQUEST_TOKEN"
)

const maxTokenResponseSize = 1 << 20

// Compile-time interface check.
var _ Provider = (*GitHubProvider)(nil)

// GitHubProvider issues identity tokens on GitHub Actions runners.
type GitHubProvider struct {
	env        env.Reader
	httpClient *http.Client
}

// GitHubOption configures a GitHubProvider.
type GitHubOption func(*GitHubProvider)

// WithHTTPClient sets the client used to call the token endpoint.
func WithHTTPClient(c *http.Client) GitHubOption {
	return func(p *GitHubProvider) {
		p.httpClient = c
	}
}

// NewGitHubProvider returns a GitHubProvider reading its endpoint from r.
func NewGitHubProvider(r env.Reader, opts ...GitHubOption) *GitHubProvider {
	p := &GitHubProvider{
		env:        r,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type tokenResponse struct {
	Value string `json:"value"`
}

// Issue implements Provider.
func (p *GitHubProvider) Issue(ctx context.Context, audience string) (string, error) {
	requestToken := p.env.Getenv(EnvRequestToken)
	if requestToken == "" {
		return "", fmt.Errorf("%w, the %s environment variable was unset", ErrMissingPermissions, EnvRequestToken)
	}
	requestURL := p.env.Getenv(EnvRequestURL)
	if requestURL == "" {
		return "", fmt.Errorf("%w, the %s environment variable was unset", ErrMissingPermissions, EnvRequestURL)
	}

	u, err := url.Parse(requestURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid %s: %w", ErrIdentity, EnvRequestURL, err)
	}
	q := u.Query()
	q.Set("audience", audience)
	u.RawQuery = q.Encode()

	authorization := "bearer " + requestToken
	if err := validation.ValidateHeaderValue(authorization); err != nil {
		return "", fmt.Errorf("%w: invalid %s: %w", ErrIdentity, EnvRequestToken, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %w", ErrIdentity, err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentity, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseSize))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %w", ErrIdentity, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w (code=%d, body=%q)", ErrIdentity, resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: malformed or incomplete JSON: %w", ErrIdentity, err)
	}
	if tr.Value == "" {
		return "", fmt.Errorf("%w: malformed or incomplete JSON: missing value", ErrIdentity)
	}

	return tr.Value, nil
}
