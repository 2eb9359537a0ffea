// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package trustedpublishing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pypa/gh-action-pypi-publish/httperr"
	"github.com/pypa/gh-action-pypi-publish/logger"
	"github.com/pypa/gh-action-pypi-publish/oidc"
	validation "github.com/pypa/gh-action-pypi-publish/validation/http"
)

// Well-known paths every trusted publishing index serves.
const (
	// AudiencePath returns the audience identity tokens must be issued for.
	AudiencePath = "/_/oidc/audience"

	// MintTokenPath exchanges a GitHub identity token for an upload token.
	MintTokenPath = "/_/oidc/github/mint-token"
)

// maxResponseSize bounds the bodies read from the index.
const maxResponseSize = 1 << 20

// MintRequest is the body posted to the mint endpoint.
type MintRequest struct {
	Token string `json:"token"`
}

// MintError is one reason the index gave for refusing a mint request.
type MintError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// MintResponse is the body of the mint endpoint, successful or not.
type MintResponse struct {
	Token  *string     `json:"token,omitempty"`
	Errors []MintError `json:"errors,omitempty"`
}

// Exchanger performs the trusted publishing exchange against one index.
type Exchanger struct {
	host       string
	provider   oidc.Provider
	httpClient *http.Client
}

// Option configures an Exchanger.
type Option func(*Exchanger)

// WithHTTPClient sets the client used to call the index.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Exchanger) {
		e.httpClient = c
	}
}

// New returns an Exchanger for the index serving repositoryURL.
// Only the host of repositoryURL is used; the index is always reached over https.
func New(repositoryURL string, provider oidc.Provider, opts ...Option) (*Exchanger, error) {
	u, err := validation.ParseRepositoryURL(repositoryURL)
	if err != nil {
		return nil, err
	}

	e := &Exchanger{
		host:       u.Host,
		provider:   provider,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Host returns the index host.
func (e *Exchanger) Host() string {
	return e.host
}

// AudienceURL returns the audience discovery URL.
func (e *Exchanger) AudienceURL() string {
	return e.endpoint(AudiencePath)
}

// MintTokenURL returns the token mint URL.
func (e *Exchanger) MintTokenURL() string {
	return e.endpoint(MintTokenPath)
}

func (e *Exchanger) endpoint(path string) string {
	return (&url.URL{Scheme: "https", Host: e.host, Path: path}).String()
}

// Exchange runs the whole pipeline and returns the minted upload token.
func (e *Exchanger) Exchange(ctx context.Context) (string, error) {
	descriptor, err := e.ResolveAudience(ctx)
	if err != nil {
		return "", err
	}

	logger.Debugf("selected trusted publishing exchange endpoint: %s", e.MintTokenURL())

	identityToken, err := e.FetchIdentityToken(ctx, descriptor.Audience)
	if err != nil {
		return "", err
	}

	return e.MintIndexToken(ctx, identityToken)
}

// ResolveAudience asks the index which audience identity tokens must carry.
func (e *Exchanger) ResolveAudience(ctx context.Context) (*AudienceDescriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.AudienceURL(), nil)
	if err != nil {
		return nil, e.unreachable(err)
	}
	req.Header.Set("Accept", "application/json")

	code, body, err := e.do(req)
	if err != nil {
		return nil, e.unreachable(err)
	}

	if !httperr.IsSuccess(code) {
		return nil, discoveryFailure(e.host, httperr.New(fmt.Sprintf("audience request returned %d", code), code))
	}

	descriptor, err := ParseAudienceDescriptor(body)
	if err != nil {
		return nil, newExchangeError(ErrDiscoveryMalformed, fmt.Sprintf(
			"audience retrieval failed: repository at %s returned an invalid audience response: %v", e.host, err), err)
	}
	return descriptor, nil
}

// FetchIdentityToken obtains an identity token for audience from the provider.
func (e *Exchanger) FetchIdentityToken(ctx context.Context, audience string) (string, error) {
	token, err := e.provider.Issue(ctx, audience)
	if err != nil {
		return "", newExchangeError(ErrIdentityProviderFailure, renderTokenRetrievalFailed(err), err)
	}
	return token, nil
}

// MintIndexToken trades identityToken for an upload token.
func (e *Exchanger) MintIndexToken(ctx context.Context, identityToken string) (string, error) {
	payload, err := json.Marshal(MintRequest{Token: identityToken})
	if err != nil {
		return "", fmt.Errorf("failed to encode mint request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.MintTokenURL(), bytes.NewReader(payload))
	if err != nil {
		return "", e.unreachable(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	code, body, err := e.do(req)
	if err != nil {
		return "", e.unreachable(err)
	}
	status := httperr.WithCode(fmt.Errorf("mint request returned %d", code), code)

	// A failed mint normally still carries a JSON error list; anything else
	// points at the server rather than the publisher configuration.
	if !json.Valid(body) {
		return "", newExchangeError(ErrServerMalformedResponse, renderMalformedJSON(code), status)
	}

	var resp MintResponse
	decodeErr := json.Unmarshal(body, &resp)

	if !httperr.IsSuccess(code) {
		return "", newExchangeError(ErrTokenExchangeRefused, renderRefusal(resp.Errors, code, identityToken), status)
	}

	if decodeErr != nil || resp.Token == nil || *resp.Token == "" {
		return "", newExchangeError(ErrServerMalformedResponse, malformedTokenMessage, decodeErr)
	}
	return *resp.Token, nil
}

func (e *Exchanger) do(req *http.Request) (int, []byte, error) {
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response from %s: %w", req.URL, err)
	}
	return resp.StatusCode, body, nil
}

func (e *Exchanger) unreachable(err error) *ExchangeError {
	return newExchangeError(ErrIndexUnreachable, fmt.Sprintf(
		"could not reach repository at %s: %v", e.host, err), err)
}
