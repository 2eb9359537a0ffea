// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package oidc

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=provider.go -destination=mocks/mock_provider.go -package=mocks Provider

import (
	"context"
	"errors"

	"github.com/pypa/gh-action-pypi-publish/actions"
	"github.com/pypa/gh-action-pypi-publish/env"
)

var (
	// ErrIdentity indicates the platform refused or failed to issue a token.
	ErrIdentity = errors.New("GitHub: OIDC token request failed")

	// ErrMissingPermissions indicates the job was not granted permission to request tokens.
	ErrMissingPermissions = errors.New("GitHub: missing or insufficient OIDC token permissions")

	// ErrNoAmbientCredential indicates no supported CI platform was detected.
	ErrNoAmbientCredential = errors.New("no ambient OIDC credential provider detected")
)

// Provider issues OIDC identity tokens scoped to an audience.
type Provider interface {
	// Issue returns a signed identity token whose aud claim is audience.
	Issue(ctx context.Context, audience string) (string, error)
}

// Detect returns the Provider for the CI platform the process runs on.
func Detect(r env.Reader, opts ...GitHubOption) (Provider, error) {
	if actions.IsActions(r) {
		return NewGitHubProvider(r, opts...), nil
	}
	return nil, ErrNoAmbientCredential
}

// AmbientProvider detects the CI platform when a token is first requested,
// so that a missing platform surfaces as an issuance failure.
type AmbientProvider struct {
	env  env.Reader
	opts []GitHubOption
}

// NewAmbientProvider returns a Provider backed by whatever platform Detect finds.
func NewAmbientProvider(r env.Reader, opts ...GitHubOption) *AmbientProvider {
	return &AmbientProvider{env: r, opts: opts}
}

// Issue implements Provider.
func (p *AmbientProvider) Issue(ctx context.Context, audience string) (string, error) {
	inner, err := Detect(p.env, p.opts...)
	if err != nil {
		return "", err
	}
	return inner.Issue(ctx, audience)
}
