// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package oidc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pypa/gh-action-pypi-publish/env"
)

func TestGitHubProvider_Issue(t *testing.T) {
	t.Parallel()

	t.Run("requests a token for the audience", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "bearer request-token", r.Header.Get("Authorization"))
			assert.Equal(t, "pypi", r.URL.Query().Get("audience"))
			assert.Equal(t, "2.0", r.URL.Query().Get("api-version"))
			_, _ = w.Write([]byte(`{"value":"id-token"}`))
		}))
		t.Cleanup(srv.Close)

		p := NewGitHubProvider(env.MapReader{
			EnvRequestURL:   srv.URL + "/token?api-version=2.0",
			EnvRequestToken: "request-token",
		}, WithHTTPClient(srv.Client()))

		token, err := p.Issue(context.Background(), "pypi")
		require.NoError(t, err)
		assert.Equal(t, "id-token", token)
	})

	t.Run("request token unset", func(t *testing.T) {
		t.Parallel()
		p := NewGitHubProvider(env.MapReader{EnvRequestURL: "https://example.invalid"})

		_, err := p.Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrMissingPermissions)
		assert.Contains(t, err.Error(), "the ACTIONS_ID_TOKEN_REQUEST_TOKEN environment variable was unset")
	})

	t.Run("request url unset", func(t *testing.T) {
		t.Parallel()
		p := NewGitHubProvider(env.MapReader{EnvRequestToken: "t"})

		_, err := p.Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrMissingPermissions)
		assert.Contains(t, err.Error(), EnvRequestURL)
	})

	t.Run("request token with control characters", func(t *testing.T) {
		t.Parallel()
		p := NewGitHubProvider(env.MapReader{EnvRequestURL: "https://example.invalid", EnvRequestToken: "t\r\nX: y"})

		_, err := p.Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrIdentity)
	})

	t.Run("non-200 response", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		t.Cleanup(srv.Close)

		p := NewGitHubProvider(env.MapReader{EnvRequestURL: srv.URL, EnvRequestToken: "t"}, WithHTTPClient(srv.Client()))

		_, err := p.Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrIdentity)
		assert.Contains(t, err.Error(), "code=403")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"valu`))
		}))
		t.Cleanup(srv.Close)

		p := NewGitHubProvider(env.MapReader{EnvRequestURL: srv.URL, EnvRequestToken: "t"}, WithHTTPClient(srv.Client()))

		_, err := p.Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrIdentity)
		assert.Contains(t, err.Error(), "malformed or incomplete JSON")
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		t.Cleanup(srv.Close)

		p := NewGitHubProvider(env.MapReader{EnvRequestURL: srv.URL, EnvRequestToken: "t"}, WithHTTPClient(srv.Client()))

		_, err := p.Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrIdentity)
	})
}

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("github actions", func(t *testing.T) {
		t.Parallel()
		p, err := Detect(env.MapReader{"GITHUB_ACTIONS": "true"})
		require.NoError(t, err)
		assert.IsType(t, &GitHubProvider{}, p)
	})

	t.Run("unknown platform", func(t *testing.T) {
		t.Parallel()
		_, err := Detect(env.MapReader{})
		require.ErrorIs(t, err, ErrNoAmbientCredential)
	})
}

func TestAmbientProvider(t *testing.T) {
	t.Parallel()

	t.Run("not on a CI platform", func(t *testing.T) {
		t.Parallel()
		_, err := NewAmbientProvider(env.MapReader{}).Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrNoAmbientCredential)
	})

	t.Run("delegates to GitHub", func(t *testing.T) {
		t.Parallel()
		_, err := NewAmbientProvider(env.MapReader{"GITHUB_ACTIONS": "true"}).Issue(context.Background(), "pypi")
		require.ErrorIs(t, err, ErrMissingPermissions)
	})
}
