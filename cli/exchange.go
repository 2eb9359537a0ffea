// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pypa/gh-action-pypi-publish/actions"
	"github.com/pypa/gh-action-pypi-publish/env"
	"github.com/pypa/gh-action-pypi-publish/logger"
	"github.com/pypa/gh-action-pypi-publish/oidc"
	"github.com/pypa/gh-action-pypi-publish/recovery"
	"github.com/pypa/gh-action-pypi-publish/trustedpublishing"
)

// repositoryURLInput is the action input naming the upload endpoint.
const repositoryURLInput = "repository-url"

// ExchangeCommand prints an upload token minted by the index in exchange
// for the job's OIDC identity token.
type ExchangeCommand struct {
	RepositoryURL string        `long:"repository-url" description:"Upload endpoint of the index. Defaults to the repository-url action input."`
	Timeout       time.Duration `long:"timeout" description:"Deadline for the whole exchange. Unset means no deadline beyond the transport's."`

	ctx        context.Context
	streams    Streams
	env        env.Reader
	provider   oidc.Provider
	httpClient *http.Client
}

// ExchangeOption configures an ExchangeCommand.
type ExchangeOption func(*ExchangeCommand)

// WithProvider sets the identity token provider. The default detects the CI platform.
func WithProvider(p oidc.Provider) ExchangeOption {
	return func(c *ExchangeCommand) {
		c.provider = p
	}
}

// WithHTTPClient sets the client used to call the index.
func WithHTTPClient(client *http.Client) ExchangeOption {
	return func(c *ExchangeCommand) {
		c.httpClient = client
	}
}

// NewExchangeCommand returns an ExchangeCommand reading inputs from r.
func NewExchangeCommand(ctx context.Context, streams Streams, r env.Reader, opts ...ExchangeOption) *ExchangeCommand {
	c := &ExchangeCommand{
		ctx:        ctx,
		streams:    streams,
		env:        r,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.provider == nil {
		c.provider = oidc.NewAmbientProvider(r)
	}
	return c
}

// Execute implements flags.Commander.
func (c *ExchangeCommand) Execute([]string) error {
	summary, err := actions.NewStepSummary(c.env)
	if err != nil {
		logger.Debugf("no step summary: %v", err)
		summary = nil
	}
	reporter := trustedpublishing.NewReporter(c.streams.Stdout, c.streams.Stderr, summary)

	repositoryURL := c.RepositoryURL
	if repositoryURL == "" {
		repositoryURL = env.Input(c.env, repositoryURLInput)
	}

	exchanger, err := trustedpublishing.New(repositoryURL, c.provider,
		trustedpublishing.WithHTTPClient(c.httpClient))
	if err != nil {
		return c.fail(reporter, fmt.Errorf("invalid %s input: %w", repositoryURLInput, err))
	}

	ctx := c.ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	token, err := recovery.Call(func() (string, error) {
		return exchanger.Exchange(ctx)
	})
	if err != nil {
		return c.fail(reporter, err)
	}
	return reporter.Succeed(token)
}

func (*ExchangeCommand) fail(reporter *trustedpublishing.Reporter, err error) error {
	if rerr := reporter.Fail(err); rerr != nil {
		return errors.Join(err, rerr)
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}
