// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package trustedpublishing

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pypa/gh-action-pypi-publish/httperr"
	"github.com/pypa/gh-action-pypi-publish/oidc"
)

// annotationPrefix starts the error annotation emitted on failure.
const annotationPrefix = "Trusted publishing exchange failure: "

// summaryTemplate wraps every failure message in the step summary.
const summaryTemplate = `
Trusted publishing exchange failure:

%s

You're seeing this because the action wasn't given the inputs needed to
perform password-based or token-based authentication. If you intended to
perform one of those authentication methods instead of trusted
publishing, then you should double-check your secret configuration and variable
names.

Read more about trusted publishers at https://docs.pypi.org/trusted-publishers/

Read more about how this action uses trusted publishers at
https://github.com/marketplace/actions/pypi-publish#trusted-publishing
`

const tokenRetrievalFailedTemplate = `
OpenID Connect token retrieval failed: %v

This generally indicates a workflow configuration error, such as insufficient
permissions. Make sure that your workflow has ` + "`id-token: write`" + ` configured
at the job level, e.g.:

` + "```yaml" + `
permissions:
  id-token: write
` + "```" + `

Learn more at https://docs.github.com/en/actions/deployment/security-hardening-your-deployments/about-security-hardening-with-openid-connect#adding-permissions-settings.
`

const exchangeRefusedTemplate = `
Token request failed: the server refused the request for the following reasons:

%s

This generally indicates a trusted publisher configuration error, but could
also indicate an internal error on GitHub or PyPI's part.

%s
`

const claimsHeader = `
The claims rendered below are **for debugging purposes only**. You should **not**
use them to configure a trusted publisher unless they already match your expectations.

If a claim is not present in the claim set, then it is rendered as ` + "`MISSING`" + `.

`

const malformedJSONTemplate = `
Token request failed: the index produced an unexpected
%d response.

This strongly suggests a server configuration or downtime issue; wait
a few minutes and try again.
`

const malformedTokenMessage = `
Token response error: the index gave us an invalid response.

This strongly suggests a server configuration or downtime issue; wait
a few minutes and try again.
`

func renderSummary(message string) string {
	return fmt.Sprintf(summaryTemplate, message)
}

// discoveryFailure classifies a non-success audience response carried by cause.
func discoveryFailure(host string, cause error) *ExchangeError {
	code := httperr.Code(cause)
	switch code {
	case http.StatusForbidden:
		return newExchangeError(ErrDiscoveryDisabled, fmt.Sprintf(
			"audience retrieval failed: repository at %s has trusted publishing disabled", host), cause)
	case http.StatusNotFound:
		return newExchangeError(ErrDiscoveryUnsupported, fmt.Sprintf(
			"audience retrieval failed: repository at %s does not indicate trusted publishing support", host), cause)
	default:
		return newExchangeError(ErrDiscoveryUnexpected, fmt.Sprintf(
			"audience retrieval failed: repository at %s responded with unexpected %d: %s", host, code, httperr.Reason(code)), cause)
	}
}

func renderTokenRetrievalFailed(cause error) string {
	return fmt.Sprintf(tokenRetrievalFailedTemplate, cause)
}

func renderRefusal(errs []MintError, code int, identityToken string) string {
	var reasons string
	if len(errs) == 0 {
		reasons = fmt.Sprintf("* the index responded with %d: %s and gave no reasons", code, httperr.Reason(code))
	} else {
		lines := make([]string, 0, len(errs))
		for _, e := range errs {
			lines = append(lines, fmt.Sprintf("* `%s`: %s", e.Code, e.Description))
		}
		reasons = strings.Join(lines, "\n")
	}
	return fmt.Sprintf(exchangeRefusedTemplate, reasons, RenderClaims(identityToken))
}

func renderMalformedJSON(code int) string {
	return fmt.Sprintf(malformedJSONTemplate, code)
}

// RenderClaims renders the diagnostic claims of an identity token as a
// Markdown list. Absent claims render as MISSING. The result depends only
// on the token, so rendering the same token twice gives the same block.
func RenderClaims(identityToken string) string {
	var b strings.Builder
	b.WriteString(claimsHeader)

	claims, err := oidc.DecodeClaims(identityToken)
	if err != nil {
		fmt.Fprintf(&b, "The identity token's claims could not be decoded: %v\n", err)
		return b.String()
	}

	for _, name := range oidc.DiagnosticClaims {
		fmt.Fprintf(&b, "* `%s`: `%s`\n", name, claims.Get(name))
	}
	return b.String()
}
