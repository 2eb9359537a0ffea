// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package oidc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Missing is rendered in place of an absent claim.
const Missing = "MISSING"

// DiagnosticClaims are the claims a trusted publisher configuration is matched against.
var DiagnosticClaims = []string{
	"sub",
	"repository",
	"repository_owner",
	"repository_owner_id",
	"job_workflow_ref",
	"ref",
}

// ClaimSet is the decoded payload of an identity token.
type ClaimSet map[string]any

// DecodeClaims decodes the payload segment of token.
//
// Only the middle segment is read: the header and signature are neither
// parsed nor verified, since the claims are for display only.
func DecodeClaims(token string) (ClaimSet, error) {
	segments := strings.SplitN(token, ".", 3)
	if len(segments) != 3 {
		return nil, fmt.Errorf("failed to decode identity token claims: %w: expected 3 segments, got %d",
			jwt.ErrTokenMalformed, len(segments))
	}

	payload, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(segments[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode identity token claims: %w", err)
	}

	var claims ClaimSet
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode identity token claims: %w", err)
	}
	return claims, nil
}

// Get returns the claim rendered as a string, or Missing.
func (c ClaimSet) Get(name string) string {
	v, ok := c[name]
	if !ok || v == nil {
		return Missing
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
