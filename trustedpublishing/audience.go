// SPDX-FileCopyrightText: Copyright 2025 The gh-action-pypi-publish Authors
// SPDX-License-Identifier: Apache-2.0

package trustedpublishing

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/audience.schema.json
var audienceSchema []byte

// AudienceDescriptor is the body of the audience discovery endpoint.
type AudienceDescriptor struct {
	// Audience is the aud claim the index requires of identity tokens.
	Audience string `json:"audience"`
}

// ParseAudienceDescriptor validates data against the audience schema and decodes it.
func ParseAudienceDescriptor(data []byte) (*AudienceDescriptor, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(audienceSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("audience schema validation failed: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("audience schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var d AudienceDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode audience descriptor: %w", err)
	}
	return &d, nil
}
