// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiEnvelope is the common body shape of every remote response: a numeric
// code plus an optional human-readable error string.
type apiEnvelope struct {
	Code  int    `json:"Code"`
	Error string `json:"Error"`
}

// mapAPIError converts a non-2xx resty response into a typed error. 401
// maps to [ErrUnauthorized]; everything else becomes a [*ServerError]
// carrying the HTTP status and the API code parsed from the body.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, strings.TrimSpace(string(resp.Body())))
	}

	var envelope apiEnvelope
	// Body may be empty or non-JSON on proxy-level failures; the zero
	// envelope is fine then.
	_ = json.Unmarshal(resp.Body(), &envelope)

	message := envelope.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &ServerError{
		HTTPStatus: resp.StatusCode(),
		Code:       envelope.Code,
		Message:    message,
	}
}
