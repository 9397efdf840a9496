// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// API response codes the engine reacts to. The remote carries them in the
// body of non-2xx responses.
const (
	// CodeInactiveUserKey means the account's user key is inactive and
	// share content cannot be served; the share is skipped this pass.
	CodeInactiveUserKey = 300_003
	// CodeDisabledShare confirms a share is gone server-side; the only
	// code that authorises local deletion of a share.
	CodeDisabledShare = 300_004
)

// Sentinel errors returned by the transport layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNetworkUnavailable wraps transport-level failures (DNS, dial,
	// timeout) where no HTTP response was received at all.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrUnauthorized is returned on 401 responses; the session token for
	// the account is missing or expired.
	ErrUnauthorized = errors.New("client unauthorized")
)

// ServerError is a non-2xx response from the remote authority, carrying
// both the HTTP status and the API-level response code.
type ServerError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: http %d, code %d: %s", e.HTTPStatus, e.Code, e.Message)
}

// Is5xx reports whether err is (or wraps) a [ServerError] with a 5xx HTTP
// status. Only these outcomes feed the backoff manager.
func Is5xx(err error) bool {
	var serverErr *ServerError
	if !errors.As(err, &serverErr) {
		return false
	}
	return serverErr.HTTPStatus >= 500 && serverErr.HTTPStatus <= 599
}

// IsDisabledShare reports whether err carries the [CodeDisabledShare] API
// code, the confirmation required before a share may be deleted locally.
func IsDisabledShare(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr) && serverErr.Code == CodeDisabledShare
}

// IsInactiveUserKey reports whether err carries the [CodeInactiveUserKey]
// API code; a recoverable, skip-this-share condition during reconciliation.
func IsInactiveUserKey(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr) && serverErr.Code == CodeInactiveUserKey
}
