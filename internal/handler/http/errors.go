// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	// errInvalidResourceID is returned when the {id} path segment of a
	// resource route is not a positive integer.
	errInvalidResourceID = errors.New("invalid resource id")

	// errInvalidJSONBody is returned when a request body cannot be decoded as
	// a JSON object.
	errInvalidJSONBody = errors.New("invalid JSON was passed")

	// errBodyTooLarge is returned when a request body exceeds the configured
	// byte cap.
	errBodyTooLarge = errors.New("request body too large")
)
