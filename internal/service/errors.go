package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required credential fields are
	// missing from a registration or login request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrUnknownRole is returned when a registration names a role outside the
	// closed enumeration.
	ErrUnknownRole = errors.New("unknown role")

	// ErrTokenCreationFailed wraps failures to sign a new JWT.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised result of any token
	// validation failure: expired, malformed, forged, or wrong issuer.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
