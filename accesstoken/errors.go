package accesstoken

import "errors"

// Sentinel errors returned by the token pipeline. Callers should use
// errors.Is to match these values; they may arrive wrapped with
// additional context.
var (
	// Registry errors (caller passed a symbol outside the closed set).
	ErrUnknownPrivilege = errors.New("unknown privilege")

	// Message builder errors (a field outgrew its wire width).
	ErrTooManyGrants = errors.New("too many grants")

	// Signer errors (unusable key material).
	ErrEmptyCertificate = errors.New("empty app certificate")

	// Parser errors (malformed or truncated token string).
	ErrInvalidToken = errors.New("invalid token")
)
