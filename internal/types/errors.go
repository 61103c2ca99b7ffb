package types

import "errors"

// Provider failures are decoded into these tags at the provider boundary so
// core logic never inspects raw payloads.
var (
	// ErrNotFound means the provider does not know the symbol.
	ErrNotFound = errors.New("symbol not found")
	// ErrRateLimited means the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")
)

// ServiceError is a structured failure from the prediction service, carrying
// its human-readable message.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
