package ratelimit

import "service-admission/internal/admission"

// Admitter decides whether an event from the given client key may proceed.
type Admitter interface {
	TryAdd(key string) (admission.Decision, error)
}
