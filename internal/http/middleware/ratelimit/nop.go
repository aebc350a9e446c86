package ratelimit

import "service-admission/internal/admission"

// NopAdmitter admits everything; used when rate limiting is disabled.
type NopAdmitter struct{}

// TryAdd always allows.
func (NopAdmitter) TryAdd(string) (admission.Decision, error) {
	return admission.Allow, nil
}

var _ Admitter = NopAdmitter{}
