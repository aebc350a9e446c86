package admission

// Decision is the outcome of one admission check.
type Decision int

const (
	// Deny rejects the event.
	Deny Decision = iota
	// Allow admits the event.
	Allow
)

// String returns the decision name.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}
