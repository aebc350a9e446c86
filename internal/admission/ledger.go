package admission

// Ledger maps a client key to the ticks of its still-counted admissions,
// oldest first. It holds no time logic: eviction is performed by the
// limiter on a queue it took out of the ledger. The ledger itself is not
// safe for concurrent use; the limiter's lock covers every access.
type Ledger struct {
	entries map[string][]int64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string][]int64)}
}

// Get returns the admission queue for key, or nil when the key is unknown.
func (l *Ledger) Get(key string) []int64 {
	return l.entries[key]
}

// Put stores the queue under key, replacing whatever was there.
func (l *Ledger) Put(key string, queue []int64) {
	l.entries[key] = queue
}

// Keys reports how many keys currently hold admission state.
func (l *Ledger) Keys() int {
	return len(l.entries)
}
