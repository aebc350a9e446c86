package admission

import (
	"errors"
	"sync"
)

// ErrStateCorrupted is returned after a caller panicked inside the
// limiter's critical section. The ledger may have been left mid-mutation,
// so every later decision fails rather than risk admitting on bad state.
var ErrStateCorrupted = errors.New("admission state corrupted")

// Limiter is a sliding-log rate limiter. Per key it keeps the ticks of
// recent admissions and admits a new event only while fewer than limit of
// them fall inside the window. The window spans limit*ticks clock units:
// an entry stops counting once entry+limit*ticks <= now.
//
// A single mutex serializes every decision, spanning the clock read
// through the ledger update, so concurrent callers for the same key can
// never both be admitted into the last free slot.
type Limiter struct {
	mu     sync.Mutex
	clock  Clock
	limit  int
	ticks  int64
	ledger *Ledger
	broken bool
}

// New returns a limiter admitting at most limit events per key within a
// window of limit*ticks clock units. limit=0 denies everything.
func New(clock Clock, limit int, ticks int64) *Limiter {
	return &Limiter{
		clock:  clock,
		limit:  limit,
		ticks:  ticks,
		ledger: NewLedger(),
	}
}

// TryAdd records an event for key if capacity remains and reports the
// decision. The only possible error is ErrStateCorrupted.
func (l *Limiter) TryAdd(key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.broken {
		return Deny, ErrStateCorrupted
	}
	defer func() {
		if r := recover(); r != nil {
			l.broken = true
			panic(r)
		}
	}()

	now := l.clock.Now()
	window := int64(l.limit) * l.ticks

	queue := l.ledger.Get(key)
	for len(queue) > 0 && queue[0]+window <= now {
		queue = queue[1:]
	}

	if len(queue) < l.limit {
		l.ledger.Put(key, append(queue, now))
		return Allow, nil
	}

	// Persist the eviction result so the next call does not redo it.
	l.ledger.Put(key, queue)
	return Deny, nil
}

// Keys reports how many client keys currently hold admission state.
func (l *Limiter) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ledger.Keys()
}
