package admission

import "testing"

func TestLedger_GetUnknownKeyIsNil(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	if got := l.Get("nope"); got != nil {
		t.Fatalf("expected nil queue for unknown key, got %v", got)
	}
}

func TestLedger_PutReplacesQueue(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Put("k", []int64{1, 2})
	l.Put("k", []int64{3})

	got := l.Get("k")
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected [3], got %v", got)
	}
	if l.Keys() != 1 {
		t.Fatalf("expected 1 key, got %d", l.Keys())
	}
}

func TestLedger_EmptyQueueStillCountsAsKey(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Put("idle", []int64{})
	if l.Keys() != 1 {
		t.Fatalf("expected retained key, got %d", l.Keys())
	}
	if got := l.Get("idle"); len(got) != 0 {
		t.Fatalf("expected empty queue, got %v", got)
	}
}
