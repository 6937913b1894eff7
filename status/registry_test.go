package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("x")
	b := r.Ints.Get("x")
	if a != b {
		t.Error("Expected the same pointer for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Uint32]()
	var wg sync.WaitGroup
	ptrs := make([]*atomic.Uint32, 32)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("shared")
		}(i)
	}
	wg.Wait()

	for i, p := range ptrs {
		if p != ptrs[0] {
			t.Fatalf("goroutine %d got a different pointer", i)
		}
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestSummarySorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(2)
	r.Ints.Get("a.count").Store(1)
	r.Stamps.Get("c.last").Store(0xFF)

	want := "a.count=1 b.count=2 c.last=000000FF"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d", r.TotalCount())
	}
}
