package period

import (
	"sync"
	"testing"
	"time"
)

func TestCounterRate(t *testing.T) {
	now := time.Unix(1000, 0)
	c := newWithClock(time.Second, func() time.Time { return now })

	c.Add(10)
	if c.Value() != 10 || c.RatePerSec() != 0 {
		t.Fatalf("value %d rate %d", c.Value(), c.RatePerSec())
	}

	now = now.Add(2 * time.Second)
	c.Add(30)
	if c.Value() != 40 {
		t.Fatalf("value %d", c.Value())
	}
	if c.RatePerSec() != 20 {
		t.Fatalf("rate %d, want 20", c.RatePerSec())
	}

	// inside the period the rate is kept
	now = now.Add(100 * time.Millisecond)
	c.Add(1000)
	if c.RatePerSec() != 20 {
		t.Fatalf("rate %d changed inside period", c.RatePerSec())
	}
}

func TestCounterConcurrentAdd(t *testing.T) {
	c := New(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	if c.Value() != 8000 {
		t.Fatalf("value %d, want 8000", c.Value())
	}
}
