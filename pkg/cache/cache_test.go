package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New(0, time.Minute)
	defer c.Close()

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() = hit for missing key")
	}

	c.Set("k", "v", time.Minute)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Get() = miss after Set")
	}
	if got != "v" {
		t.Errorf("Get() = %v, want v", got)
	}
}

func TestExpiry(t *testing.T) {
	c := New(0, time.Minute)
	defer c.Close()

	c.Set("k", "v", 10*time.Millisecond)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry expired immediately")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("Get() = hit for expired entry")
	}
	// The expired read evicts the entry.
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after lazy eviction", c.Size())
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := New(0, time.Minute)
	defer c.Close()

	c.Set("k", "v", 0)
	time.Sleep(10 * time.Millisecond)
	if !c.Has("k") {
		t.Error("zero-TTL entry expired")
	}
}

func TestLRUEviction(t *testing.T) {
	c := New(3, time.Minute)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("c", 3, time.Minute)

	// Touch a and c so b is least recently used.
	time.Sleep(time.Millisecond)
	c.Get("a")
	c.Get("c")

	c.Set("d", 4, time.Minute)

	if c.Has("b") {
		t.Error("least recently used entry survived eviction")
	}
	for _, key := range []string{"a", "c", "d"} {
		if !c.Has(key) {
			t.Errorf("entry %q was evicted", key)
		}
	}
	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}
}

func TestSetExistingKeyAtCapacity(t *testing.T) {
	c := New(2, time.Minute)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Set("a", 10, time.Minute)

	// Overwriting an existing key must not evict anything.
	if !c.Has("a") || !c.Has("b") {
		t.Error("overwrite at capacity evicted an entry")
	}
	got, _ := c.Get("a")
	if got != 10 {
		t.Errorf("Get(a) = %v, want 10", got)
	}
}

func TestBackgroundSweep(t *testing.T) {
	c := New(0, 10*time.Millisecond)
	defer c.Close()

	c.Set("k", "v", 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	// Swept without any read touching the key.
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after sweep", c.Size())
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New(0, time.Minute)
	defer c.Close()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	if c.Has("a") {
		t.Error("deleted entry still present")
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after Clear", c.Size())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(100, time.Minute)
	defer c.Close()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				key := fmt.Sprintf("key-%d", j%20)
				c.Set(key, n, time.Minute)
				c.Get(key)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestFingerprint(t *testing.T) {
	base := Fingerprint(KindSafety, "hello world", "marketing", "")

	if got := Fingerprint(KindSafety, "hello world", "marketing", ""); got != base {
		t.Error("Fingerprint() is not deterministic")
	}
	if len(base) != 64 {
		t.Errorf("Fingerprint() length = %d, want 64 hex chars", len(base))
	}

	variants := []string{
		Fingerprint(KindCompliance, "hello world", "marketing", ""),
		Fingerprint(KindSafety, "hello worlds", "marketing", ""),
		Fingerprint(KindSafety, "hello world", "legal", ""),
		Fingerprint(KindSafety, "hello world", "marketing", "acme"),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base fingerprint", i)
		}
	}

	// Field delimiting: moving a character across a field boundary must
	// change the key.
	if Fingerprint(KindSafety, "ab", "c", "") == Fingerprint(KindSafety, "a", "bc", "") {
		t.Error("field boundary shift produced the same fingerprint")
	}
}
