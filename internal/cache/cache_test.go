package cache

import "testing"

func TestSetEvictsOldestBeyondCapacity(t *testing.T) {
	t.Parallel()

	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Set("d", 4)

	if got := c.Len(); got != 3 {
		t.Fatalf("unexpected length: got %d want 3", got)
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected oldest key to be evicted")
	}
	for _, key := range []string{"b", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Fatalf("expected key %q to survive eviction", key)
		}
	}
}

func TestGetPromotesEntry(t *testing.T) {
	t.Parallel()

	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected hit for key a")
	}
	c.Set("d", 4)

	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected promoted key a to survive eviction")
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected unpromoted key b to be evicted")
	}
}

func TestSetExistingKeyPromotesAndOverwrites(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)
	c.Set("c", 3)

	if got, ok := c.Get("a"); !ok || got != 10 {
		t.Fatalf("unexpected value for rewritten key: got %d, %t want 10, true", got, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected key b to be evicted after key a was rewritten")
	}
	if got := c.Len(); got != 2 {
		t.Fatalf("unexpected length: got %d want 2", got)
	}
}

func TestOverCapacityInsertsKeepExactlyCapacityEntries(t *testing.T) {
	t.Parallel()

	const capacity = 8
	c := New[int, int](capacity)
	for i := 0; i < capacity+5; i++ {
		c.Set(i, i)
	}

	if got := c.Len(); got != capacity {
		t.Fatalf("unexpected resident count: got %d want %d", got, capacity)
	}
	for i := 0; i < 5; i++ {
		if _, ok := c.Get(i); ok {
			t.Fatalf("expected key %d to have been evicted", i)
		}
	}
	for i := 5; i < capacity+5; i++ {
		if _, ok := c.Get(i); !ok {
			t.Fatalf("expected key %d to be resident", i)
		}
	}
}

func TestClearDropsEverything(t *testing.T) {
	t.Parallel()

	c := New[string, string](4)
	c.Set("a", "1")
	c.Set("b", "2")
	c.Clear()

	if got := c.Len(); got != 0 {
		t.Fatalf("unexpected length after clear: got %d want 0", got)
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("did not expect hit after clear")
	}

	c.Set("c", "3")
	if got, ok := c.Get("c"); !ok || got != "3" {
		t.Fatalf("expected cache to be usable after clear: got %q, %t", got, ok)
	}
}

func TestNonPositiveCapacityFallsBackToDefault(t *testing.T) {
	t.Parallel()

	c := New[string, int](0)
	if got := c.Capacity(); got != DefaultCapacity {
		t.Fatalf("unexpected capacity: got %d want %d", got, DefaultCapacity)
	}
}
