package nucleo

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func drain(t *testing.T, n *Nucleo) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if status := n.Tick(50 * time.Millisecond); !status.Running {
			return
		}
	}
	t.Fatal("matcher did not quiesce")
}

func TestFirstTick(t *testing.T) {
	n := New(1, nil, CaseSmart, false, false)
	status := n.Tick(5 * time.Second)
	if status.Running {
		t.Error("Expected the initial pass to finish")
	}
	if !status.Changed {
		t.Error("Expected the initial pass to publish a snapshot")
	}
	snapshot := n.Snapshot()
	if snapshot.Generation() != 0 || snapshot.TotalCount() != 0 || snapshot.ItemCount() != 0 {
		t.Errorf("Invalid initial snapshot: %d/%d gen %d",
			snapshot.ItemCount(), snapshot.TotalCount(), snapshot.Generation())
	}
}

func TestStreamingTotality(t *testing.T) {
	n := New(2, nil, CaseSmart, false, false)
	first := n.Injector()
	second := n.Injector()
	if n.ActiveInjectors() != 2 {
		t.Fatalf("Invalid injector count: %d", n.ActiveInjectors())
	}

	count := 10000
	expected := 0
	for i := 0; i < count; i++ {
		var line string
		if i%3 == 0 {
			line = fmt.Sprintf("alpha-%d", i)
			expected++
		} else {
			line = fmt.Sprintf("omega-%d", i)
		}
		if i%2 == 0 {
			first.Push(line)
		} else {
			second.Push(line)
		}
	}
	first.Close()
	second.Close()
	if n.ActiveInjectors() != 0 {
		t.Fatalf("Invalid injector count: %d", n.ActiveInjectors())
	}

	if err := n.SetPattern("alpha", false); err != nil {
		t.Fatal(err)
	}
	drain(t, n)

	snapshot := n.Snapshot()
	if snapshot.TotalCount() != count {
		t.Errorf("Invalid total count: %d", snapshot.TotalCount())
	}
	if snapshot.ItemCount() != expected {
		t.Errorf("Invalid item count: %d (expected %d)", snapshot.ItemCount(), expected)
	}
	// Equal scores break ties by item id
	prev := int32(-1)
	for i := 0; i < snapshot.ItemCount(); i++ {
		match := snapshot.Get(i)
		if !strings.HasPrefix(match.Item().AsString(), "alpha") {
			t.Fatalf("Stale match: %q", match.Item().AsString())
		}
		if match.ItemIndex() <= prev {
			t.Fatalf("Order not deterministic at rank %d", i)
		}
		prev = match.ItemIndex()
	}
}

func TestQueryChangeMidStream(t *testing.T) {
	n := New(2, nil, CaseSmart, false, false)
	injector := n.Injector()
	count := 10000
	for i := 0; i < count; i++ {
		if i%2 == 0 {
			injector.Push(fmt.Sprintf("foo-%d", i))
		} else {
			injector.Push(fmt.Sprintf("bar-%d", i))
		}
	}
	injector.Close()

	if err := n.SetPattern("foo", false); err != nil {
		t.Fatal(err)
	}
	n.Tick(time.Millisecond)
	if err := n.SetPattern("bar", false); err != nil {
		t.Fatal(err)
	}
	drain(t, n)

	snapshot := n.Snapshot()
	if snapshot.Generation() != 2 {
		t.Errorf("Invalid generation: %d", snapshot.Generation())
	}
	if snapshot.ItemCount() != count/2 {
		t.Errorf("Invalid item count: %d", snapshot.ItemCount())
	}
	for i := 0; i < snapshot.ItemCount(); i++ {
		if !strings.HasPrefix(snapshot.Get(i).Item().AsString(), "bar") {
			t.Fatalf("Stale match under the old pattern: %q", snapshot.Get(i).Item().AsString())
		}
	}
}

func TestItemsAfterPattern(t *testing.T) {
	// Items pushed after the pattern was set must still be matched
	n := New(1, nil, CaseSmart, false, false)
	if err := n.SetPattern("needle", false); err != nil {
		t.Fatal(err)
	}
	drain(t, n)

	injector := n.Injector()
	injector.Push("haystack with a needle inside")
	injector.Push("nothing here")
	injector.Close()
	drain(t, n)

	snapshot := n.Snapshot()
	if snapshot.TotalCount() != 2 || snapshot.ItemCount() != 1 {
		t.Errorf("Invalid counts: %d/%d", snapshot.ItemCount(), snapshot.TotalCount())
	}
}

func TestSnapshotGenerationMonotone(t *testing.T) {
	n := New(1, nil, CaseSmart, false, false)
	injector := n.Injector()
	for i := 0; i < 100; i++ {
		injector.Push(fmt.Sprintf("item-%d", i))
	}
	injector.Close()

	lastGen := -1
	for _, query := range []string{"", "item", "item-1", "item-12"} {
		if err := n.SetPattern(query, true); err != nil {
			t.Fatal(err)
		}
		drain(t, n)
		gen := n.Snapshot().Generation()
		if gen <= lastGen {
			t.Errorf("Generation not monotone: %d after %d", gen, lastGen)
		}
		lastGen = gen
	}
}

func TestSetPatternInvalid(t *testing.T) {
	n := New(1, nil, CaseSmart, false, false)
	err := n.SetPattern("!", false)
	if err == nil || !errors.Is(err, ErrBadPattern) {
		t.Errorf("Expected ErrBadPattern, got %v", err)
	}
	// The pattern must be left unchanged
	if !n.Pattern().IsEmpty() {
		t.Error("Failed SetPattern must not alter the pattern")
	}
	// An empty query is not an error
	if err := n.SetPattern("", false); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNotifyCallback(t *testing.T) {
	var notified atomic.Int32
	n := New(1, func() { notified.Add(1) }, CaseSmart, false, false)
	injector := n.Injector()
	injector.Push("one")
	injector.Close()
	drain(t, n)
	if notified.Load() == 0 {
		t.Error("Expected the notify callback to fire")
	}
}

func TestPositions(t *testing.T) {
	n := New(1, nil, CaseSmart, false, false)
	injector := n.Injector()
	injector.Push("xf foo")
	injector.Close()
	if err := n.SetPattern("foo", false); err != nil {
		t.Fatal(err)
	}
	drain(t, n)

	snapshot := n.Snapshot()
	if snapshot.ItemCount() != 1 {
		t.Fatalf("Invalid item count: %d", snapshot.ItemCount())
	}
	pos := n.Positions(snapshot.Get(0).Item())
	// Fuzzy positions arrive in reverse order
	expected := []int{5, 4, 3}
	if len(pos) != len(expected) {
		t.Fatalf("Invalid positions: %v", pos)
	}
	for i := range pos {
		if pos[i] != expected[i] {
			t.Fatalf("Invalid positions: %v", pos)
		}
	}
}

func TestInjectorRefcount(t *testing.T) {
	n := New(1, nil, CaseSmart, false, false)
	first := n.Injector()
	second := n.Injector()
	if n.ActiveInjectors() != 2 {
		t.Fatal()
	}
	first.Close()
	first.Close() // no-op
	if n.ActiveInjectors() != 1 {
		t.Fatal()
	}
	second.Close()
	if n.ActiveInjectors() != 0 {
		t.Fatal()
	}
}

func TestSnapshotImmutable(t *testing.T) {
	n := New(1, nil, CaseSmart, false, false)
	injector := n.Injector()
	injector.Push("aaa")
	if err := n.SetPattern("a", false); err != nil {
		t.Fatal(err)
	}
	drain(t, n)
	old := n.Snapshot()
	oldCount := old.ItemCount()

	injector.Push("aab")
	injector.Close()
	drain(t, n)

	if old.ItemCount() != oldCount {
		t.Error("Published snapshot must not change")
	}
	if n.Snapshot().ItemCount() != 2 {
		t.Errorf("Invalid item count: %d", n.Snapshot().ItemCount())
	}
}
