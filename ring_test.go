package lext

import "testing"

// Plain testing.T style: no assertion library, just direct comparisons
// and t.Fatalf.

func TestRingPushPopFull(t *testing.T) {
	r := newRing(5)
	for _, c := range []rune{'a', 'b', 'c', 'd', 'e'} {
		if err := r.push(c); err != nil {
			t.Fatalf("push(%q): unexpected error %v", c, err)
		}
	}
	if !r.isFull() {
		t.Fatalf("expected full buffer after 5 pushes into capacity 5")
	}
	if err := r.push('f'); err == nil {
		t.Fatalf("push into full buffer: expected error, got none")
	}

	c, err := r.read()
	if err != nil || c != 'a' {
		t.Fatalf("read() = %q, %v; want 'a', nil", c, err)
	}

	if err := r.push('f'); err != nil {
		t.Fatalf("push after freeing a slot: unexpected error %v", err)
	}

	if err := r.extend([]rune{'g', 'h', 'i'}); err == nil {
		t.Fatalf("extend with insufficient space: expected error, got none")
	}
	if r.len() != 5 {
		t.Fatalf("failed extend must not mutate: len() = %d, want 5", r.len())
	}

	want := []rune{'b', 'c', 'd', 'e', 'f'}
	for i, w := range want {
		c, err := r.read()
		if err != nil || c != w {
			t.Fatalf("read() #%d = %q, %v; want %q, nil", i, c, err, w)
		}
	}
	if !r.isEmpty() {
		t.Fatalf("expected empty buffer after draining all reads")
	}
}

func TestRingPopUnderflow(t *testing.T) {
	r := newRing(3)
	if _, err := r.pop(); err == nil {
		t.Fatalf("pop on empty buffer: expected error, got none")
	}
	if _, err := r.read(); err == nil {
		t.Fatalf("read on empty buffer: expected error, got none")
	}
}

func TestRingPrefixAndPop(t *testing.T) {
	r := newRing(3)
	if err := r.prefix('c'); err != nil {
		t.Fatalf("prefix(c): %v", err)
	}
	if err := r.prefix('b'); err != nil {
		t.Fatalf("prefix(b): %v", err)
	}
	if err := r.prefix('a'); err != nil {
		t.Fatalf("prefix(a): %v", err)
	}
	// prefix is FIFO with pop: first prefixed is first popped from the end.
	c, _ := r.pop()
	if c != 'c' {
		t.Fatalf("pop() after three prefixes = %q, want 'c'", c)
	}
}

func TestRingExtendAtomicFailureLeavesBufferUnchanged(t *testing.T) {
	r := newRing(4)
	if err := r.extend([]rune{'x', 'y'}); err != nil {
		t.Fatalf("extend: %v", err)
	}
	before := append([]rune(nil), r.buf...)
	beforeStart, beforeSize := r.start, r.size

	if err := r.extend([]rune{'1', '2', '3'}); err == nil {
		t.Fatalf("extend beyond capacity: expected error, got none")
	}
	if r.start != beforeStart || r.size != beforeSize {
		t.Fatalf("extend failure mutated buffer bookkeeping")
	}
	for i := range before {
		if r.buf[i] != before[i] {
			t.Fatalf("extend failure mutated backing array at %d", i)
		}
	}
}

func TestRingPrependPreservesOrder(t *testing.T) {
	r := newRing(6)
	if err := r.extend([]rune{'d', 'e'}); err != nil {
		t.Fatalf("extend: %v", err)
	}
	if err := r.prepend([]rune{'a', 'b', 'c'}); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	want := []rune{'a', 'b', 'c', 'd', 'e'}
	for i, w := range want {
		c, err := r.read()
		if err != nil || c != w {
			t.Fatalf("read() #%d = %q, %v; want %q, nil", i, c, err, w)
		}
	}
}

func TestRingClear(t *testing.T) {
	r := newRing(4)
	r.extend([]rune{'a', 'b', 'c'})
	r.clear()
	if !r.isEmpty() || r.len() != 0 {
		t.Fatalf("clear left buffer non-empty")
	}
	if err := r.extend([]rune{'w', 'x', 'y', 'z'}); err != nil {
		t.Fatalf("extend to full capacity after clear: %v", err)
	}
}
