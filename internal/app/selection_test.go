package app

import "testing"

func TestCursorBounds(t *testing.T) {
	for n := 0; n <= 4; n++ {
		var c Cursor
		for step := 0; step < 10; step++ {
			if step%3 == 0 {
				c.Up(n)
			} else {
				c.Down(n)
			}
			if n == 0 && c.Index() != 0 {
				t.Fatalf("n=0: cursor moved to %d", c.Index())
			}
			if n > 0 && (c.Index() < 0 || c.Index() >= n) {
				t.Fatalf("n=%d: cursor %d out of bounds", n, c.Index())
			}
		}
	}
}

func TestCursorUpDownIdempotent(t *testing.T) {
	const n = 5
	for i := 1; i < n-1; i++ {
		c := Cursor{index: i}
		c.Up(n)
		c.Down(n)
		if c.Index() != i {
			t.Fatalf("up/down from %d ended at %d", i, c.Index())
		}
		c.Down(n)
		c.Up(n)
		if c.Index() != i {
			t.Fatalf("down/up from %d ended at %d", i, c.Index())
		}
	}
}

func TestCursorClamp(t *testing.T) {
	c := Cursor{index: 4}
	c.Clamp(2)
	if c.Index() != 1 {
		t.Fatalf("expected 1, got %d", c.Index())
	}
	c.Clamp(0)
	if c.Index() != 0 {
		t.Fatalf("expected 0, got %d", c.Index())
	}
	c = Cursor{index: 1}
	c.Clamp(3)
	if c.Index() != 1 {
		t.Fatal("in-range cursor must not move")
	}
}

func TestCursorUpFromStaleIndex(t *testing.T) {
	c := Cursor{index: 9}
	c.Up(3)
	if c.Index() != 2 {
		t.Fatalf("expected 2, got %d", c.Index())
	}
}
