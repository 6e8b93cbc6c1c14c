package core

import "testing"

func TestFIFOPushPopOrder(t *testing.T) {
	var f FIFO
	for i := uint32(1); i <= 4; i++ {
		if !f.Push(i) {
			t.Fatalf("push %d failed unexpectedly", i)
		}
	}
	if !f.Full() {
		t.Fatal("expected full after 4 pushes")
	}
	if f.Push(5) {
		t.Fatal("push into full fifo should fail")
	}
	for i := uint32(1); i <= 4; i++ {
		v, ok := f.Pop()
		if !ok || v != i {
			t.Fatalf("pop %d: got %d,%v", i, v, ok)
		}
	}
	if !f.Empty() {
		t.Fatal("expected empty after draining")
	}
	if _, ok := f.Pop(); ok {
		t.Fatal("pop from empty fifo should fail")
	}
}

func TestFIFOSetLevelClampsAndRawAccess(t *testing.T) {
	var f FIFO
	f.SetRaw(0, 0x11)
	f.SetRaw(1, 0x22)
	f.SetLevel(9)
	if f.Level() != 4 {
		t.Errorf("SetLevel(9) clamped to %d, want 4", f.Level())
	}
	if f.Raw(0) != 0x11 || f.Raw(1) != 0x22 {
		t.Errorf("raw slots not preserved: %#x %#x", f.Raw(0), f.Raw(1))
	}
}
