package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRNGZeroSeed(t *testing.T) {
	r := NewRNG(0)
	if r.State() == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewRNG(7)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := r.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 values to appear, saw %d", len(seen))
	}

	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("non-positive n should return 0")
	}
}

func TestRNGFloat64Range(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f out of range", f)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFire)
	clone := f.Clone()
	f.Clear()

	if f.Has(ActionFire) {
		t.Error("Clear should reset actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("clone should keep its actions")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionLeft)
	if !zero.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestBallColorWraps(t *testing.T) {
	if BallColor(0) != ColorRed {
		t.Errorf("BallColor(0) = %v", BallColor(0))
	}
	if BallColor(len(BallColors)) != BallColor(0) {
		t.Error("palette should wrap")
	}
	if BallColor(-1) != ColorDefault {
		t.Error("negative index should be default")
	}
}
