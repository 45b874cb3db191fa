package perturb

import "testing"

func TestGenerator_Reproducible(t *testing.T) {
	a := New(1000)
	b := New(1000)

	for i := 0; i < 200; i++ {
		var x, y float64
		switch i % 3 {
		case 0:
			x, y = a.Unit(), b.Unit()
		case 1:
			x, y = a.Noise(), b.Noise()
		default:
			x, y = float64(a.IntRange(1500, 2500)), float64(b.IntRange(1500, 2500))
		}
		if x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestGenerator_SeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 50; i++ {
		if a.Unit() == b.Unit() {
			same++
		}
	}
	if same == 50 {
		t.Error("generators with different seeds produced identical sequences")
	}
}

func TestGenerator_Ranges(t *testing.T) {
	g := New(7)

	for i := 0; i < 10000; i++ {
		if u := g.Unit(); u < 0 || u >= 1 {
			t.Fatalf("Unit() = %v, want [0, 1)", u)
		}
		if n := g.Noise(); n < 0 || n >= NoiseScale {
			t.Fatalf("Noise() = %v, want [0, %v)", n, NoiseScale)
		}
		if k := g.IntRange(1500, 2500); k < 1500 || k > 2500 {
			t.Fatalf("IntRange() = %d, want [1500, 2500]", k)
		}
	}
}

func TestGenerator_IntRangeDegenerate(t *testing.T) {
	g := New(7)
	if got := g.IntRange(5, 5); got != 5 {
		t.Errorf("IntRange(5, 5) = %d, want 5", got)
	}
	if got := g.IntRange(9, 3); got != 9 {
		t.Errorf("IntRange(9, 3) = %d, want 9", got)
	}
}

func TestGenerator_Choice(t *testing.T) {
	g := New(11)

	for i := 0; i < 100; i++ {
		if g.Choice(1) {
			t.Fatal("Choice(1) returned true")
		}
	}

	trues := 0
	for i := 0; i < 10000; i++ {
		if g.Choice(0.5) {
			trues++
		}
	}
	if trues < 4500 || trues > 5500 {
		t.Errorf("Choice(0.5) true %d/10000 times, want about half", trues)
	}
}

func TestSeedFor(t *testing.T) {
	if SeedFor(1000, "equity", "SX5E") != SeedFor(1000, "equity", "SX5E") {
		t.Error("SeedFor() not deterministic")
	}
	if SeedFor(1000, "equity", "SX5E") == SeedFor(1000, "curve", "SX5E") {
		t.Error("SeedFor() ignores kind")
	}
	if SeedFor(1000, "equity", "SX5E") == SeedFor(1001, "equity", "SX5E") {
		t.Error("SeedFor() ignores base seed")
	}
}
