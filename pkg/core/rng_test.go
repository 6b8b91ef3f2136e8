package core

import (
	"math"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7).Source()
	b := NewRNG(7).Source()
	for i := 0; i < 64; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestBernoulliBounds(t *testing.T) {
	r := NewRNG(1).Source()
	for i := 0; i < 100; i++ {
		if Bernoulli(r, 0) {
			t.Fatal("p=0 must never succeed")
		}
		if !Bernoulli(r, 1) {
			t.Fatal("p=1 must always succeed")
		}
	}
}

func TestFillBernoulliFraction(t *testing.T) {
	buf := make([]bool, 200*200)
	FillBernoulli(NewRNG(99).Source(), buf, 0.3)
	alive := 0
	for _, c := range buf {
		if c {
			alive++
		}
	}
	frac := float64(alive) / float64(len(buf))
	if math.Abs(frac-0.3) > 0.01 {
		t.Fatalf("alive fraction %.4f, expected ~0.3", frac)
	}
}
