package sampler

import (
	"slices"
	"testing"
)

func population(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestDrawSize(t *testing.T) {
	cases := []struct {
		name string
		pop  int
		n    int
		want int
	}{
		{"fewer than population", 20, 5, 5},
		{"equal to population", 7, 7, 7},
		{"more than population", 3, 10, 3},
		{"zero", 10, 0, 0},
		{"negative", 10, -2, 0},
		{"empty population", 0, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Draw(NewRand(1), population(tc.pop), tc.n)
			if got == nil {
				t.Fatal("Draw returned nil")
			}
			if len(got) != tc.want {
				t.Errorf("len = %d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestDrawDistinctMembers(t *testing.T) {
	pop := population(50)
	for seed := uint64(1); seed <= 20; seed++ {
		got := Draw(NewRand(seed), pop, 25)
		seen := make(map[int]bool, len(got))
		for _, v := range got {
			if v < 0 || v >= len(pop) {
				t.Fatalf("seed %d: %d is not in the population", seed, v)
			}
			if seen[v] {
				t.Fatalf("seed %d: %d drawn twice", seed, v)
			}
			seen[v] = true
		}
	}
}

func TestDrawWholePopulationIsPermutation(t *testing.T) {
	pop := population(12)
	got := Draw(NewRand(42), pop, len(pop))
	slices.Sort(got)
	if !slices.Equal(got, pop) {
		t.Errorf("sorted draw = %v, want %v", got, pop)
	}
}

func TestDrawReproducibleWithSeed(t *testing.T) {
	pop := population(100)
	a := Draw(NewRand(7), pop, 10)
	b := Draw(NewRand(7), pop, 10)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestDrawLeavesPopulationAlone(t *testing.T) {
	pop := population(30)
	orig := slices.Clone(pop)
	got := Draw(NewRand(3), pop, 30)
	if !slices.Equal(pop, orig) {
		t.Error("population was reordered")
	}
	got[0] = -1
	if pop[0] == -1 {
		t.Error("result shares storage with population")
	}
}

func TestDrawCoversPopulation(t *testing.T) {
	// Each member of a small population should turn up over many draws.
	pop := population(10)
	rng := NewRand(99)
	counts := make([]int, len(pop))
	for range 2000 {
		for _, v := range Draw(rng, pop, 3) {
			counts[v]++
		}
	}
	// Expected 600 each; a uniform draw stays well inside these bounds.
	for v, c := range counts {
		if c < 450 || c > 750 {
			t.Errorf("member %d drawn %d times out of 6000 picks", v, c)
		}
	}
}
