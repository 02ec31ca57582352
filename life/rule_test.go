package life

import (
	"math/rand"
	"testing"
)

func TestParseRuleValid(t *testing.T) {
	cases := []struct {
		in             string
		birth, survive uint16
	}{
		{"B3/S23", 1 << 3, 1<<2 | 1<<3},
		{"B36/S23", 1<<3 | 1<<6, 1<<2 | 1<<3},
		{"B2/S", 1 << 2, 0},
		{"B/S", 0, 0},
		{"b3/s23", 1 << 3, 1<<2 | 1<<3},
	}
	for _, tc := range cases {
		r, err := ParseRule(tc.in)
		if err != nil {
			t.Errorf("ParseRule(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if r.BirthMask != tc.birth || r.SurvivalMask != tc.survive {
			t.Errorf("ParseRule(%q) = (%b, %b), want (%b, %b)", tc.in, r.BirthMask, r.SurvivalMask, tc.birth, tc.survive)
		}
	}
}

func TestParseRuleInvalid(t *testing.T) {
	cases := []string{
		"", "B3", "B3S23", "X3/S23", "B3/X23", "B9/S23", "B3/S0023456789", "B3/S-1",
	}
	for _, in := range cases {
		if _, err := ParseRule(in); err == nil {
			t.Errorf("ParseRule(%q): expected error, got none", in)
		} else if _, ok := err.(*ConfigurationError); !ok {
			t.Errorf("ParseRule(%q): error is %T, want *ConfigurationError", in, err)
		}
	}
}

func TestRuleStringRoundTrip(t *testing.T) {
	for _, in := range []string{"B3/S23", "B36/S23", "B2/S", "B234/S", "B3/S12345678"} {
		r, err := ParseRule(in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", in, err)
		}
		if got := r.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}

func TestFormatRuleMatchesParsedMasks(t *testing.T) {
	r := Rule{BirthMask: 1<<3 | 1<<6, SurvivalMask: 1 << 2}
	if got, want := r.String(), "B36/S2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSpecializedKernelsMatchGenericKernel(t *testing.T) {
	specs := []struct {
		name string
		fn   func(above, center, below Cluster) Cluster
		rule Rule
	}{
		{"Conway", kernelFor[Conway], Rule{BirthMask: 1 << 3, SurvivalMask: 1<<2 | 1<<3}},
		{"HighLife", kernelFor[HighLife], Rule{BirthMask: 1<<3 | 1<<6, SurvivalMask: 1<<2 | 1<<3}},
		{"Seeds", kernelFor[Seeds], Rule{BirthMask: 1 << 2, SurvivalMask: 0}},
		{"B234", kernelFor[B234], Rule{BirthMask: 1<<2 | 1<<3 | 1<<4, SurvivalMask: 0}},
		{"LifeWithoutDeath", kernelFor[LifeWithoutDeath], Rule{BirthMask: 1 << 3, SurvivalMask: func() uint16 {
			var m uint16
			for k := 1; k <= 8; k++ {
				m |= 1 << uint(k)
			}
			return m
		}()}},
	}

	rng := rand.New(rand.NewSource(1))
	for _, spec := range specs {
		for trial := 0; trial < 200; trial++ {
			above := Cluster(rng.Uint64()) & dataBitsMask
			center := Cluster(rng.Uint64()) & dataBitsMask
			below := Cluster(rng.Uint64()) & dataBitsMask

			got := spec.fn(above, center, below)
			want := kernel(above, center, below, spec.rule.BirthMask, spec.rule.SurvivalMask)
			if got != want {
				t.Fatalf("%s: kernelFor and generic kernel disagree: got %x want %x", spec.name, got, want)
			}
		}
	}
}

func TestSpecializedKernelLookup(t *testing.T) {
	r, _ := ParseRule("B3/S23")
	if _, ok := specializedKernel(r); !ok {
		t.Error("Conway rule should resolve to a specialized kernel")
	}
	r, _ = ParseRule("B234/S")
	if _, ok := specializedKernel(r); !ok {
		t.Error("B234/S should resolve to a specialized kernel")
	}
	r, _ = ParseRule("B4/S34")
	if _, ok := specializedKernel(r); ok {
		t.Error("unrecognized rule should not resolve to a specialized kernel")
	}
}
