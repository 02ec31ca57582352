package life

import (
	"strconv"
	"strings"
)

// Rule is a totalistic birth/survival rule, spec.md §3/§4.5: BirthMask
// and SurvivalMask each have bit k (1 <= k <= 8) set iff a live-neighbor
// count of k causes the corresponding transition. Bit 0 is unused — a
// neighbor count of 0 never births a cell.
type Rule struct {
	BirthMask, SurvivalMask uint16
	text                    string
}

// String returns the rule in "Bx.../Sy..." form.
func (r Rule) String() string {
	if r.text != "" {
		return r.text
	}
	return formatRule(r.BirthMask, r.SurvivalMask)
}

func formatRule(birth, survival uint16) string {
	var b, s strings.Builder
	b.WriteByte('B')
	s.WriteByte('S')
	for k := 1; k <= 8; k++ {
		if birth&(1<<uint(k)) != 0 {
			b.WriteString(strconv.Itoa(k))
		}
		if survival&(1<<uint(k)) != 0 {
			s.WriteString(strconv.Itoa(k))
		}
	}
	return b.String() + "/" + s.String()
}

// ParseRule parses a rule string of the form "B<digits>/S<digits>", per
// spec.md §6. Digits are a subset of 1..8 in any order; repeats are
// tolerated. Empty digit lists are legal ("B/S" = always-die). Any other
// shape, or a digit outside 1..8, is a *ConfigurationError.
func ParseRule(s string) (Rule, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return Rule{}, configErrorf("rule %q: expected \"B<digits>/S<digits>\"", s)
	}
	bPart, sPart := parts[0], parts[1]
	if len(bPart) == 0 || (bPart[0] != 'B' && bPart[0] != 'b') {
		return Rule{}, configErrorf("rule %q: birth clause must start with 'B'", s)
	}
	if len(sPart) == 0 || (sPart[0] != 'S' && sPart[0] != 's') {
		return Rule{}, configErrorf("rule %q: survival clause must start with 'S'", s)
	}

	birth, err := parseDigitMask(bPart[1:])
	if err != nil {
		return Rule{}, configErrorf("rule %q: %v", s, err)
	}
	survival, err := parseDigitMask(sPart[1:])
	if err != nil {
		return Rule{}, configErrorf("rule %q: %v", s, err)
	}

	return Rule{BirthMask: birth, SurvivalMask: survival, text: formatRule(birth, survival)}, nil
}

func parseDigitMask(digits string) (uint16, error) {
	var mask uint16
	for _, c := range digits {
		if c < '1' || c > '8' {
			return 0, configErrorf("digit %q outside 1..8", c)
		}
		mask |= 1 << uint(c-'0')
	}
	return mask, nil
}

// RuleSpec is a compile-time rule marker, spec.md §4.5's "rule as a
// type-level parameter": a zero-size type whose Masks method the compiler
// inlines at each generic instantiation, collapsing kernelFor's formula
// down to a rule-specific bitwise expression exactly as the generic
// runtime-mask path (kernel, cluster.go) does at runtime. Mirrors the
// hwy.Tag / hwy.ScalableTag[T] marker-type-as-constraint idiom.
type RuleSpec interface {
	Masks() (birthMask, survivalMask uint16)
}

// Conway is B3/S23, the canonical Game of Life rule.
type Conway struct{}

// Masks returns Conway's birth/survival masks.
func (Conway) Masks() (uint16, uint16) { return 1 << 3, 1<<2 | 1<<3 }

// HighLife is B36/S23.
type HighLife struct{}

// Masks returns HighLife's birth/survival masks.
func (HighLife) Masks() (uint16, uint16) { return 1<<3 | 1<<6, 1<<2 | 1<<3 }

// Seeds is B2/S (never survives).
type Seeds struct{}

// Masks returns Seeds's birth/survival masks.
func (Seeds) Masks() (uint16, uint16) { return 1 << 2, 0 }

// B234 is B234/S (never survives; births on 2, 3, or 4 neighbors), one of
// the four popular rules spec.md §4.5 names as a hand-written
// specialization candidate.
type B234 struct{}

// Masks returns B234's birth/survival masks.
func (B234) Masks() (uint16, uint16) { return 1<<2 | 1<<3 | 1<<4, 0 }

// LifeWithoutDeath is B3/S12345678 (a live cell with at least one live
// neighbor never dies), a rule beyond spec.md §4.5's four named
// candidates. Survival at a neighbor count of 0 is not encodable, so an
// isolated live cell still dies.
type LifeWithoutDeath struct{}

// Masks returns Life without Death's birth/survival masks.
func (LifeWithoutDeath) Masks() (uint16, uint16) {
	var survival uint16
	for k := 1; k <= 8; k++ {
		survival |= 1 << uint(k)
	}
	return 1 << 3, survival
}

// kernelFor is the monomorphized specialization of kernel for a
// compile-time RuleSpec R: the Go compiler generates one instantiation of
// this function per concrete R, inlining R.Masks() and letting the
// optimizer constant-fold countMasks's loop down to the rule's minimal
// bitwise formula, e.g. Conway collapses toward
// ((center | bit1) & bit2) &^ bit3 as spec.md §4.1 describes.
func kernelFor[R RuleSpec](above, center, below Cluster) Cluster {
	var r R
	birth, survival := r.Masks()
	return kernel(above, center, below, birth, survival)
}

// specializedKernel returns the monomorphized kernel function for rule r
// if r matches one of the hand-written specializations, and ok=false
// otherwise (the caller should fall back to the generic mask-table path).
func specializedKernel(r Rule) (fn func(above, center, below Cluster) Cluster, ok bool) {
	switch r.String() {
	case "B3/S23":
		return kernelFor[Conway], true
	case "B36/S23":
		return kernelFor[HighLife], true
	case "B2/S":
		return kernelFor[Seeds], true
	case "B234/S":
		return kernelFor[B234], true
	case "B3/S12345678":
		return kernelFor[LifeWithoutDeath], true
	default:
		return nil, false
	}
}
