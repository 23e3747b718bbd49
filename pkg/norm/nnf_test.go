package norm

import (
	"testing"

	"github.com/htlogic/htnorm/pkg/logic"
)

func Test_Nnf_01(t *testing.T) {
	// ¬(s ∨ r) → ¬(q ∧ ¬¬p)
	testNnf(t, "s r | - q p - - & - >", "-s&-r>-q|-p")
}

func Test_Nnf_02(t *testing.T) {
	testNnf(t, "s r | q | p | - q p - - & - >", "-s&-r&-q&-p>-q|-p")
}

func Test_Nnf_03(t *testing.T) {
	testNnf(t, "s /f - - | - q /t - - & - >", "-s&/t>-q|/f")
}

func Test_Nnf_04(t *testing.T) {
	// double negation over an atom is preserved
	testNnf(t, "q - -", "--q")
}

func Test_Nnf_05(t *testing.T) {
	// triple negation collapses
	testNnf(t, "q - - -", "-q")
}

func Test_Nnf_06(t *testing.T) {
	testNnf(t, "q - - - -", "--q")
}

func Test_Nnf_07(t *testing.T) {
	// ¬(a → b) keeps its antecedent doubly negated
	testNnf(t, "p q > -", "--p&-q")
}

func Test_Nnf_08(t *testing.T) {
	// negated constants fold
	testNnf(t, "/t -", "/f")
	testNnf(t, "/f -", "/t")
	testNnf(t, "/t - -", "/t")
	testNnf(t, "/f - -", "/f")
}

func Test_Nnf_09(t *testing.T) {
	// ¬¬ over a compound is pushed to its fixed point
	testNnf(t, "p q & - -", "--p&--q")
	testNnf(t, "p q | - -", "--p|--q")
}

func Test_Nnf_10(t *testing.T) {
	// implications below the top level are left untouched
	testNnf(t, "q - - p > r >", "--q>p>r")
}

// Shape & idempotence

func Test_Nnf_20(t *testing.T) {
	inputs := []string{
		"s r | - q p - - & - >",
		"s r | q | p | - q p - - & - >",
		"s /f - - | - q /t - - & - >",
		"p - q > p r > - >",
		"q - - p > r >",
		"t p q > r s > & >",
		"q p - - /f | >",
	}
	//
	for _, input := range inputs {
		f := Nnf(parse(t, input))
		// Shape: negations wrap literals or singly-negated literals only.
		if !InNnf(f) {
			t.Errorf("nnf(%q) = %q is not in NNF", input, f.String())
		}
		// Idempotence.
		if !logic.Equal(Nnf(f), f) {
			t.Errorf("nnf is not idempotent on %q: %q vs %q", input, Nnf(f).String(), f.String())
		}
	}
}

func Test_Nnf_21(t *testing.T) {
	// Negated implications are not in NNF, doubly-negated atoms are.
	if InNnf(parse(t, "p q > -")) {
		t.Errorf("negated implication accepted as NNF")
	}
	//
	if !InNnf(parse(t, "q - -")) {
		t.Errorf("doubly-negated atom rejected as NNF")
	}
	//
	if InNnf(parse(t, "p q & -")) {
		t.Errorf("negated conjunction accepted as NNF")
	}
}

func Test_Nnf_22(t *testing.T) {
	if err := CheckNnf(Nnf(parse(t, "p - q > p r > - >"))); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	//
	if err := CheckNnf(parse(t, "p q > -")); err == nil {
		t.Errorf("expected ErrNotInNnf")
	}
}

// ============================================================================
// Framework
// ============================================================================

func testNnf(t *testing.T, input, expected string) {
	t.Helper()
	//
	actual := Nnf(parse(t, input)).String()
	//
	if actual != expected {
		t.Errorf("nnf(%q): expected %q but got %q", input, expected, actual)
	}
}

func parse(t *testing.T, input string) logic.Expr {
	t.Helper()
	//
	e, err := logic.Parse(input)
	if err != nil {
		t.Fatalf("parsing %q failed: %v", input, err)
	}
	//
	return e
}
