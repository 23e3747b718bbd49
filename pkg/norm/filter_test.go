package norm

import (
	"slices"
	"sort"
	"testing"
)

func Test_Filter_01(t *testing.T) {
	// minimizing the paper example drops two tautologies and one subsumed rule
	testMinimize(t, "p - q > p r > - >",
		" > -r | -p",
		"q > -r",
		"-p & q > ")
}

func Test_Filter_02(t *testing.T) {
	// "-q > r" subsumes "-q > r | -p"
	testMinimize(t, "q - - p > r >",
		"-q > r",
		"p > r")
}

func Test_Filter_03(t *testing.T) {
	// nothing to remove
	testMinimize(t, "r q p > >",
		"r & q > p",
		"r & -p > -q")
}

func Test_Filter_04(t *testing.T) {
	taut := rule(t, []string{"p", "q -"}, []string{"r", "p"})
	//
	if !taut.IsTautology() {
		t.Errorf("%q not recognised as tautology", taut.String())
	}
	//
	if rule(t, []string{"p"}, []string{"r"}).IsTautology() {
		t.Errorf("tautology misdetected")
	}
}

func Test_Filter_05(t *testing.T) {
	var (
		weaker   = rule(t, []string{"p"}, []string{"r"})
		stronger = rule(t, []string{"p", "q"}, []string{"r", "s -"})
	)
	//
	if !weaker.Subsumes(stronger) {
		t.Errorf("%q should subsume %q", weaker.String(), stronger.String())
	}
	//
	if stronger.Subsumes(weaker) {
		t.Errorf("%q should not subsume %q", stronger.String(), weaker.String())
	}
	// every rule subsumes itself, which Minimize must ignore
	if !weaker.Subsumes(weaker) {
		t.Errorf("subsumption should be reflexive")
	}
}

func Test_Filter_06(t *testing.T) {
	// two rules with the same literals in different orders collapse to one
	program := Program{
		rule(t, []string{"p", "q"}, nil),
		rule(t, []string{"q", "p"}, nil),
	}
	//
	if minimized := program.Minimize(); len(minimized) != 1 {
		t.Errorf("expected 1 rule after minimization, got %d", len(minimized))
	}
}

func Test_Filter_07(t *testing.T) {
	// minimization never adds or rewrites rules
	for _, input := range []string{"p - q > p r > - >", "q - - p > r >", "q p > s r > >"} {
		var (
			program   = Normalize(Nnf(parse(t, input)))
			all       = program.Strings()
			minimized = program.Minimize().Strings()
		)
		//
		for _, s := range minimized {
			if !slices.Contains(all, s) {
				t.Errorf("minimization invented rule %q for %q", s, input)
			}
		}
	}
}

// ============================================================================
// Framework
// ============================================================================

func testMinimize(t *testing.T, input string, expected ...string) {
	t.Helper()
	//
	actual := Normalize(Nnf(parse(t, input))).Minimize().Strings()
	//
	sort.Strings(expected)
	//
	if !slices.Equal(actual, expected) {
		t.Errorf("minimize(%q): expected %v but got %v", input, expected, actual)
	}
}

// rule constructs a finished rule from body and head literals, given in
// reverse-Polish notation.
func rule(t *testing.T, body, head []string) Rule {
	t.Helper()
	//
	var r Rule
	//
	for _, s := range body {
		r.Body.Insert(parse(t, s))
	}
	//
	for _, s := range head {
		r.Head.Insert(parse(t, s))
	}
	//
	return r
}
