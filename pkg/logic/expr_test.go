package logic

import (
	"testing"
)

func Test_Expr_01(t *testing.T) {
	// structural equality is by shape and payload, not identity
	lhs := NewAnd(NewAtom("p"), NewNot(NewAtom("q")))
	rhs := NewAnd(NewAtom("p"), NewNot(NewAtom("q")))
	//
	if !Equal(lhs, rhs) {
		t.Errorf("structurally identical expressions compare unequal")
	}
}

func Test_Expr_02(t *testing.T) {
	pairs := [][2]string{
		{"p", "q"},
		{"p", "p -"},
		{"p q &", "p q |"},
		{"p q &", "q p &"},
		{"p q >", "q p >"},
		{"x p(x) /E", "x p(x) /F"},
		{"/t", "/f"},
		{"p", "/t"},
	}
	//
	for _, pair := range pairs {
		lhs, rhs := parse(t, pair[0]), parse(t, pair[1])
		//
		if Equal(lhs, rhs) {
			t.Errorf("%q and %q compare equal", pair[0], pair[1])
		}
		// Cmp is antisymmetric
		if lhs.Cmp(rhs)+rhs.Cmp(lhs) != 0 {
			t.Errorf("Cmp not antisymmetric on %q and %q", pair[0], pair[1])
		}
	}
}

func Test_Expr_03(t *testing.T) {
	for _, input := range []string{"p", "/t", "/f", "q(x)"} {
		if !IsLiteral(parse(t, input)) {
			t.Errorf("%q not recognised as literal", input)
		}
	}
	//
	for _, input := range []string{"p -", "p q &", "x p(x) /E"} {
		if IsLiteral(parse(t, input)) {
			t.Errorf("%q recognised as literal", input)
		}
	}
}

func Test_Expr_04(t *testing.T) {
	for _, input := range []string{"p", "p -", "/t -", "/f"} {
		if !IsExtendedLiteral(parse(t, input)) {
			t.Errorf("%q not recognised as extended literal", input)
		}
	}
	// a doubly-negated literal is not an extended literal
	for _, input := range []string{"p - -", "p q & -"} {
		if IsExtendedLiteral(parse(t, input)) {
			t.Errorf("%q recognised as extended literal", input)
		}
	}
}

func Test_Expr_05(t *testing.T) {
	if negated, ok := AsDoubleNegation(parse(t, "p - -")); !ok || negated.String() != "-p" {
		t.Errorf("failed to destructure a double negation")
	}
	//
	if _, ok := AsDoubleNegation(parse(t, "p -")); ok {
		t.Errorf("single negation destructured as double")
	}
}

func Test_Expr_06(t *testing.T) {
	cases := map[string]string{
		"p":             "p",
		"p -":           "-p",
		"p - -":         "--p",
		"p q &":         "p&q",
		"p q |":         "p|q",
		"p q >":         "p>q",
		"/t /f &":       "/t&/f",
		"s r | - q - &": "-s|r&-q",
	}
	//
	for input, expected := range cases {
		if actual := parse(t, input).String(); actual != expected {
			t.Errorf("String(%q): expected %q but got %q", input, expected, actual)
		}
	}
}

func Test_Expr_07(t *testing.T) {
	// Rpn round-trips through the parser
	inputs := []string{
		"p",
		"p - -",
		"q p - - /f | >",
		"z w p x y q(x) /E /F > /E /E",
		"p - q > p r > - >",
	}
	//
	for _, input := range inputs {
		e := parse(t, input)
		//
		if e.Rpn() != input {
			t.Errorf("Rpn(%q) = %q", input, e.Rpn())
		}
		//
		if !Equal(parse(t, e.Rpn()), e) {
			t.Errorf("Rpn of %q does not round-trip", input)
		}
	}
}

func Test_Expr_08(t *testing.T) {
	if !HasQuantifier(parse(t, "p x q(x) /E > z p(z) /F &")) {
		t.Errorf("quantifier not found")
	}
	//
	if HasQuantifier(parse(t, "p - q > p r > - >")) {
		t.Errorf("quantifier found in propositional formula")
	}
}

// ============================================================================
// Framework
// ============================================================================

func parse(t *testing.T, input string) Expr {
	t.Helper()
	//
	e, err := Parse(input)
	if err != nil {
		t.Fatalf("parsing %q failed: %v", input, err)
	}
	//
	return e
}
