package logic

import (
	"testing"
)

func Test_Subst_01(t *testing.T) {
	e := parse(t, "p(x) x q(x) /E &")
	//
	if !ContainsVar(e, "x") {
		t.Errorf("x not found")
	}
	//
	if ContainsVar(e, "y") {
		t.Errorf("y found")
	}
}

func Test_Subst_02(t *testing.T) {
	// occurrences are matched at identifier boundaries only
	if ContainsVar(parse(t, "xs"), "x") {
		t.Errorf("x found inside xs")
	}
	//
	if ContainsVar(parse(t, "max(y)"), "x") {
		t.Errorf("x found inside max")
	}
	//
	if !ContainsVar(parse(t, "p(x,y)"), "y") {
		t.Errorf("y not found in p(x,y)")
	}
}

func Test_Subst_03(t *testing.T) {
	e := RenameVar(parse(t, "x p(x) q(x) & /E"), "x", "z")
	//
	if e.Rpn() != "z p(z) q(z) & /E" {
		t.Errorf("unexpected renaming %q", e.Rpn())
	}
}

func Test_Subst_04(t *testing.T) {
	// renaming never mutates its input
	input := parse(t, "x p(x) /E")
	_ = RenameVar(input, "x", "z")
	//
	if input.Rpn() != "x p(x) /E" {
		t.Errorf("input mutated to %q", input.Rpn())
	}
}

func Test_Subst_05(t *testing.T) {
	fresh := FreshVar("x", parse(t, "p(x1) x2 q(x2) /E &"))
	//
	if fresh != "x3" {
		t.Errorf("expected x3, got %s", fresh)
	}
}

func Test_Subst_06(t *testing.T) {
	// substituting a constant drops the quantifier binding its variable
	e := ReplaceConstants(parse(t, "x p(x) /E"), map[string][]string{"c": {"x"}})
	//
	if e.Rpn() != "p(c)" {
		t.Errorf("unexpected substitution %q", e.Rpn())
	}
}

func Test_Subst_07(t *testing.T) {
	e := ReplaceConstants(parse(t, "x p(x) r(y) & /E y s(y) /F &"),
		map[string][]string{"a": {"x"}, "b": {"y"}})
	//
	if e.Rpn() != "p(a) r(b) & s(b) &" {
		t.Errorf("unexpected substitution %q", e.Rpn())
	}
}
