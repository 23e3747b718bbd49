// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package norm

import (
	"github.com/htlogic/htnorm/pkg/logic"
)

// Quantifier describes one element of a prenex prefix.
type Quantifier struct {
	// Universal is true for ∀ and false for ∃.
	Universal bool
	// Var holds the bound-variable name.
	Var *logic.Atom
}

// Pnf converts a formula into Prenex Normal Form, in which every quantifier
// sits on a linear chain at the root and the matrix beneath them is
// quantifier-free.  Negations flip a quantifier into its dual, as does
// pulling one out of the antecedent of an implication.  When a pull would
// capture a free occurrence of the bound variable in the other subformula,
// the bound variable is renamed to a fresh name first.  The rewrite is
// repeated until a fixed point is reached.
func Pnf(e logic.Expr) logic.Expr {
	current := prenex(e)
	//
	for {
		next := prenex(current)
		//
		if logic.Equal(current, next) {
			return next
		}
		//
		current = next
	}
}

// Prefix returns the quantifier chain of a formula in PNF, outermost first,
// with the matrix removed.
func Prefix(e logic.Expr) []Quantifier {
	var prefix []Quantifier
	//
	for {
		switch t := e.(type) {
		case *logic.Exists:
			prefix = append(prefix, Quantifier{false, t.Var})
			e = t.Body
		case *logic.Forall:
			prefix = append(prefix, Quantifier{true, t.Var})
			e = t.Body
		default:
			return prefix
		}
	}
}

// Matrix returns the body of the innermost quantifier of a formula in PNF,
// that is the formula with its quantifier prefix removed.
func Matrix(e logic.Expr) logic.Expr {
	for {
		switch t := e.(type) {
		case *logic.Exists:
			e = t.Body
		case *logic.Forall:
			e = t.Body
		default:
			return e
		}
	}
}

// prenex performs a single bottom-up pass, pulling at most one quantifier
// past each operator.  Pnf iterates this to a fixed point.
func prenex(e logic.Expr) logic.Expr {
	switch t := e.(type) {
	case *logic.Not:
		return prenexNot(prenex(t.Arg))
	case *logic.And:
		lhs, rhs := prenex(t.Lhs), prenex(t.Rhs)
		return prenexBinary(lhs, rhs, joinAnd)
	case *logic.Or:
		lhs, rhs := prenex(t.Lhs), prenex(t.Rhs)
		return prenexBinary(lhs, rhs, joinOr)
	case *logic.Implies:
		lhs, rhs := prenex(t.Lhs), prenex(t.Rhs)
		return prenexImplies(lhs, rhs)
	case *logic.Exists:
		return logic.NewExists(t.Var, prenex(t.Body))
	case *logic.Forall:
		return logic.NewForall(t.Var, prenex(t.Body))
	default:
		return e
	}
}

// prenexNot pushes a negation through a quantifier, flipping it into its
// dual.
func prenexNot(arg logic.Expr) logic.Expr {
	switch q := arg.(type) {
	case *logic.Exists:
		// ¬∃x.φ => ∀x.¬φ
		return logic.NewForall(q.Var, logic.NewNot(q.Body))
	case *logic.Forall:
		// ¬∀x.φ => ∃x.¬φ
		return logic.NewExists(q.Var, logic.NewNot(q.Body))
	default:
		return logic.NewNot(arg)
	}
}

// prenexBinary pulls a quantifier out of one side of a conjunction or
// disjunction.  When both sides are quantified, the right-hand quantifier is
// pulled first and therefore ends up outermost.
func prenexBinary(lhs, rhs logic.Expr, join func(logic.Expr, logic.Expr) logic.Expr) logic.Expr {
	if q, ok := asQuantifier(rhs); ok {
		// φ ∘ Qx.ψ => Qx.(φ ∘ ψ)
		v, body := avoidCapture(q.v, q.body, lhs)
		return quantify(q.universal, v, join(lhs, body))
	} else if q, ok := asQuantifier(lhs); ok {
		// (Qx.φ) ∘ ψ => Qx.(φ ∘ ψ)
		v, body := avoidCapture(q.v, q.body, rhs)
		return quantify(q.universal, v, join(body, rhs))
	}
	//
	return join(lhs, rhs)
}

// prenexImplies pulls a quantifier out of one side of an implication.  A
// quantifier leaving the antecedent flips into its dual; one leaving the
// consequent does not.  As with prenexBinary, the consequent is preferred
// when both sides are quantified.
func prenexImplies(lhs, rhs logic.Expr) logic.Expr {
	if q, ok := asQuantifier(rhs); ok {
		// φ → Qx.ψ => Qx.(φ → ψ)
		v, body := avoidCapture(q.v, q.body, lhs)
		return quantify(q.universal, v, logic.NewImplies(lhs, body))
	} else if q, ok := asQuantifier(lhs); ok {
		// (∃x.φ) → ψ => ∀x.(φ → ψ) and (∀x.φ) → ψ => ∃x.(φ → ψ)
		v, body := avoidCapture(q.v, q.body, rhs)
		return quantify(!q.universal, v, logic.NewImplies(body, rhs))
	}
	//
	return logic.NewImplies(lhs, rhs)
}

// avoidCapture renames the bound variable of a quantifier being pulled past a
// sibling subformula, whenever that sibling contains a free occurrence of it.
func avoidCapture(v *logic.Atom, body, sibling logic.Expr) (*logic.Atom, logic.Expr) {
	if !logic.ContainsVar(sibling, v.Name) {
		return v, body
	}
	//
	fresh := logic.FreshVar(v.Name, body, sibling)
	//
	return logic.NewAtom(fresh), logic.RenameVar(body, v.Name, fresh)
}

type boundQuantifier struct {
	universal bool
	v         *logic.Atom
	body      logic.Expr
}

func asQuantifier(e logic.Expr) (boundQuantifier, bool) {
	switch t := e.(type) {
	case *logic.Exists:
		return boundQuantifier{false, t.Var, t.Body}, true
	case *logic.Forall:
		return boundQuantifier{true, t.Var, t.Body}, true
	default:
		return boundQuantifier{}, false
	}
}

func quantify(universal bool, v *logic.Atom, body logic.Expr) logic.Expr {
	if universal {
		return logic.NewForall(v, body)
	}
	//
	return logic.NewExists(v, body)
}

func joinAnd(lhs, rhs logic.Expr) logic.Expr {
	return logic.NewAnd(lhs, rhs)
}

func joinOr(lhs, rhs logic.Expr) logic.Expr {
	return logic.NewOr(lhs, rhs)
}
