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

// Package norm transforms formulas of Here-and-There (HT) logic into logic
// programs, that is sets of rules of the form
//
//	p1 & p2 & ... & pN > q1 | q2 | ... | qM
//
// where every pi and qj is an extended literal (and the consequent may also
// carry doubly-negated literals).  HT semantics is weaker than classical
// logic: double negation cannot be stripped, and the negation of an
// implication keeps its antecedent doubly negated.  Quantified formulas are
// handled by first pulling their quantifiers into a prenex prefix and then
// normalizing the matrix.
package norm

import (
	"errors"
	"fmt"

	"github.com/htlogic/htnorm/pkg/logic"
)

// ErrNotInNnf indicates an expression handed to the normalizer was not in
// Negation Normal Form.  Since Nnf establishes the shape and Normalize
// requires it, observing this error means an internal invariant was broken.
var ErrNotInNnf = errors.New("expression not in negation normal form")

// Nnf converts a quantifier-free formula into Negation Normal Form under HT
// semantics.  In the result, implications survive untouched, whilst every
// negation wraps either a literal or a singly-negated literal.  Double
// negation is a distinct semantic form in HT and is preserved; triple
// negation collapses to single negation; and negated implications rewrite as
//
//	¬(a → b)  ==>  ¬¬a ∧ ¬b
//
// The result is a fixed point of these rewrites, hence Nnf is idempotent.
func Nnf(e logic.Expr) logic.Expr {
	switch t := e.(type) {
	case *logic.Not:
		return nnfNot(t.Arg)
	case *logic.And:
		return logic.NewAnd(Nnf(t.Lhs), Nnf(t.Rhs))
	case *logic.Or:
		return logic.NewOr(Nnf(t.Lhs), Nnf(t.Rhs))
	case *logic.Implies:
		return logic.NewImplies(Nnf(t.Lhs), Nnf(t.Rhs))
	case *logic.Exists:
		return logic.NewExists(t.Var, Nnf(t.Body))
	case *logic.Forall:
		return logic.NewForall(t.Var, Nnf(t.Body))
	default:
		// Atom or Const
		return e
	}
}

// nnfNot normalizes the negation of a given (unnormalized) expression.
func nnfNot(arg logic.Expr) logic.Expr {
	switch t := arg.(type) {
	case *logic.Const:
		// ¬⊤ => ⊥ and ¬⊥ => ⊤
		return logic.NewConst(!t.Value)
	case *logic.Atom:
		return logic.NewNot(t)
	case *logic.Not:
		return nnfDoubleNot(t.Arg)
	case *logic.And:
		// ¬(a ∧ b) => ¬a ∨ ¬b
		return logic.NewOr(nnfNot(t.Lhs), nnfNot(t.Rhs))
	case *logic.Or:
		// ¬(a ∨ b) => ¬a ∧ ¬b
		return logic.NewAnd(nnfNot(t.Lhs), nnfNot(t.Rhs))
	case *logic.Implies:
		// ¬(a → b) => ¬¬a ∧ ¬b
		return logic.NewAnd(nnfDoubleNot(t.Lhs), nnfNot(t.Rhs))
	default:
		// Quantifier: outside the (quantifier-free) contract, so left alone.
		return logic.NewNot(Nnf(arg))
	}
}

// nnfDoubleNot normalizes ¬¬x.  Doubly-negated atoms are preserved, constants
// fold away, a further negation collapses, and compound arguments are pushed
// through to their fixed point.
func nnfDoubleNot(x logic.Expr) logic.Expr {
	switch t := x.(type) {
	case *logic.Atom:
		return logic.NewNot(logic.NewNot(t))
	case *logic.Const:
		// ¬¬⊤ => ⊤ and ¬¬⊥ => ⊥
		return t
	case *logic.Not:
		// ¬¬¬y => ¬y
		return nnfNot(t.Arg)
	default:
		// ¬¬φ over a compound φ: normalize ¬φ first, then negate again.
		return nnfNot(nnfNot(x))
	}
}

// CheckNnf returns ErrNotInNnf (with the offending expression) unless a given
// expression satisfies the NNF shape.
func CheckNnf(e logic.Expr) error {
	if !InNnf(e) {
		return fmt.Errorf("%w: %s", ErrNotInNnf, e.String())
	}
	//
	return nil
}

// InNnf determines whether a given expression satisfies the NNF shape
// produced by Nnf: every negation wraps a literal or a singly-negated
// literal, and no implication occurs beneath a negation.  Implications
// elsewhere are permitted, since they are decomposed later by the
// normalizer itself.
func InNnf(e logic.Expr) bool {
	switch t := e.(type) {
	case *logic.Not:
		if _, ok := logic.AsDoubleNegation(e); ok {
			inner := t.Arg.(*logic.Not)
			return logic.IsLiteral(inner.Arg)
		}
		//
		return logic.IsLiteral(t.Arg)
	case *logic.And:
		return InNnf(t.Lhs) && InNnf(t.Rhs)
	case *logic.Or:
		return InNnf(t.Lhs) && InNnf(t.Rhs)
	case *logic.Implies:
		return InNnf(t.Lhs) && InNnf(t.Rhs)
	case *logic.Exists:
		return InNnf(t.Body)
	case *logic.Forall:
		return InNnf(t.Body)
	default:
		return true
	}
}
