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
	log "github.com/sirupsen/logrus"

	"github.com/htlogic/htnorm/pkg/logic"
)

// Config controls optional behaviour of the normalizer.
type Config struct {
	// PruneRedundantImplications enables an aggressive variant of the
	// right-implication rule: when an implication is the sole pending
	// consequent and no disjunct has accumulated yet, the contrapositive
	// branch is dropped.  This shrinks the output at the cost of rules the
	// plain decomposition would emit.
	PruneRedundantImplications bool
}

// partial is a rule under construction.  The body and head slots hold
// extended literals already placed on their side, whilst the todo slots hold
// pending subformulas not yet decomposed.  All four slots behave as
// insertion-ordered sets.  A partial rule is finished when both todo slots
// are empty.
type partial struct {
	body     ExprSet
	bodyTodo ExprSet
	head     ExprSet
	headTodo ExprSet
}

// clone produces a disjoint copy of this partial rule, such that mutating the
// slots of one leaves the other untouched.  The expressions themselves are
// shared, which is safe since they are immutable.
func (p partial) clone() partial {
	return partial{p.body.Clone(), p.bodyTodo.Clone(), p.head.Clone(), p.headTodo.Clone()}
}

func (p partial) finished() Rule {
	return Rule{p.body, p.head}
}

// substitution inspects a partial rule and either reports that it is not
// applicable, or yields the partial rules replacing it (possibly none, when
// the rule is discarded outright).
type substitution func(*normalizer, partial) (bool, []partial)

type normalizer struct {
	config Config
	// Finished rules.
	done []Rule
	// Partial rules awaiting decomposition.
	work []partial
}

// Normalize transforms a formula in NNF into an HT-equivalent set of program
// rules, decomposing pending subformulas with an explicit worklist rather
// than recursion.  The result is the raw rule set; see Minimize for
// tautology elimination and subsumption.
func Normalize(e logic.Expr) Program {
	return NormalizeWith(Config{}, e)
}

// NormalizeWith behaves as Normalize under a given configuration.
func NormalizeWith(config Config, e logic.Expr) Program {
	var (
		n    = normalizer{config: config}
		seed partial
	)
	// A top-level implication seeds both sides; anything else is a pending
	// consequent.
	if imp, ok := e.(*logic.Implies); ok {
		seed.bodyTodo.Insert(imp.Lhs)
		seed.headTodo.Insert(imp.Rhs)
	} else {
		seed.headTodo.Insert(e)
	}
	//
	n.work = append(n.work, seed)
	n.run()
	//
	return n.done
}

func (p *normalizer) run() {
	for len(p.work) != 0 {
		// Pop the most recently added partial rule.
		f := p.work[len(p.work)-1]
		p.work = p.work[:len(p.work)-1]
		//
		switch {
		case !f.headTodo.IsEmpty():
			p.apply(f, rightRules)
		case !f.bodyTodo.IsEmpty():
			p.apply(f, leftRules)
		default:
			p.done = append(p.done, f.finished())
		}
	}
}

// apply attempts each substitution in order, committing the replacements of
// the first applicable one.  On well-formed NNF input some substitution
// always applies; a partial nothing applies to is treated as finished.
func (p *normalizer) apply(f partial, rules []substitution) {
	for _, rule := range rules {
		if applicable, replacements := rule(p, f); applicable {
			p.work = append(p.work, replacements...)
			return
		}
	}
	//
	log.Debugf("no substitution applies to partial rule %q", f.finished().String())
	//
	p.done = append(p.done, f.finished())
}

var leftRules = []substitution{
	(*normalizer).leftFalse,
	(*normalizer).leftTrue,
	(*normalizer).leftLiteral,
	(*normalizer).leftDoubleNegation,
	(*normalizer).leftAnd,
	(*normalizer).leftOr,
	(*normalizer).leftImplies,
}

var rightRules = []substitution{
	(*normalizer).rightTrue,
	(*normalizer).rightFalse,
	(*normalizer).rightLiteral,
	(*normalizer).rightDoubleNegation,
	(*normalizer).rightOr,
	(*normalizer).rightAnd,
	(*normalizer).rightImplies,
}

// ============================================================================
// Antecedent (left) rules
// ============================================================================

// leftFalse discards a partial rule whose antecedent contains ⊥, since it can
// never fire.
func (p *normalizer) leftFalse(f partial) (bool, []partial) {
	for _, a := range f.bodyTodo.ToArray() {
		if c, ok := a.(*logic.Const); ok && !c.Value {
			return true, nil
		}
	}
	//
	return false, nil
}

// leftTrue removes ⊤ from the antecedent.
func (p *normalizer) leftTrue(f partial) (bool, []partial) {
	for _, a := range f.bodyTodo.ToArray() {
		if c, ok := a.(*logic.Const); ok && c.Value {
			g := f.clone()
			g.bodyTodo.Remove(a)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// leftLiteral moves an extended literal into the finished antecedent.
func (p *normalizer) leftLiteral(f partial) (bool, []partial) {
	for _, a := range f.bodyTodo.ToArray() {
		if logic.IsExtendedLiteral(a) {
			g := f.clone()
			g.bodyTodo.Remove(a)
			g.body.Insert(a)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// leftDoubleNegation moves ¬¬x across the turnstile: ¬x becomes a pending
// consequent.  Under HT semantics the double negation is not stripped on the
// side it was found.
func (p *normalizer) leftDoubleNegation(f partial) (bool, []partial) {
	for _, a := range f.bodyTodo.ToArray() {
		if negated, ok := logic.AsDoubleNegation(a); ok {
			g := f.clone()
			g.bodyTodo.Remove(a)
			g.headTodo.Insert(negated)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// leftAnd replaces a pending conjunction with both of its conjuncts.
func (p *normalizer) leftAnd(f partial) (bool, []partial) {
	for _, a := range f.bodyTodo.ToArray() {
		if and, ok := a.(*logic.And); ok {
			g := f.clone()
			g.bodyTodo.Remove(a)
			g.bodyTodo.InsertAll(and.Lhs, and.Rhs)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// leftOr splits on a pending disjunction, producing one partial rule per
// disjunct.
func (p *normalizer) leftOr(f partial) (bool, []partial) {
	for _, a := range f.bodyTodo.ToArray() {
		if or, ok := a.(*logic.Or); ok {
			g := f.clone()
			g.bodyTodo.Remove(a)
			g.bodyTodo.Insert(or.Lhs)
			//
			h := f.clone()
			h.bodyTodo.Remove(a)
			h.bodyTodo.Insert(or.Rhs)
			//
			return true, []partial{g, h}
		}
	}
	//
	return false, nil
}

// leftImplies splits on a pending implication a → b in the antecedent,
// producing three partial rules: one assuming ¬a, one assuming b, and one
// moving a and ¬b into the consequent.
func (p *normalizer) leftImplies(f partial) (bool, []partial) {
	for _, a := range f.bodyTodo.ToArray() {
		if imp, ok := a.(*logic.Implies); ok {
			g := f.clone()
			g.bodyTodo.Remove(a)
			g.bodyTodo.Insert(Nnf(logic.NewNot(imp.Lhs)))
			//
			h := f.clone()
			h.bodyTodo.Remove(a)
			h.bodyTodo.Insert(imp.Rhs)
			//
			i := f.clone()
			i.bodyTodo.Remove(a)
			i.headTodo.InsertAll(imp.Lhs, Nnf(logic.NewNot(imp.Rhs)))
			//
			return true, []partial{g, h, i}
		}
	}
	//
	return false, nil
}

// ============================================================================
// Consequent (right) rules
// ============================================================================

// rightTrue discards a partial rule whose consequent contains ⊤, since it
// holds vacuously.
func (p *normalizer) rightTrue(f partial) (bool, []partial) {
	for _, b := range f.headTodo.ToArray() {
		if c, ok := b.(*logic.Const); ok && c.Value {
			return true, nil
		}
	}
	//
	return false, nil
}

// rightFalse removes ⊥ from the consequent.
func (p *normalizer) rightFalse(f partial) (bool, []partial) {
	for _, b := range f.headTodo.ToArray() {
		if c, ok := b.(*logic.Const); ok && !c.Value {
			g := f.clone()
			g.headTodo.Remove(b)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// rightLiteral moves an extended literal into the finished consequent.
func (p *normalizer) rightLiteral(f partial) (bool, []partial) {
	for _, b := range f.headTodo.ToArray() {
		if logic.IsExtendedLiteral(b) {
			g := f.clone()
			g.headTodo.Remove(b)
			g.head.Insert(b)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// rightDoubleNegation moves ¬¬x across the turnstile: ¬x becomes a pending
// antecedent.  This is the dual of leftDoubleNegation.
func (p *normalizer) rightDoubleNegation(f partial) (bool, []partial) {
	for _, b := range f.headTodo.ToArray() {
		if negated, ok := logic.AsDoubleNegation(b); ok {
			g := f.clone()
			g.headTodo.Remove(b)
			g.bodyTodo.Insert(negated)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// rightOr replaces a pending disjunction with both of its disjuncts.
func (p *normalizer) rightOr(f partial) (bool, []partial) {
	for _, b := range f.headTodo.ToArray() {
		if or, ok := b.(*logic.Or); ok {
			g := f.clone()
			g.headTodo.Remove(b)
			g.headTodo.InsertAll(or.Lhs, or.Rhs)
			//
			return true, []partial{g}
		}
	}
	//
	return false, nil
}

// rightAnd splits on a pending conjunction, producing one partial rule per
// conjunct.
func (p *normalizer) rightAnd(f partial) (bool, []partial) {
	for _, b := range f.headTodo.ToArray() {
		if and, ok := b.(*logic.And); ok {
			g := f.clone()
			g.headTodo.Remove(b)
			g.headTodo.Insert(and.Lhs)
			//
			h := f.clone()
			h.headTodo.Remove(b)
			h.headTodo.Insert(and.Rhs)
			//
			return true, []partial{g, h}
		}
	}
	//
	return false, nil
}

// rightImplies splits on a pending implication a → b in the consequent,
// producing two partial rules: one moving a into the antecedent and b into
// the consequent, and its contrapositive moving ¬b into the antecedent and
// ¬a into the consequent.  Under Config.PruneRedundantImplications the
// contrapositive branch is dropped when the implication is the sole pending
// consequent and no disjunct has accumulated yet.
func (p *normalizer) rightImplies(f partial) (bool, []partial) {
	for _, b := range f.headTodo.ToArray() {
		if imp, ok := b.(*logic.Implies); ok {
			g := f.clone()
			g.headTodo.Remove(b)
			g.bodyTodo.Insert(imp.Lhs)
			g.headTodo.Insert(imp.Rhs)
			//
			if p.config.PruneRedundantImplications && f.head.IsEmpty() && f.headTodo.Len() == 1 {
				return true, []partial{g}
			}
			//
			h := f.clone()
			h.headTodo.Remove(b)
			h.bodyTodo.Insert(Nnf(logic.NewNot(imp.Rhs)))
			h.headTodo.Insert(Nnf(logic.NewNot(imp.Lhs)))
			//
			return true, []partial{g, h}
		}
	}
	//
	return false, nil
}
