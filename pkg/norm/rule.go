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
	"slices"
	"sort"
	"strings"

	"github.com/htlogic/htnorm/pkg/logic"
	"github.com/htlogic/htnorm/pkg/util/collection/set"
)

// ExprSet is a deduplicated, insertion-ordered collection of expressions.
type ExprSet = set.OrderedSet[logic.Expr]

// Rule is a finished program rule.  The body is read conjunctively and the
// head disjunctively, hence a rule states body → head.  Every element of the
// body is an extended literal; the head may additionally carry doubly-negated
// literals, which have no extended-literal rendering under HT semantics.
type Rule struct {
	// Body holds the antecedent literals.
	Body ExprSet
	// Head holds the consequent literals.
	Head ExprSet
}

// Cmp orders rules by their body and then their head, elementwise in
// insertion order.  Two rules compare equal exactly when they render to the
// same string.
func (p Rule) Cmp(other Rule) int {
	if c := p.Body.Cmp(other.Body); c != 0 {
		return c
	}
	//
	return p.Head.Cmp(other.Head)
}

// IsTautology checks whether some literal appears on both sides of this rule,
// in which case the rule holds vacuously.
func (p Rule) IsTautology() bool {
	return p.Body.Intersects(p.Head)
}

// Subsumes checks whether this rule subsumes another, that is whether every
// body literal and every head literal of this rule appears on the
// corresponding side of the other.  A weaker rule implies a stronger one.
func (p Rule) Subsumes(other Rule) bool {
	return p.Body.SubsetOf(other.Body) && p.Head.SubsetOf(other.Head)
}

// String renders this rule as "p1 & ... & pN > q1 | ... | qM".  Either side
// may be empty.
func (p Rule) String() string {
	var builder strings.Builder
	//
	for i, e := range p.Body.ToArray() {
		if i != 0 {
			builder.WriteString(" & ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString(" > ")
	//
	for i, e := range p.Head.ToArray() {
		if i != 0 {
			builder.WriteString(" | ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	return builder.String()
}

// Program is a set of finished rules, read conjunctively.  Rules are
// unordered; any order observed here is an artefact of normalization.
type Program []Rule

// Strings renders the rules of this program as a sorted set of strings,
// collapsing duplicate rules.
func (p Program) Strings() []string {
	var lines []string
	//
	for _, r := range p {
		s := r.String()
		//
		if !slices.Contains(lines, s) {
			lines = append(lines, s)
		}
	}
	//
	sort.Strings(lines)
	//
	return lines
}
