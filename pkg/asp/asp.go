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

// Package asp serializes program rules into Answer Set Programming concrete
// syntax.
package asp

import (
	"strings"

	"github.com/htlogic/htnorm/pkg/logic"
	"github.com/htlogic/htnorm/pkg/norm"
)

// Emit renders a finished rule as an ASP rule.  Negation renders as default
// negation "not", the truth constants render as "#true" and "#false", and a
// rule with an empty body renders as a plain (disjunctive) head.  A rule with
// an empty head renders as an integrity constraint.
func Emit(r norm.Rule) string {
	var builder strings.Builder
	//
	head := literals(r.Head)
	body := literals(r.Body)
	//
	builder.WriteString(strings.Join(head, ", "))
	//
	if len(body) != 0 {
		if len(head) != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(":- ")
		builder.WriteString(strings.Join(body, ", "))
	}
	//
	builder.WriteString(".")
	//
	return builder.String()
}

// EmitAll renders every rule of a program, in order.
func EmitAll(p norm.Program) []string {
	lines := make([]string, len(p))
	//
	for i, r := range p {
		lines[i] = Emit(r)
	}
	//
	return lines
}

func literals(exprs norm.ExprSet) []string {
	var lits []string
	//
	for _, e := range exprs.ToArray() {
		lits = append(lits, literal(e))
	}
	//
	return lits
}

func literal(e logic.Expr) string {
	switch t := e.(type) {
	case *logic.Not:
		return "not " + literal(t.Arg)
	case *logic.Const:
		if t.Value {
			return "#true"
		}
		//
		return "#false"
	default:
		return e.String()
	}
}
