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
package logic

import (
	"fmt"
	"sort"
	"strings"
)

// ContainsVar determines whether a given variable name occurs within any atom
// of a given expression.  Occurrences are matched at identifier boundaries,
// hence "x" occurs in "p(x)" and "x" but not in "xs" or "max(y)".
func ContainsVar(e Expr, name string) bool {
	switch t := e.(type) {
	case *Atom:
		return containsIdent(t.Name, name)
	case *Const:
		return false
	case *Not:
		return ContainsVar(t.Arg, name)
	case *And:
		return ContainsVar(t.Lhs, name) || ContainsVar(t.Rhs, name)
	case *Or:
		return ContainsVar(t.Lhs, name) || ContainsVar(t.Rhs, name)
	case *Implies:
		return ContainsVar(t.Lhs, name) || ContainsVar(t.Rhs, name)
	case *Exists:
		return ContainsVar(t.Var, name) || ContainsVar(t.Body, name)
	case *Forall:
		return ContainsVar(t.Var, name) || ContainsVar(t.Body, name)
	default:
		return false
	}
}

// RenameVar returns a copy of a given expression in which every occurrence of
// a given variable name (at identifier boundaries, in atom names and bound
// variables alike) is replaced by another name.
func RenameVar(e Expr, oldName, newName string) Expr {
	switch t := e.(type) {
	case *Atom:
		return NewAtom(replaceIdent(t.Name, oldName, newName))
	case *Const:
		return t
	case *Not:
		return NewNot(RenameVar(t.Arg, oldName, newName))
	case *And:
		return NewAnd(RenameVar(t.Lhs, oldName, newName), RenameVar(t.Rhs, oldName, newName))
	case *Or:
		return NewOr(RenameVar(t.Lhs, oldName, newName), RenameVar(t.Rhs, oldName, newName))
	case *Implies:
		return NewImplies(RenameVar(t.Lhs, oldName, newName), RenameVar(t.Rhs, oldName, newName))
	case *Exists:
		return NewExists(RenameVar(t.Var, oldName, newName).(*Atom), RenameVar(t.Body, oldName, newName))
	case *Forall:
		return NewForall(RenameVar(t.Var, oldName, newName).(*Atom), RenameVar(t.Body, oldName, newName))
	default:
		return e
	}
}

// FreshVar derives a variable name from a given base name which does not occur
// in any of the given expressions, by appending the least positive counter
// which avoids all of them.
func FreshVar(base string, avoid ...Expr) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		//
		if !containsVarAny(name, avoid) {
			return name
		}
	}
}

// ReplaceConstants substitutes domain constants for bound variables within a
// given expression.  Bindings map each constant to the variable names it
// stands for.  Quantifiers binding a substituted variable are dropped, since
// the variable no longer ranges over anything.
func ReplaceConstants(e Expr, bindings map[string][]string) Expr {
	// Substitute in a fixed order, since map iteration order is not.
	constants := make([]string, 0, len(bindings))
	for c := range bindings {
		constants = append(constants, c)
	}
	//
	sort.Strings(constants)
	//
	for _, c := range constants {
		for _, v := range bindings[c] {
			e = substConstant(e, v, c)
		}
	}
	//
	return e
}

func substConstant(e Expr, varName, constName string) Expr {
	switch t := e.(type) {
	case *Atom:
		return NewAtom(replaceIdent(t.Name, varName, constName))
	case *Const:
		return t
	case *Not:
		return NewNot(substConstant(t.Arg, varName, constName))
	case *And:
		return NewAnd(substConstant(t.Lhs, varName, constName), substConstant(t.Rhs, varName, constName))
	case *Or:
		return NewOr(substConstant(t.Lhs, varName, constName), substConstant(t.Rhs, varName, constName))
	case *Implies:
		return NewImplies(substConstant(t.Lhs, varName, constName), substConstant(t.Rhs, varName, constName))
	case *Exists:
		if t.Var.Name == varName {
			return substConstant(t.Body, varName, constName)
		}
		//
		return NewExists(t.Var, substConstant(t.Body, varName, constName))
	case *Forall:
		if t.Var.Name == varName {
			return substConstant(t.Body, varName, constName)
		}
		//
		return NewForall(t.Var, substConstant(t.Body, varName, constName))
	default:
		return e
	}
}

// ============================================================================
// Helpers
// ============================================================================

func containsVarAny(name string, exprs []Expr) bool {
	for _, e := range exprs {
		if ContainsVar(e, name) {
			return true
		}
	}
	//
	return false
}

// containsIdent checks for an occurrence of name within s delimited by
// non-identifier characters (or the ends of s).
func containsIdent(s, name string) bool {
	for from := 0; ; {
		i := strings.Index(s[from:], name)
		if i < 0 {
			return false
		}
		//
		i += from
		j := i + len(name)
		//
		if (i == 0 || !isIdentChar(s[i-1])) && (j == len(s) || !isIdentChar(s[j])) {
			return true
		}
		//
		from = i + 1
	}
}

// replaceIdent replaces every occurrence of old within s delimited by
// non-identifier characters with new.
func replaceIdent(s, old, new string) string {
	var (
		builder strings.Builder
		from    = 0
	)
	//
	for {
		i := strings.Index(s[from:], old)
		if i < 0 {
			builder.WriteString(s[from:])
			return builder.String()
		}
		//
		i += from
		j := i + len(old)
		//
		if (i == 0 || !isIdentChar(s[i-1])) && (j == len(s) || !isIdentChar(s[j])) {
			builder.WriteString(s[from:i])
			builder.WriteString(new)
			from = j
		} else {
			builder.WriteString(s[from : i+1])
			from = i + 1
		}
	}
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
