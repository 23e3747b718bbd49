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

// Minimize removes tautological rules and rules subsumed by another rule of
// the program.  Subsumption is computed against the final tautology-free set
// rather than incrementally, so the outcome does not depend on rule order.
// A rule is never counted as subsumed by itself; of two rules carrying
// exactly the same literals, only the first survives.
func (p Program) Minimize() Program {
	var kept Program
	// Drop tautologies and duplicates first.
	for _, f := range p {
		if !f.IsTautology() && !containsRule(kept, f) {
			kept = append(kept, f)
		}
	}
	// Drop every rule strictly subsumed by a surviving one.
	var minimized Program
	//
	for i, f := range kept {
		if !subsumedWithin(kept, i) {
			minimized = append(minimized, f)
		}
	}
	//
	return minimized
}

// subsumedWithin checks whether the i-th rule is subsumed by some other rule
// of the program.  When two distinct rules subsume each other they carry the
// same literals in different orders, and the earlier one is retained.
func subsumedWithin(p Program, i int) bool {
	f := p[i]
	//
	for j, g := range p {
		if i == j || !g.Subsumes(f) {
			continue
		}
		//
		if !f.Subsumes(g) || j < i {
			return true
		}
	}
	//
	return false
}

func containsRule(p Program, f Rule) bool {
	for _, g := range p {
		if g.Cmp(f) == 0 {
			return true
		}
	}
	//
	return false
}
