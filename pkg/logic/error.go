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
)

// MalformedError is a structured error which retains the original input and
// the index of the offending token, along with an error message.
type MalformedError struct {
	// Input being parsed when the error arose.
	input string
	// Token index into the input where the error arose.
	index int
	// Error message being reported.
	msg string
}

func malformed(input string, index int, msg string) *MalformedError {
	return &MalformedError{input, index, msg}
}

// Input returns the original input on which this error is reported.
func (p *MalformedError) Input() string {
	return p.input
}

// Index returns the token index at which this error arose.
func (p *MalformedError) Index() int {
	return p.index
}

// Message returns the message to be reported.
func (p *MalformedError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *MalformedError) Error() string {
	return fmt.Sprintf("malformed formula at token %d: %s", p.index, p.msg)
}
