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
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readFormulas reads one formula per line from a given reader, skipping blank
// lines and "%" comment lines.
func readFormulas(r io.Reader) ([]string, error) {
	var (
		scanner  = bufio.NewScanner(r)
		formulas []string
	)
	//
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		//
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		//
		formulas = append(formulas, line)
	}
	//
	return formulas, scanner.Err()
}

// readFormulaFile reads one formula per line from a given file.
func readFormulaFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	//
	defer f.Close()
	//
	return readFormulas(f)
}
