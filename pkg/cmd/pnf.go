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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/htlogic/htnorm/pkg/logic"
	"github.com/htlogic/htnorm/pkg/norm"
)

// pnfCmd represents the pnf command
var pnfCmd = &cobra.Command{
	Use:   "pnf [flags] <formula>",
	Short: "Convert a formula into Prenex Normal Form.",
	Long: `Convert a first-order formula (in reverse-Polish notation) into Prenex
Normal Form and print the result, again in reverse-Polish notation.  The
--prefix and --matrix flags print only the respective part.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		formula, err := logic.Parse(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		pnf := norm.Pnf(formula)
		//
		switch {
		case GetFlag(cmd, "prefix"):
			fmt.Println(prefixString(norm.Prefix(pnf)))
		case GetFlag(cmd, "matrix"):
			fmt.Println(norm.Matrix(pnf).Rpn())
		default:
			fmt.Println(pnf.Rpn())
		}
	},
}

func init() {
	rootCmd.AddCommand(pnfCmd)
	pnfCmd.Flags().Bool("prefix", false, "print only the quantifier prefix")
	pnfCmd.Flags().Bool("matrix", false, "print only the quantifier-free matrix")
}
