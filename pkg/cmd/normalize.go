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
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/htlogic/htnorm/pkg/asp"
	"github.com/htlogic/htnorm/pkg/logic"
	"github.com/htlogic/htnorm/pkg/norm"
	"github.com/htlogic/htnorm/pkg/util"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize [flags] [formula_file(s)]",
	Short: "Normalize formulas into logic program rules.",
	Long: `Normalize formulas of Here-and-There logic into logic program rules of the
form "p1 & ... & pN > q1 | ... | qM".  Formulas are given in reverse-Polish
notation, one per line; quantified formulas are first pulled into Prenex
Normal Form and their matrix is normalized.  By default tautological and
subsumed rules are removed from the output.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg = normalizeConfig{
			asp:        GetFlag(cmd, "asp") || toolConfig.Output.Asp,
			raw:        GetFlag(cmd, "raw") || toolConfig.Output.Raw,
			prune:      GetFlag(cmd, "prune"),
			sequential: GetFlag(cmd, "sequential"),
		}
		//
		formulas, err := gatherFormulas(cmd, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		} else if len(formulas) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		results, err := normalizeAll(cfg, formulas)
		stats.Log(fmt.Sprintf("normalizing %d formula(s)", len(formulas)))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		for i, r := range results {
			if i != 0 {
				fmt.Println()
			}
			//
			printResult(cfg, r)
		}
	},
}

// normalizeConfig encapsulates the parameters of a normalization run.
type normalizeConfig struct {
	// Emit ASP concrete syntax rather than rule strings.
	asp bool
	// Skip tautology elimination and subsumption.
	raw bool
	// Drop the contrapositive branch of sole pending right implications.
	prune bool
	// Normalize formulas one after another rather than concurrently.
	sequential bool
}

// result pairs an input formula with its normalized program.
type result struct {
	input   string
	prefix  []norm.Quantifier
	program norm.Program
}

// gatherFormulas collects the formulas to normalize: an inline expression,
// the given files, or (when piped) standard input.
func gatherFormulas(cmd *cobra.Command, args []string) ([]string, error) {
	if e := GetString(cmd, "expression"); e != "" {
		return []string{e}, nil
	}
	//
	if len(args) != 0 {
		var formulas []string
		//
		for _, arg := range args {
			fs, err := readFormulaFile(arg)
			if err != nil {
				return nil, err
			}
			//
			formulas = append(formulas, fs...)
		}
		//
		return formulas, nil
	}
	// Fall back on standard input, but only when it is not an interactive
	// terminal (for that, see the repl command).
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return readFormulas(os.Stdin)
	}
	//
	return nil, nil
}

// normalizeAll normalizes the given formulas, concurrently unless configured
// otherwise.  Results retain the input order.  Individual normalization runs
// are sequential and share nothing, hence are safe to run side by side.
func normalizeAll(cfg normalizeConfig, formulas []string) ([]result, error) {
	var (
		results = make([]result, len(formulas))
		errs    = make([]error, len(formulas))
	)
	//
	if cfg.sequential {
		for i, f := range formulas {
			results[i], errs[i] = normalizeOne(cfg, f)
		}
	} else {
		var wg sync.WaitGroup
		//
		for i, f := range formulas {
			wg.Add(1)
			//
			go func(i int, f string) {
				defer wg.Done()
				results[i], errs[i] = normalizeOne(cfg, f)
			}(i, f)
		}
		//
		wg.Wait()
	}
	//
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	//
	return results, nil
}

// normalizeOne runs the full pipeline on a single formula: parse, pull
// quantifiers into a prenex prefix (if any), convert the matrix to NNF, then
// decompose into rules and (optionally) minimize.
func normalizeOne(cfg normalizeConfig, input string) (result, error) {
	formula, err := logic.Parse(input)
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", input, err)
	}
	//
	var prefix []norm.Quantifier
	//
	if logic.HasQuantifier(formula) {
		pnf := norm.Pnf(formula)
		prefix = norm.Prefix(pnf)
		formula = norm.Matrix(pnf)
		//
		log.Debugf("matrix of %q is %q", input, formula.Rpn())
	}
	//
	nnf := norm.Nnf(formula)
	log.Debugf("nnf of %q is %q", input, nnf.Rpn())
	// Sanity check
	if err := norm.CheckNnf(nnf); err != nil {
		return result{}, err
	}
	//
	program := norm.NormalizeWith(norm.Config{PruneRedundantImplications: cfg.prune}, nnf)
	//
	if !cfg.raw {
		program = program.Minimize()
	}
	//
	return result{input, prefix, program}, nil
}

// printResult writes the rules of one normalized formula to standard output.
func printResult(cfg normalizeConfig, r result) {
	if len(r.prefix) != 0 {
		line := prefixString(r.prefix)
		//
		if cfg.asp {
			fmt.Printf("%% prefix: %s\n", line)
		} else {
			fmt.Printf("prefix: %s\n", line)
		}
	}
	//
	if cfg.asp {
		for _, line := range asp.EmitAll(r.program) {
			fmt.Println(line)
		}
		//
		return
	}
	//
	for _, line := range r.program.Strings() {
		fmt.Println(line)
	}
}

func prefixString(prefix []norm.Quantifier) string {
	var builder strings.Builder
	//
	for i, q := range prefix {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(q.Var.Name)
		//
		if q.Universal {
			builder.WriteString(" " + logic.OpForall)
		} else {
			builder.WriteString(" " + logic.OpExists)
		}
	}
	//
	return builder.String()
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().StringP("expression", "e", "", "normalize the given formula instead of reading files")
	normalizeCmd.Flags().Bool("asp", false, "emit ASP concrete syntax")
	normalizeCmd.Flags().Bool("raw", false, "keep tautological and subsumed rules")
	normalizeCmd.Flags().Bool("prune", false, "prune contrapositive branches of sole right implications")
	normalizeCmd.Flags().Bool("sequential", false, "normalize formulas one after another")
}
