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
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Normalize formulas interactively.",
	Long: `Read formulas (in reverse-Polish notation) from an interactive prompt and
print their normalization.  The commands ":asp" and ":raw" toggle output
modes, and ":quit" (or end-of-input) leaves the prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg = normalizeConfig{
			asp:        GetFlag(cmd, "asp") || toolConfig.Output.Asp,
			raw:        GetFlag(cmd, "raw") || toolConfig.Output.Raw,
			sequential: true,
		}
		//
		if err := repl(cfg); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func repl(cfg normalizeConfig) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "htnorm> ",
	})
	//
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	//
	defer rl.Close()
	//
	for {
		line, err := rl.Readline()
		//
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		//
		line = strings.TrimSpace(line)
		//
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":asp":
			cfg.asp = !cfg.asp
			fmt.Printf("asp output %s\n", onOff(cfg.asp))
		case ":raw":
			cfg.raw = !cfg.raw
			fmt.Printf("raw output %s\n", onOff(cfg.raw))
		default:
			r, err := normalizeOne(cfg, line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			//
			printResult(cfg, r)
		}
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	//
	return "off"
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("asp", false, "emit ASP concrete syntax")
	replCmd.Flags().Bool("raw", false, "keep tautological and subsumed rules")
}
