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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/htlogic/htnorm/pkg/config"
)

// Version is filled only when set at link time (via -ldflags "-X"), and *not*
// when installing via "go install".
var Version string

// toolConfig holds the defaults loaded from the configuration file (if any).
var toolConfig = config.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "htnorm",
	Short: "A normalizer for formulas of Here-and-There logic.",
	Long: `A normalizer (and general toolbox) for formulas of Here-and-There logic,
transforming them into logic programs suitable for Answer Set Programming.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load file-based defaults before any subcommand runs.
		var err error
		//
		if path := GetString(cmd, "config"); path != "" {
			toolConfig, err = config.Load(path)
		} else {
			toolConfig, err = config.Locate()
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Configure log level, with the verbose flag taking precedence.
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		} else if level, err := log.ParseLevel(toolConfig.Log.Level); err == nil {
			log.SetLevel(level)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("htnorm ")
			if Version != "" {
				// Set at link time
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(), and only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "print version information")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "read tool defaults from the given file")
}
