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

// Package config loads optional tool defaults from a TOML file.  The core
// rewriting engine requires no configuration or persisted state; everything
// here only seeds command-line defaults.  The boolean output flags can switch
// a mode on but not off, hence a mode enabled here stays enabled; the verbose
// flag takes precedence over the configured log level.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the working directory and
// then in the user's home directory.
const FileName = ".htnorm.toml"

// Config holds tool defaults.
type Config struct {
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// Output configures how normalized programs are printed.
type Output struct {
	// Asp selects ASP concrete syntax instead of rule strings.
	Asp bool `toml:"asp"`
	// Raw disables tautology elimination and subsumption.
	Raw bool `toml:"raw"`
}

// Log configures logging.
type Log struct {
	// Level is a logrus level name (e.g. "info", "debug").
	Level string `toml:"level"`
}

// Default returns the configuration used in the absence of any file.
func Default() Config {
	return Config{
		Log: Log{Level: "info"},
	}
}

// Load reads a configuration file from a given path.
func Load(path string) (Config, error) {
	cfg := Default()
	//
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	//
	return cfg, nil
}

// Locate searches the working directory and then the home directory for a
// configuration file, returning defaults when neither has one.
func Locate() (Config, error) {
	if _, err := os.Stat(FileName); err == nil {
		return Load(FileName)
	}
	//
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, FileName)
		//
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	//
	return Default(), nil
}
