//
// dts - Russian draughts decision tree statistics tool
//
// MIT License
//
// Copyright (c) 2018-2026 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration: log levels
// read from an optional toml file (falling back to defaults when the
// file is absent), and the human-readable duration parsing the CLI
// uses for -t/--timeout.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// globally available config values, mirroring the style of a small
// engine's config package: package vars with sane defaults, optionally
// overwritten once by Setup.
var (
	// ConfFile is the path to the optional config file, relative to the
	// working directory.
	ConfFile = "./config.toml"

	// LogLevel is the general log level, overridable by the config file.
	LogLevel = LogLevels["info"]

	// SearchLogLevel is the DFS driver's own log level.
	SearchLogLevel = LogLevels["info"]

	// Settings is the configuration decoded from ConfFile, if present.
	Settings conf

	initialized = false
)

type conf struct {
	Log logConfiguration
}

type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
}

// LogLevels maps the human-readable log level names accepted in the
// config file to go-logging's numeric levels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// Setup reads ConfFile once, if present, and applies its log level
// settings. A missing or malformed file is not fatal: the tool runs
// with its built-in defaults and logs a notice.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("dts: config file not used:", err)
	}
	if lvl, ok := LogLevels[Settings.Log.LogLvl]; ok {
		LogLevel = lvl
	}
	if lvl, ok := LogLevels[Settings.Log.SearchLogLvl]; ok {
		SearchLogLevel = lvl
	}
	initialized = true
}
