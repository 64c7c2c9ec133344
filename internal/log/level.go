// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trace (trce) level.
	Trace Level = iota
	// Debug is the debug (dbug) level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error (eror) level.
	Error
	// Critical is the critical (crit) level, used for errors ending the program.
	Critical
)

type levelDetails struct {
	name    string
	aliases []string
	colour  color.Attribute
}

// levels is indexed by Level.
var levels = [...]levelDetails{
	Trace:    {name: "TRACE", aliases: []string{"TRCE"}, colour: color.FgHiCyan},
	Debug:    {name: "DEBUG", aliases: []string{"DBUG"}, colour: color.FgHiBlue},
	Info:     {name: "INFO", colour: color.FgCyan},
	Warn:     {name: "WARN", colour: color.FgYellow},
	Error:    {name: "ERROR", aliases: []string{"EROR"}, colour: color.FgHiRed},
	Critical: {name: "CRIT", aliases: []string{"CRITICAL"}, colour: color.FgRed},
}

func (level Level) String() (s string) {
	if int(level) >= len(levels) {
		return "???"
	}
	return levels[level].name
}

// ColouredString returns the level name coloured for terminals.
func (level Level) ColouredString() (s string) {
	attribute := color.Reset
	if int(level) < len(levels) {
		attribute = levels[level].colour
	}
	return color.New(attribute).Sprint(level.String())
}

// ErrLevelNotRecognised is an error returned if the level string is
// not recognised by the ParseLevel function.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a level name or one of its aliases, such as
// trce, dbug, eror or crit, in any letter case.
func ParseLevel(s string) (level Level, err error) {
	upper := strings.ToUpper(s)
	for i, details := range levels {
		if upper == details.name {
			return Level(i), nil
		}
		for _, alias := range details.aliases {
			if upper == alias {
				return Level(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
