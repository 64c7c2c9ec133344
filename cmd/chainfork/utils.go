// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"
	"strconv"

	"github.com/ChainSafe/chainfork/internal/log"
	"github.com/urfave/cli"
)

// setupLogger patches the global logger with the level given by the log
// flag, or by tomlLevel if the flag is not set. The level is either a level
// name or its integer value.
func setupLogger(ctx *cli.Context, tomlLevel string) (level log.Level, err error) {
	levelString := stringValue(ctx, LogFlag.Name, tomlLevel, defaultLogLevel)
	if lvlToInt, err := strconv.Atoi(levelString); err == nil {
		level = log.Level(lvlToInt)
	} else if level, err = log.ParseLevel(levelString); err != nil {
		return 0, err
	}

	log.Patch(
		log.SetWriter(os.Stdout),
		log.SetFormat(log.FormatConsole),
		log.SetCallerFile(true),
		log.SetCallerLine(true),
		log.SetLevel(level),
	)

	return level, nil
}
