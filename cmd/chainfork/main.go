// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/chainfork/dot"
	"github.com/ChainSafe/chainfork/internal/log"
	"github.com/ChainSafe/chainfork/internal/metrics"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	// Version specifies the version used to build the application, passed in via ldflags.
	Version = "unknown"
	// Commit specifies the git commit used to build the application, passed in via ldflags.
	Commit = "unknown"
)

// app is the cli application
var app = cli.NewApp()

// init initialises the cli application
func init() {
	app.Action = forkAction
	app.Name = "chainfork"
	app.Usage = "Substrate chain fork tool"
	app.Description = "Builds the chain specification of a fork of a live Substrate chain, " +
		"transplanting the storage of its modules onto a locally buildable genesis."
	app.Version = fmt.Sprintf("%s (%s)", Version, Commit)
	app.Flags = AllFlags
	app.Writer = os.Stdout
}

// main runs the cli application
func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Critical(err.Error())
		os.Exit(1)
	}
}

// forkAction is the root action of the application
func forkAction(ctx *cli.Context) (err error) {
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArguments, arguments)
	}

	cfg, tomlCfg, err := createDotConfig(ctx)
	if err != nil {
		return err
	}

	_, err = setupLogger(ctx, tomlCfg.Global.LogLvl)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	logger.Info(cfg.String())

	metricsAddress := ctx.String(MetricsAddressFlag.Name)
	if metricsAddress == "" {
		metricsAddress = tomlCfg.Global.MetricsAddress
	}
	if metricsAddress != "" {
		metricsServer := metrics.NewServer(metricsAddress)
		err = metricsServer.Start()
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			stopErr := metricsServer.Stop()
			if stopErr != nil {
				logger.Warnf("stopping metrics server: %s", stopErr)
			}
		}()
	}

	noProgress := ctx.Bool(NoProgressFlag.Name) || tomlCfg.Global.NoProgress
	progress := newProgressReporter(noProgress, os.Stderr)

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fork := dot.NewFork(cfg, dot.NewBinaryGenerator(cfg.Binary), dot.DialRPC, progress)
	err = fork.Run(signalCtx)
	if err != nil {
		return err
	}

	logger.Infof("fork chain specification written to %s", cfg.OutputPath)
	return nil
}
