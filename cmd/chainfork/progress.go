// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"io"
	"os"

	"github.com/ChainSafe/chainfork/lib/snapshot"
	"github.com/cheggaaa/pb"
	"golang.org/x/term"
)

// newProgressReporter returns a progress reporter drawing bars on the
// file given if it is a terminal, and logging the progress otherwise.
func newProgressReporter(noProgress bool, file *os.File) snapshot.ProgressReporter {
	if noProgress || !term.IsTerminal(int(file.Fd())) {
		return snapshot.NewLogProgressReporter(logger)
	}
	return newBarProgressReporter(file)
}

type barProgressReporter struct {
	writer io.Writer
}

// newBarProgressReporter returns a progress reporter drawing
// the progress of each stage as a bar on the writer given.
func newBarProgressReporter(writer io.Writer) snapshot.ProgressReporter {
	return &barProgressReporter{writer: writer}
}

func (r *barProgressReporter) Keys() snapshot.Progress {
	return r.newBar("keys   ", 0)
}

func (r *barProgressReporter) Values(total int) snapshot.Progress {
	return r.newBar("values ", total)
}

func (r *barProgressReporter) newBar(prefix string, total int) *barProgress {
	bar := pb.New(total)
	bar.Output = r.writer
	bar.ShowSpeed = true
	bar.Prefix(prefix)
	bar.SetRefreshRate(snapshot.ThrottleInterval)
	bar.Start()
	return &barProgress{bar: bar}
}

type barProgress struct {
	bar *pb.ProgressBar
}

func (p *barProgress) Inc(n int) {
	p.bar.Add(n)
}

func (p *barProgress) Finish() {
	p.bar.Finish()
}
