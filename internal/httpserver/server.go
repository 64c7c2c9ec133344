// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package httpserver implements an HTTP server running until its context is canceled.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	name         string
	address      string
	addressSet   chan struct{}
	addressMutex sync.RWMutex
	handler      http.Handler
	logger       Logger
	optional     optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// GetAddress obtains the address the HTTP server is listening on.
// It blocks until the server listens.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	s.addressMutex.RLock()
	defer s.addressMutex.RUnlock()
	return s.address
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server listens, and the
// done channel receives a nil error once the server is shut down,
// or the error making the server fail.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	const readHeaderTimeout = time.Second
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		done <- fmt.Errorf("listening on %s: %w", s.address, err)
		return
	}

	s.addressMutex.Lock()
	s.address = listener.Addr().String()
	s.addressMutex.Unlock()
	close(s.addressSet)

	s.logger.Info(s.name + " http server listening on " + s.address)
	close(ready)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		s.logger.Warn(s.name + " http server shutting down: " + ctx.Err().Error())
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.optional.shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Error(s.name + " http server failed shutting down within " +
				s.optional.shutdownTimeout.String())
		}
	}()

	err = server.Serve(listener)
	if !errors.Is(err, http.ErrServerClosed) {
		done <- fmt.Errorf("serving: %w", err)
		return
	}

	<-shutdownDone
	done <- nil
}
