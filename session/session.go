// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package session

import (
	"context"
	"sync/atomic"
	"time"

	"code.vegaprotocol.io/keybot/internal/logging"
	"code.vegaprotocol.io/keybot/libs/jsonapi"

	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

// Generates mocks
//go:generate go run github.com/golang/mock/mockgen -destination mocks/session_mocks.go -package mocks code.vegaprotocol.io/keybot/session Transport,Authenticator

// Transport forwards a command to the local API and returns its raw result.
// It is the only integration point with the platform, so swapping the
// process-based implementation for an IPC or HTTP one does not affect the
// feature modules.
type Transport interface {
	Run(ctx context.Context, cmd jsonapi.Command) (jsonapi.Result, error)
}

// Authenticator establishes and tears down the platform-side session.
type Authenticator interface {
	Login(ctx context.Context, username, paperkey string) error
	LoggedInUsername(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}

type state struct {
	username string
}

// Session holds the initialization state shared by all the feature modules
// of a bot, and the guarded-call primitive they go through.
type Session struct {
	log       *logging.Logger
	transport Transport

	// state is nil as long as the session is not initialized. It is only
	// written by Open and Close.
	state atomic.Pointer[state]
}

func New(log *logging.Logger, transport Transport) *Session {
	return &Session{
		log:       log,
		transport: transport,
	}
}

// Open marks the session as initialized for the given user.
func (s *Session) Open(username string) {
	s.state.Store(&state{username: username})
}

// Close marks the session as uninitialized. It returns false if the session
// was not opened.
func (s *Session) Close() bool {
	return s.state.Swap(nil) != nil
}

func (s *Session) Initialized() bool {
	return s.state.Load() != nil
}

// Username returns the user the session is opened for, or an empty string.
func (s *Session) Username() string {
	st := s.state.Load()
	if st == nil {
		return ""
	}
	return st.username
}

// GuardInitialized fails fast if the session is not initialized. Every
// feature module operation starts with it.
func (s *Session) GuardInitialized() error {
	if !s.Initialized() {
		return &UninitializedError{}
	}
	return nil
}

// RunAPICommand sends the command to the transport exactly once, and returns
// the raw result. There is no retry nor timeout other than the ones carried
// by the context.
func (s *Session) RunAPICommand(ctx context.Context, cmd jsonapi.Command) (jsonapi.Result, error) {
	if err := cmd.Check(); err != nil {
		return nil, NewTransportError(cmd, err)
	}

	traceID := jsonapi.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = uuid.NewV4().String()
		ctx = jsonapi.WithTraceID(ctx, traceID)
	}

	s.log.Debug("running API command",
		zap.String("trace-id", traceID),
		zap.String("api", cmd.APIName),
		zap.String("method", cmd.Method),
	)

	requestTime := time.Now()
	result, err := s.transport.Run(ctx, cmd)
	if err != nil {
		s.log.Debug("API command failed",
			zap.String("trace-id", traceID),
			zap.String("api", cmd.APIName),
			zap.String("method", cmd.Method),
			zap.Duration("duration", time.Since(requestTime)),
			zap.Error(err),
		)
		if tErr, ok := err.(*TransportError); ok {
			return nil, tErr
		}
		return nil, NewTransportError(cmd, err)
	}

	s.log.Debug("API command succeeded",
		zap.String("trace-id", traceID),
		zap.String("api", cmd.APIName),
		zap.String("method", cmd.Method),
		zap.Duration("duration", time.Since(requestTime)),
	)

	return result, nil
}
