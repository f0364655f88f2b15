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
	"errors"
	"fmt"

	"code.vegaprotocol.io/keybot/libs/jsonapi"
)

var (
	ErrAuthenticationFailed = errors.New("the authentication failed")
	ErrEmptyResponse        = errors.New("the API returned nothing")
	ErrTransportFailed      = errors.New("the API call failed")
	ErrUninitialized        = errors.New("the bot is not initialized")
)

// UninitializedError is returned when an operation is invoked before the
// session is initialized. The transport is never reached in that case.
type UninitializedError struct{}

func (e *UninitializedError) Error() string {
	return "the bot is not initialized, call Init first"
}

func (e *UninitializedError) Is(target error) bool {
	return target == ErrUninitialized
}

// EmptyResponseError is returned when the API returned an empty result for an
// operation that requires one.
type EmptyResponseError struct {
	APIName   string
	Operation string
}

func NewEmptyResponseError(apiName, operation string) *EmptyResponseError {
	return &EmptyResponseError{
		APIName:   apiName,
		Operation: operation,
	}
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("keybase %s %s returned nothing", e.APIName, e.Operation)
}

func (e *EmptyResponseError) Is(target error) bool {
	return target == ErrEmptyResponse
}

// TransportError is returned when the transport itself failed, or when the API
// reported an error. Code is only set in the latter case.
type TransportError struct {
	APIName string
	Method  string
	Code    jsonapi.ErrorCode
	Err     error
}

func NewTransportError(cmd jsonapi.Command, err error) *TransportError {
	e := &TransportError{
		APIName: cmd.APIName,
		Method:  cmd.Method,
		Err:     err,
	}

	details := &jsonapi.ErrorDetails{}
	if errors.As(err, details) {
		e.Code = details.Code
	}

	return e
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("keybase %s %s failed: %v", e.APIName, e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailed
}

// AuthenticationError is returned when the credentials are rejected while
// initializing the session.
type AuthenticationError struct {
	Username string
	Err      error
}

func (e *AuthenticationError) Error() string {
	if e.Username == "" {
		return fmt.Sprintf("could not authenticate: %v", e.Err)
	}
	return fmt.Sprintf("could not authenticate %q: %v", e.Username, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}
