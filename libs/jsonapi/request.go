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

package jsonapi

import (
	"context"
	"errors"
)

// Version1 is the only version of the local API parameters the platform
// understands.
const Version1 = 1

const TraceIDKey TraceID = "trace-id"

var (
	ErrAPINameIsRequired = errors.New("the API name is required")
	ErrMethodIsRequired  = errors.New("the method is required")
)

type TraceID string

// TraceIDFromContext returns the trace ID attached to the context, or an
// empty string if there is none.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDKey).(string)
	return traceID
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// Options is just a nicer way to describe what's passed to the API methods.
type Options interface{}

// Command is a single invocation of the local API. It is consumed exactly
// once by a transport.
type Command struct {
	// APIName selects the API family, such as "chat" or "wallet".
	APIName string

	// Method contains the name of the method to be invoked.
	Method string

	// Options holds the method arguments. It is serialised as the
	// `params.options` member of the request, and MAY be omitted.
	Options Options
}

func (c Command) Check() error {
	if c.APIName == "" {
		return ErrAPINameIsRequired
	}

	if c.Method == "" {
		return ErrMethodIsRequired
	}

	return nil
}

// Request builds the payload the local API reads on its standard input.
func (c Command) Request() Request {
	return Request{
		Method: c.Method,
		Params: Params{
			Version: Version1,
			Options: c.Options,
		},
	}
}

func (c Command) String() string {
	return c.APIName + "." + c.Method
}

type Request struct {
	Method string `json:"method"`
	Params Params `json:"params"`
}

type Params struct {
	Version int     `json:"version,omitempty"`
	Options Options `json:"options,omitempty"`
}
