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

package metrics

import (
	"context"
	"time"

	"code.vegaprotocol.io/keybot/libs/jsonapi"
	"code.vegaprotocol.io/keybot/session"
)

// InstrumentedTransport records every call going through the transport it
// decorates.
type InstrumentedTransport struct {
	next     session.Transport
	recorder *Recorder
}

func NewInstrumentedTransport(next session.Transport, recorder *Recorder) *InstrumentedTransport {
	return &InstrumentedTransport{
		next:     next,
		recorder: recorder,
	}
}

func (t *InstrumentedTransport) Run(ctx context.Context, cmd jsonapi.Command) (jsonapi.Result, error) {
	startTime := time.Now()
	result, err := t.next.Run(ctx, cmd)

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	} else if jsonapi.IsEmpty(result) {
		outcome = OutcomeEmpty
	}
	t.recorder.ObserveAPICall(cmd.APIName, cmd.Method, outcome, time.Since(startTime))

	return result, err
}
