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

package keybase

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// Generates mocks
//go:generate go run github.com/golang/mock/mockgen -destination mocks/runner_mocks.go -package mocks code.vegaprotocol.io/keybot/keybase Runner

// Runner executes the keybase binary.
type Runner interface {
	// Execute runs the binary with the given arguments, and writes stdin to
	// its standard input. The standard output is returned even when the
	// execution fails, as the local API reports its errors there.
	Execute(ctx context.Context, args []string, stdin []byte) ([]byte, error)
}

// ExecRunner runs the keybase binary as a child process, once per call.
type ExecRunner struct {
	binary string
}

func NewExecRunner(binary string) *ExecRunner {
	return &ExecRunner{
		binary: binary,
	}
}

func (r *ExecRunner) Execute(ctx context.Context, args []string, stdin []byte) ([]byte, error) {
	command := exec.CommandContext(ctx, r.binary, args...)

	var stdOut, stdErr bytes.Buffer
	command.Stdin = bytes.NewReader(stdin)
	command.Stdout = &stdOut
	command.Stderr = &stdErr

	if err := command.Run(); err != nil {
		return stdOut.Bytes(), errors.Wrapf(err, "failed to execute %s %v: %s", r.binary, args, bytes.TrimSpace(stdErr.Bytes()))
	}

	return stdOut.Bytes(), nil
}
