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
	"errors"
	"time"

	"code.vegaprotocol.io/keybot/libs/encoding"
)

var (
	ErrBinaryIsRequired                = errors.New("the keybase binary is required")
	ErrLoginPollingIntervalMustBeSet   = errors.New("the login polling interval must be greater than zero")
	ErrLoginPollingMaxRetriesMustBeSet = errors.New("the login polling maximum retries must be greater than zero")
)

type Config struct {
	// Binary is the name or the path of the keybase executable.
	Binary string `toml:"binary"`

	// HomeDir overrides the home directory of the keybase service. Left
	// empty, the service uses its default one.
	HomeDir string `toml:"home-dir"`

	LoginPolling LoginPollingConfig `toml:"login-polling"`
}

// LoginPollingConfig controls how long the login waits for the service to
// report the user as logged in.
type LoginPollingConfig struct {
	Interval   encoding.Duration `toml:"interval"`
	MaxRetries uint64            `toml:"max-retries"`
}

func DefaultConfig() Config {
	return Config{
		Binary: "keybase",
		LoginPolling: LoginPollingConfig{
			Interval: encoding.Duration{
				Duration: 500 * time.Millisecond,
			},
			MaxRetries: 20,
		},
	}
}

func (c Config) Validate() error {
	if c.Binary == "" {
		return ErrBinaryIsRequired
	}

	if c.LoginPolling.Interval.Duration <= 0 {
		return ErrLoginPollingIntervalMustBeSet
	}

	if c.LoginPolling.MaxRetries == 0 {
		return ErrLoginPollingMaxRetriesMustBeSet
	}

	return nil
}
