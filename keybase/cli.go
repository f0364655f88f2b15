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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"code.vegaprotocol.io/keybot/internal/logging"
	"code.vegaprotocol.io/keybot/libs/jsonapi"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var (
	ErrNotLoggedIn       = errors.New("no user is logged in")
	ErrUnexpectedAccount = errors.New("the service is logged in with another account")
)

// Status is the subset of `keybase status --json` the client relies on.
type Status struct {
	Username string `json:"Username"`
	LoggedIn bool   `json:"LoggedIn"`
}

// CLI talks to the keybase service through its command line. It serves both
// as the transport of the local API and as the authenticator of the bot.
type CLI struct {
	log    *logging.Logger
	runner Runner

	homeDir      string
	pollInterval time.Duration
	pollRetries  uint64
}

func NewCLI(log *logging.Logger, runner Runner, cfg Config) *CLI {
	return &CLI{
		log:          log,
		runner:       runner,
		homeDir:      cfg.HomeDir,
		pollInterval: cfg.LoginPolling.Interval.Duration,
		pollRetries:  cfg.LoginPolling.MaxRetries,
	}
}

// Run sends the command to `keybase <api> api` and returns the result. When
// the local API reports an error, it is returned as a jsonapi.ErrorDetails.
func (c *CLI) Run(ctx context.Context, cmd jsonapi.Command) (jsonapi.Result, error) {
	payload, err := json.Marshal(cmd.Request())
	if err != nil {
		return nil, fmt.Errorf("could not encode the request: %w", err)
	}

	out, execErr := c.execute(ctx, payload, cmd.APIName, "api")

	resp, err := jsonapi.ParseResponse(out)
	if err != nil {
		if execErr != nil {
			return nil, execErr
		}
		return nil, fmt.Errorf("could not read the response of %s: %w", cmd, err)
	}

	if resp.Error != nil {
		return nil, *resp.Error
	}

	if execErr != nil {
		return nil, execErr
	}

	return resp.Result, nil
}

// Login signs the user in with a paper key, then waits for the service to
// report the user as logged in.
func (c *CLI) Login(ctx context.Context, username, paperkey string) error {
	if _, err := c.execute(ctx, []byte(paperkey+"\n"), "oneshot", "--username", username); err != nil {
		return err
	}

	operation := func() error {
		loggedInAs, err := c.LoggedInUsername(ctx)
		if err != nil {
			if errors.Is(err, ErrNotLoggedIn) {
				return err
			}
			return backoff.Permanent(err)
		}
		if loggedInAs != username {
			return backoff.Permanent(fmt.Errorf("%w: %q", ErrUnexpectedAccount, loggedInAs))
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.pollInterval), c.pollRetries),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return err
	}

	c.log.Info("logged in", logging.String("username", username))
	return nil
}

// LoggedInUsername returns the user the service is logged in with.
func (c *CLI) LoggedInUsername(ctx context.Context) (string, error) {
	out, err := c.execute(ctx, nil, "status", "--json")
	if err != nil {
		return "", err
	}

	status := Status{}
	if err := json.Unmarshal(out, &status); err != nil {
		return "", fmt.Errorf("could not read the status of the service: %w", err)
	}

	if !status.LoggedIn || status.Username == "" {
		return "", ErrNotLoggedIn
	}

	return status.Username, nil
}

// Logout signs the current user out. It does not fail when nobody is logged
// in.
func (c *CLI) Logout(ctx context.Context) error {
	if _, err := c.execute(ctx, nil, "logout", "--force"); err != nil {
		if _, statusErr := c.LoggedInUsername(ctx); errors.Is(statusErr, ErrNotLoggedIn) {
			return nil
		}
		return err
	}

	c.log.Info("logged out")
	return nil
}

func (c *CLI) execute(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	if c.homeDir != "" {
		args = append([]string{"--home", c.homeDir}, args...)
	}

	requestTime := time.Now()
	out, err := c.runner.Execute(ctx, args, stdin)
	if err != nil {
		c.log.Debug("keybase execution failed",
			zap.Strings("args", args),
			zap.Duration("duration", time.Since(requestTime)),
			zap.Error(err),
		)
		return out, err
	}

	c.log.Debug("keybase execution succeeded",
		zap.Strings("args", args),
		zap.Duration("duration", time.Since(requestTime)),
	)

	return out, nil
}
