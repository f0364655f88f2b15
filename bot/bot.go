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

package bot

import (
	"context"
	"errors"
	"sync"

	"code.vegaprotocol.io/keybot/chat"
	"code.vegaprotocol.io/keybot/internal/logging"
	"code.vegaprotocol.io/keybot/keybase"
	"code.vegaprotocol.io/keybot/metrics"
	"code.vegaprotocol.io/keybot/session"
	"code.vegaprotocol.io/keybot/wallet"
)

var ErrAlreadyInitialized = errors.New("the bot is already initialized")

type options struct {
	transport     session.Transport
	authenticator session.Authenticator
	recorder      *metrics.Recorder
}

type Option func(*options)

// WithTransport replaces the keybase process as the transport of the local
// API.
func WithTransport(t session.Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithAuthenticator replaces the keybase process as the authenticator.
func WithAuthenticator(a session.Authenticator) Option {
	return func(o *options) {
		o.authenticator = a
	}
}

// WithRecorder records the API calls and the sessions of the bot on the
// given recorder, whether metrics are enabled in the config or not.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// Bot is a client of the platform local service, logged in as a single user.
// The feature modules are usable once the bot is initialized.
type Bot struct {
	log           *logging.Logger
	session       *session.Session
	authenticator session.Authenticator
	recorder      *metrics.Recorder

	// mu serialises the initialization and the deinitialization.
	mu sync.Mutex
	// loggedIn tells if the bot logged the user in itself, and so has to log
	// them out.
	loggedIn bool

	Wallet *wallet.Wallet
	Chat   *chat.Chat
}

func New(log *logging.Logger, cfg Config, opts ...Option) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.transport == nil || o.authenticator == nil {
		cli := keybase.NewCLI(log.Named("keybase"), keybase.NewExecRunner(cfg.Keybase.Binary), cfg.Keybase)
		if o.transport == nil {
			o.transport = cli
		}
		if o.authenticator == nil {
			o.authenticator = cli
		}
	}

	if o.recorder == nil && cfg.Metrics.Enabled {
		recorder, err := metrics.NewRecorder()
		if err != nil {
			return nil, err
		}
		o.recorder = recorder
	}

	transport := o.transport
	if o.recorder != nil {
		transport = metrics.NewInstrumentedTransport(transport, o.recorder)
	}

	s := session.New(log.Named("session"), transport)

	return &Bot{
		log:           log,
		session:       s,
		authenticator: o.authenticator,
		recorder:      o.recorder,
		Wallet:        wallet.New(s),
		Chat:          chat.New(s),
	}, nil
}

// Init logs the user in with its paper key, and initializes the bot.
func (b *Bot) Init(ctx context.Context, username, paperkey string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session.Initialized() {
		return ErrAlreadyInitialized
	}

	if err := b.authenticator.Login(ctx, username, paperkey); err != nil {
		return &session.AuthenticationError{
			Username: username,
			Err:      err,
		}
	}

	b.loggedIn = true
	b.open(username)
	return nil
}

// InitFromRunningService initializes the bot for the user the local service
// is already logged in with. The user is not logged out on Deinit.
func (b *Bot) InitFromRunningService(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session.Initialized() {
		return ErrAlreadyInitialized
	}

	username, err := b.authenticator.LoggedInUsername(ctx)
	if err != nil {
		return &session.AuthenticationError{
			Err: err,
		}
	}

	b.loggedIn = false
	b.open(username)
	return nil
}

// Deinit logs the user out, if the bot logged them in, and makes the bot
// uninitialized. Calling it on an uninitialized bot does nothing.
func (b *Bot) Deinit(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	username := b.session.Username()
	if !b.session.Close() {
		return nil
	}
	b.recorder.SessionClosed()

	if !b.loggedIn {
		b.log.Info("bot deinitialized", logging.String("username", username))
		return nil
	}
	b.loggedIn = false

	if err := b.authenticator.Logout(ctx); err != nil {
		return err
	}

	b.log.Info("bot deinitialized", logging.String("username", username))
	return nil
}

func (b *Bot) Initialized() bool {
	return b.session.Initialized()
}

// Username returns the user the bot is initialized for, or an empty string.
func (b *Bot) Username() string {
	return b.session.Username()
}

func (b *Bot) open(username string) {
	b.session.Open(username)
	b.recorder.SessionOpened()
	b.log.Info("bot initialized", logging.String("username", username))
}
