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
	"errors"
	"fmt"
	"net/http"
	"time"

	"code.vegaprotocol.io/keybot/internal/logging"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config represents the configuration of the metric package
type Config struct {
	Enabled bool   `toml:"enabled"`
	Port    int    `toml:"port"`
	Path    string `toml:"path"`
}

func NewDefaultConfig() Config {
	return Config{
		Enabled: false,
		Port:    2112,
		Path:    "/metrics",
	}
}

type Server struct {
	log    *logging.Logger
	server *http.Server
}

// Handler serves the metrics of the recorder in the prometheus text format.
func Handler(recorder *Recorder) http.Handler {
	return promhttp.HandlerFor(recorder.Gatherer(), promhttp.HandlerOpts{})
}

// Start exposes the metrics of the recorder over HTTP, given the config. It
// returns nil when the metrics are disabled.
func Start(log *logging.Logger, conf Config, recorder *Recorder) *Server {
	if !conf.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(conf.Path, Handler(recorder))

	s := &Server{
		log: log.Named("metrics"),
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", conf.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go func() {
		s.log.Info("starting metrics server", logging.String("address", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("metrics server stopped", logging.Error(err))
		}
	}()

	return s
}

func (s *Server) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
