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
	"errors"
	"fmt"
	"os"

	"code.vegaprotocol.io/keybot/internal/logging"
	"code.vegaprotocol.io/keybot/keybase"
	"code.vegaprotocol.io/keybot/libs/encoding"
	"code.vegaprotocol.io/keybot/metrics"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/imdario/mergo"
)

// DefaultConfigFile is the location of the configuration file, relative to
// the XDG configuration home.
const DefaultConfigFile = "keybot/config.toml"

var (
	ErrInvalidLogEnvironment = errors.New("the log environment must be \"dev\" or \"prod\"")
	ErrMetricsPathIsRequired = errors.New("the metrics path is required when metrics are enabled")
	ErrMetricsPortIsRequired = errors.New("the metrics port is required when metrics are enabled")
)

type Config struct {
	Logging LoggingConfig  `toml:"logging"`
	Keybase keybase.Config `toml:"keybase"`
	Metrics metrics.Config `toml:"metrics"`
}

type LoggingConfig struct {
	Environment string            `toml:"environment"`
	Level       encoding.LogLevel `toml:"level"`
}

func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Environment: "prod",
			Level: encoding.LogLevel{
				Level: logging.InfoLevel,
			},
		},
		Keybase: keybase.DefaultConfig(),
		Metrics: metrics.NewDefaultConfig(),
	}
}

// Validate checks the values set in the config, returning an error if
// anything is awry.
func (c Config) Validate() error {
	if c.Logging.Environment != "dev" && c.Logging.Environment != "prod" {
		return ErrInvalidLogEnvironment
	}

	if err := c.Keybase.Validate(); err != nil {
		return err
	}

	if c.Metrics.Enabled {
		if c.Metrics.Port == 0 {
			return ErrMetricsPortIsRequired
		}
		if c.Metrics.Path == "" {
			return ErrMetricsPathIsRequired
		}
	}

	return nil
}

// NewLogger builds the logger the config describes.
func (c Config) NewLogger() *logging.Logger {
	log := logging.NewLoggerFromEnv(c.Logging.Environment)
	log.SetLevel(c.Logging.Level.Get())
	return log
}

// LoadConfig reads the TOML file at path, and merges it onto the default
// config. With an empty path, the file is searched in the XDG configuration
// directories, and the defaults are returned when there is none.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		found, err := xdg.SearchConfigFile(DefaultConfigFile)
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	fileCfg := Config{}
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("could not read the config file %q: %w", path, err)
	}

	if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("could not merge the config file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("the config file %q is invalid: %w", path, err)
	}

	return cfg, nil
}

// DefaultConfigPath returns the path of the config file in the XDG
// configuration home, creating the missing directories.
func DefaultConfigPath() (string, error) {
	path, err := xdg.ConfigFile(DefaultConfigFile)
	if err != nil {
		return "", fmt.Errorf("could not locate the config home: %w", err)
	}
	return path, nil
}

// WriteConfig writes the config at path. An empty path writes it in the XDG
// configuration home. It returns the path of the written file.
func WriteConfig(path string, cfg Config) (string, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = defaultPath
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("could not create the config file %q: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", fmt.Errorf("could not write the config file %q: %w", path, err)
	}

	return path, nil
}
