// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	LogLevel       string `env:"MCAUTH_LOG_LEVEL" env-default:"info" env-description:"logrus level"`
	LogFormat      string `env:"MCAUTH_LOG_FORMAT" env-default:"text" env-description:"text or json"`
	KeyEncoding    string `env:"MCAUTH_KEY_ENCODING" env-default:"base64" env-description:"base64, hex or pem"`
	SessionID      string `env:"MCAUTH_SESSION_ID" env-description:"session id hashed by selftest"`
	SelftestRounds int    `env:"MCAUTH_SELFTEST_ROUNDS" env-default:"16" env-description:"concurrent logins run by selftest"`
}

var (
	logFormats   = []string{"text", "json"}
	keyEncodings = []string{encodingBase64, encodingHex, encodingPEM}
)

// loadConfig loads the .env file at path, if any, then reads the environment. Variables already set in the
// environment take precedence over the file.
func loadConfig(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("cannot load config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("MCAUTH_LOG_LEVEL: %w", err)
	}

	if !slices.Contains(logFormats, c.LogFormat) {
		return fmt.Errorf("MCAUTH_LOG_FORMAT: unknown format %q", c.LogFormat)
	}

	if !slices.Contains(keyEncodings, c.KeyEncoding) {
		return fmt.Errorf("MCAUTH_KEY_ENCODING: unknown encoding %q", c.KeyEncoding)
	}

	if c.SelftestRounds < 1 {
		return fmt.Errorf("MCAUTH_SELFTEST_ROUNDS: must be positive, got %d", c.SelftestRounds)
	}

	return nil
}

func newLogger(c *Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, _ := logrus.ParseLevel(c.LogLevel) // validated in loadConfig
	log.SetLevel(level)

	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
