// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Command mcauth generates and checks the server side material of an encrypted login handshake.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bytemare/mcauth"
)

const (
	exitOK = iota
	exitUsage
	exitConfig
	exitFailure
)

const usage = `usage: mcauth [-config FILE] <command> [flags]

commands:
  keygen       generate a key pair and print its public key and fingerprint
  token        print a fresh verify token
  serverhash   compute the server id hash of a login
  selftest     run simulated logins against a fresh key pair
`

var errUsage = errors.New("invalid usage")

type command func(cfg *Config, log *logrus.Logger, args []string, stdout io.Writer) error

var commands = map[string]command{
	"keygen":     runKeygen,
	"token":      runToken,
	"serverhash": runServerHash,
	"selftest":   runSelftest,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mcauth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { _, _ = io.WriteString(stderr, usage) }
	configPath := fs.String("config", "", "optional .env file")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	name := fs.Arg(0)

	cmd, ok := commands[name]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n", name)
		fs.Usage()

		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitConfig
	}

	log := newLogger(cfg, stderr)

	if err = cmd(cfg, log, fs.Args()[1:], stdout); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return exitUsage
		}

		log.WithField("command", name).WithError(err).Error("command failed")

		return exitFailure
	}

	return exitOK
}

func newFlagSet(name string, log *logrus.Logger) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(log.Out)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Join(errUsage, err)
	}

	if fs.NArg() != 0 {
		return fmt.Errorf("%w: unexpected arguments %s", errUsage, strings.Join(fs.Args(), " "))
	}

	return nil
}

func runKeygen(cfg *Config, log *logrus.Logger, args []string, stdout io.Writer) error {
	if err := parseFlags(newFlagSet("keygen", log), args); err != nil {
		return err
	}

	k, err := mcauth.GenerateKeyPair()
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"bits":     mcauth.KeySize,
		"encoding": cfg.KeyEncoding,
	}).Debug("key pair generated")

	_, err = fmt.Fprintf(stdout, "%s\nfingerprint: %s\n",
		encodePublicKey(k, cfg.KeyEncoding), hex.EncodeToString(k.Fingerprint()))

	return err
}

func runToken(_ *Config, log *logrus.Logger, args []string, stdout io.Writer) error {
	if err := parseFlags(newFlagSet("token", log), args); err != nil {
		return err
	}

	token, err := mcauth.NewVerifyToken()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, hex.EncodeToString(token.Bytes()))

	return err
}

func runServerHash(cfg *Config, log *logrus.Logger, args []string, stdout io.Writer) error {
	fs := newFlagSet("serverhash", log)
	sessionID := fs.String("session-id", cfg.SessionID, "session id sent by the server")
	secretHex := fs.String("secret", "", "shared secret, hex")
	publicKey := fs.String("public-key", "", "server public key, in the configured encoding")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *publicKey == "" {
		return fmt.Errorf("%w: -public-key is required", errUsage)
	}

	secret, err := hex.DecodeString(*secretHex)
	if err != nil {
		return fmt.Errorf("%w: -secret: %w", errUsage, err)
	}

	der, err := decodePublicKey(*publicKey, cfg.KeyEncoding)
	if err != nil {
		return fmt.Errorf("%w: -public-key: %w", errUsage, err)
	}

	if _, err = mcauth.ParsePublicKey(der); err != nil {
		return err
	}

	h, err := mcauth.ServerIDHash(*sessionID, secret, der)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, h)

	return err
}
