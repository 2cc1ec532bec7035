// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package main

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/glowlabs-org/threadgroup"
	"github.com/sirupsen/logrus"

	"github.com/bytemare/mcauth"
)

var (
	errHashMismatch    = errors.New("client and server hashes differ")
	errSecretMismatch  = errors.New("unwrapped secret differs from the client's")
	errForeignAccepted = errors.New("foreign key pair unwrapped the shared secret")
)

// simulateLogin plays both sides of a single login against server. The foreign key pair must fail to unwrap the
// client's secret.
func simulateLogin(server, foreign *mcauth.KeyPair, sessionID string) error {
	// Server hello.
	token, err := mcauth.NewVerifyToken()
	if err != nil {
		return err
	}

	// Client side.
	pub, err := mcauth.ParsePublicKey(server.PublicKeyBytes())
	if err != nil {
		return err
	}

	secret, err := mcauth.NewSharedSecret(nil)
	if err != nil {
		return err
	}

	encSecret, err := mcauth.Encrypt(nil, pub, secret.Bytes())
	if err != nil {
		return err
	}

	encToken, err := mcauth.Encrypt(nil, pub, token.Bytes())
	if err != nil {
		return err
	}

	clientHash, err := mcauth.ServerIDHash(sessionID, secret.Bytes(), server.PublicKeyBytes())
	if err != nil {
		return err
	}

	// Server side.
	if err = mcauth.VerifyEchoedToken(server.Decrypter(), token, encToken); err != nil {
		return err
	}

	unwrapped, err := mcauth.DecryptSharedSecret(server.Decrypter(), encSecret)
	if err != nil {
		return err
	}

	if !unwrapped.Equal(secret) {
		return errSecretMismatch
	}

	serverHash, err := server.ServerIDHash(sessionID, unwrapped)
	if err != nil {
		return err
	}

	if serverHash != clientHash {
		return fmt.Errorf("%w: %s != %s", errHashMismatch, serverHash, clientHash)
	}

	if _, err = mcauth.DecryptSharedSecret(foreign.Decrypter(), encSecret); !errors.Is(err, mcauth.ErrDecryption) {
		return errors.Join(errForeignAccepted, err)
	}

	return nil
}

func runSelftest(cfg *Config, log *logrus.Logger, args []string, stdout io.Writer) error {
	fs := newFlagSet("selftest", log)
	rounds := fs.Int("rounds", cfg.SelftestRounds, "number of concurrent simulated logins")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *rounds < 1 {
		return fmt.Errorf("%w: -rounds must be positive", errUsage)
	}

	server, err := mcauth.GenerateKeyPair()
	if err != nil {
		return err
	}

	foreign, err := mcauth.GenerateKeyPair()
	if err != nil {
		return err
	}

	failed := runLogins(log, server, foreign, cfg.SessionID, *rounds)
	if failed != nil {
		return failed
	}

	_, err = fmt.Fprintf(stdout, "%d logins ok\n", *rounds)

	return err
}

// runLogins runs the simulated logins concurrently and returns the joined failures.
func runLogins(log *logrus.Logger, server, foreign *mcauth.KeyPair, sessionID string, rounds int) error {
	var (
		tg       threadgroup.ThreadGroup
		mu       sync.Mutex
		failures []error
	)

	for i := range rounds {
		err := tg.Launch(func() {
			entry := log.WithField("round", i)

			if err := simulateLogin(server, foreign, sessionID); err != nil {
				entry.WithError(err).Warn("login failed")
				mu.Lock()
				failures = append(failures, fmt.Errorf("round %d: %w", i, err))
				mu.Unlock()

				return
			}

			entry.Debug("login ok")
		})
		if err != nil {
			return err
		}
	}

	if err := tg.Stop(); err != nil {
		return err
	}

	return errors.Join(failures...)
}
