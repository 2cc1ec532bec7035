// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides values and functions for the handshake that are not part of the public API.
package internal

import "errors"

var (
	// ErrHashUnavailable happens when the requested hash function is not registered in the runtime.
	ErrHashUnavailable = errors.New("hash function unavailable")

	// ErrKeyGeneration happens when the runtime refuses to generate the server key pair.
	ErrKeyGeneration = errors.New("key pair generation failed")

	// ErrPublicKeyEncoding happens when the public key can't be encoded to, or decoded from, its DER form.
	ErrPublicKeyEncoding = errors.New("invalid public key encoding")

	// ErrNotRSAPublicKey happens when a decoded public key is not an RSA key.
	ErrNotRSAPublicKey = errors.New("public key is not an RSA key")

	// ErrShortRead happens when the random source can't provide enough bytes.
	ErrShortRead = errors.New("random source could not provide enough bytes")

	// ErrNilPublicKey happens when no public key is provided for encryption.
	ErrNilPublicKey = errors.New("nil public key")

	// ErrEncryption happens when client side encryption fails, e.g. on a message too long for the key.
	ErrEncryption = errors.New("encryption failed")
)
