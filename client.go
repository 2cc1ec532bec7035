// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package mcauth

import (
	"crypto/rsa"
	"crypto/x509"
	"io"

	"github.com/bytemare/mcauth/internal"
)

// ParsePublicKey parses the DER encoded public key of an encryption request.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, ErrInput.Join(internal.ErrPublicKeyEncoding, err)
	}

	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrInput.Join(internal.ErrNotRSAPublicKey)
	}

	return pub, nil
}

// Encrypt encrypts data under pub with RSAES-PKCS1-v1_5, as a client does for the shared secret and the verify token.
// If r is nil, crypto/rand.Reader is used.
func Encrypt(r io.Reader, pub *rsa.PublicKey, data []byte) ([]byte, error) {
	if pub == nil {
		return nil, ErrInput.Join(internal.ErrNilPublicKey)
	}

	out, err := rsa.EncryptPKCS1v15(internal.Reader(r), pub, data)
	if err != nil {
		return nil, ErrInput.Join(internal.ErrEncryption, err)
	}

	return out, nil
}

// NewSharedSecret returns a shared secret read from r, or from crypto/rand.Reader if r is nil.
func NewSharedSecret(r io.Reader) (SharedSecret, error) {
	var s SharedSecret
	if err := internal.ReadRandom(r, s[:]); err != nil {
		return SharedSecret{}, ErrInput.Join(err)
	}

	return s, nil
}
