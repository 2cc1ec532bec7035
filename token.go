// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package mcauth

import (
	"crypto"
	"crypto/subtle"
	"io"

	"github.com/bytemare/mcauth/internal"
)

// VerifyTokenLength is the byte length of a VerifyToken.
const VerifyTokenLength = 4

// VerifyToken is the nonce a client must echo back, encrypted under the server's public key, to prove it holds the
// key it used for the shared secret.
type VerifyToken [VerifyTokenLength]byte

// GenerateVerifyToken returns a token read from r. The source must be cryptographically secure, a predictable token
// lets a relay replay an encryption response. If r is nil, crypto/rand.Reader is used.
func GenerateVerifyToken(r io.Reader) (VerifyToken, error) {
	var t VerifyToken
	if err := internal.ReadRandom(r, t[:]); err != nil {
		return VerifyToken{}, ErrInput.Join(err)
	}

	return t, nil
}

// NewVerifyToken returns a token read from crypto/rand.Reader.
func NewVerifyToken() (VerifyToken, error) {
	return GenerateVerifyToken(nil)
}

// Bytes returns the token as a slice.
func (t VerifyToken) Bytes() []byte {
	return t[:]
}

// Equal reports, in constant time, whether echoed is the same token.
func (t VerifyToken) Equal(echoed []byte) bool {
	return subtle.ConstantTimeCompare(t[:], echoed) == 1
}

// VerifyEchoedToken decrypts the token echoed in an encryption response and checks it against expected. It returns
// ErrDecryption if the ciphertext can't be unwrapped, and ErrTokenMismatch if the plaintext is not expected.
// Either way the login must be rejected.
func VerifyEchoedToken(d crypto.Decrypter, expected VerifyToken, encrypted []byte) error {
	echoed, err := Decrypt(d, encrypted)
	if err != nil {
		return err
	}

	if !expected.Equal(echoed) {
		return ErrTokenMismatch
	}

	return nil
}
