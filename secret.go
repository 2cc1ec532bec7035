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
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
)

// SharedSecretLength is the byte length of the shared secret, an AES-128 key.
const SharedSecretLength = 16

// SharedSecret is the symmetric key material the client chose for the encrypted session.
type SharedSecret [SharedSecretLength]byte

// Bytes returns a copy of the key material.
func (s SharedSecret) Bytes() []byte {
	return s[:]
}

// Equal reports, in constant time, whether both secrets are the same.
func (s SharedSecret) Equal(other SharedSecret) bool {
	return subtle.ConstantTimeCompare(s[:], other[:]) == 1
}

// Block returns the AES block cipher keyed with the secret, from which the traffic layer builds its stream cipher.
func (s SharedSecret) Block() (cipher.Block, error) {
	b, err := aes.NewCipher(s[:])
	if err != nil {
		return nil, ErrInitialization.Join(err)
	}

	return b, nil
}

// Decrypt decrypts data, encrypted by a client with RSAES-PKCS1-v1_5 under the public key bound to d. Every failure
// to decrypt returns ErrDecryption, without cause, and must be handled as a failed authentication.
func Decrypt(d crypto.Decrypter, data []byte) ([]byte, error) {
	if d == nil {
		return nil, ErrDecryption
	}

	// A nil crypto.DecrypterOpts selects PKCS #1 v1.5.
	plaintext, err := d.Decrypt(rand.Reader, data, nil)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

// DecryptSharedSecret decrypts the shared secret of an encryption response. A plaintext of any other length than
// SharedSecretLength is rejected with the same ErrDecryption.
func DecryptSharedSecret(d crypto.Decrypter, data []byte) (SharedSecret, error) {
	plaintext, err := Decrypt(d, data)
	if err != nil {
		return SharedSecret{}, err
	}

	if len(plaintext) != SharedSecretLength {
		clear(plaintext)
		return SharedSecret{}, ErrDecryption
	}

	var s SharedSecret
	copy(s[:], plaintext)
	clear(plaintext)

	return s, nil
}
