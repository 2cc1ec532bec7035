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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"slices"

	"github.com/bytemare/mcauth/internal"
)

// KeySize is the modulus size, in bits, of the server key pair.
const KeySize = 1024

// generateRSAKey is swapped in tests to simulate a runtime refusing the key size.
var generateRSAKey = rsa.GenerateKey

// KeyPair holds the server's RSA key pair and the encoding of its public key. It is immutable and safe for
// concurrent use, and is meant to be generated once per server lifetime.
type KeyPair struct {
	private   *rsa.PrivateKey
	publicDER []byte
}

// GenerateKeyPair returns a fresh KeySize bits RSA key pair. The returned error carries ErrCodeInitialization: it
// means the runtime can't provide the algorithm, and the server should not start.
func GenerateKeyPair() (*KeyPair, error) {
	private, err := generateRSAKey(rand.Reader, KeySize)
	if err != nil {
		return nil, ErrInitialization.Join(internal.ErrKeyGeneration, err)
	}

	der, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	if err != nil {
		return nil, ErrInitialization.Join(internal.ErrPublicKeyEncoding, err)
	}

	return &KeyPair{
		private:   private,
		publicDER: der,
	}, nil
}

// MustGenerateKeyPair is like GenerateKeyPair but panics if the key pair can't be generated. It is intended for
// process initialization.
func MustGenerateKeyPair() *KeyPair {
	k, err := GenerateKeyPair()
	if err != nil {
		panic(err)
	}

	return k
}

// Public returns the public half of the key pair.
func (k *KeyPair) Public() *rsa.PublicKey {
	return &k.private.PublicKey
}

// PublicKeyBytes returns the X.509 SubjectPublicKeyInfo DER encoding of the public key, as sent to clients in the
// encryption request and fed into ServerIDHash.
func (k *KeyPair) PublicKeyBytes() []byte {
	return slices.Clone(k.publicDER)
}

// PublicKeyPEM returns the public key as a PEM "PUBLIC KEY" block.
func (k *KeyPair) PublicKeyPEM() []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: k.publicDER})
}

// Fingerprint returns the SHA-256 digest of PublicKeyBytes, to identify the key in logs.
func (k *KeyPair) Fingerprint() []byte {
	return internal.Fingerprint(k.publicDER)
}

// Decrypter returns the decryption context bound to the private key, for use with Decrypt, DecryptSharedSecret, and
// VerifyEchoedToken.
func (k *KeyPair) Decrypter() crypto.Decrypter {
	return k.private
}

// ServerIDHash computes the server id hash of a login bound to this key pair. See ServerIDHash.
func (k *KeyPair) ServerIDHash(sessionID string, secret SharedSecret) (string, error) {
	return ServerIDHash(sessionID, secret[:], k.publicDER)
}
