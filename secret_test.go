// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package mcauth_test

import (
	"bytes"
	"crypto/cipher"
	"testing"

	"github.com/bytemare/mcauth"
)

func TestDecryptSharedSecretRoundTrip(t *testing.T) {
	k := serverKeys()

	secret, err := mcauth.NewSharedSecret(nil)
	if err != nil {
		t.Fatal(err)
	}

	got, err := mcauth.DecryptSharedSecret(k.Decrypter(), encryptFor(t, k, secret.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	if !got.Equal(secret) || got != secret {
		t.Fatalf("got %x, want %x", got, secret)
	}
}

func TestDecryptSharedSecretWrongKey(t *testing.T) {
	secret, err := mcauth.NewSharedSecret(nil)
	if err != nil {
		t.Fatal(err)
	}

	ciphertext := encryptFor(t, serverKeys(), secret.Bytes())

	expectErrors(t, func() error {
		_, err := mcauth.DecryptSharedSecret(otherKeys().Decrypter(), ciphertext)
		return err
	}, mcauth.ErrDecryption, mcauth.ErrCodeDecryption)
}

func TestDecryptSharedSecretLength(t *testing.T) {
	k := serverKeys()

	for _, length := range []int{0, 1, mcauth.SharedSecretLength - 1, mcauth.SharedSecretLength + 1, 32} {
		ciphertext := encryptFor(t, k, bytes.Repeat([]byte{0x42}, length))

		s, err := mcauth.DecryptSharedSecret(k.Decrypter(), ciphertext)
		if err != mcauth.ErrDecryption { //nolint:errorlint // the exact value is the contract.
			t.Fatalf("length %d: expected %q, got %v", length, mcauth.ErrDecryption, err)
		}

		if s != (mcauth.SharedSecret{}) {
			t.Fatalf("length %d: a partial secret was returned", length)
		}
	}
}

func TestDecryptNilDecrypter(t *testing.T) {
	expectErrors(t, func() error {
		_, err := mcauth.Decrypt(nil, []byte{1})
		return err
	}, mcauth.ErrDecryption)
}

func TestSharedSecretBytesIsCopy(t *testing.T) {
	s := mcauth.SharedSecret{1}
	b := s.Bytes()
	b[0] = 2

	if s[0] != 1 {
		t.Fatal("mutating Bytes() changed the secret")
	}
}

func TestSharedSecretBlock(t *testing.T) {
	s := mcauth.SharedSecret{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	block, err := s.Block()
	if err != nil {
		t.Fatal(err)
	}

	if block.BlockSize() != mcauth.SharedSecretLength {
		t.Fatalf("unexpected block size %d", block.BlockSize())
	}

	// Both peers key their stream with the same secret.
	other, err := s.Block()
	if err != nil {
		t.Fatal(err)
	}

	iv := s.Bytes()
	plaintext := []byte("hello, server")
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)

	decrypted := make([]byte, len(ciphertext))
	cipher.NewCTR(other, iv).XORKeyStream(decrypted, ciphertext)

	if !bytes.Equal(decrypted, plaintext) {
		t.Fatal("the block ciphers of the same secret differ")
	}
}

func TestEncryptInvalidInput(t *testing.T) {
	expectErrors(t, func() error {
		_, err := mcauth.Encrypt(nil, nil, []byte{1})
		return err
	}, mcauth.ErrInput)

	// PKCS #1 v1.5 leaves at most k-11 bytes for the message.
	expectErrors(t, func() error {
		_, err := mcauth.Encrypt(nil, serverKeys().Public(), make([]byte, mcauth.KeySize/8-10))
		return err
	}, mcauth.ErrInput)
}

func TestNewSharedSecretFailingSource(t *testing.T) {
	expectErrors(t, func() error {
		_, err := mcauth.NewSharedSecret(failingReader{})
		return err
	}, mcauth.ErrInput)
}
