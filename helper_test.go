// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package mcauth_test

import (
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/bytemare/mcauth"
)

// fixturePublicKey is the DER encoded public key of a 1024-bit RSA key generated by OpenSSL.
const fixturePublicKey = "30819f300d06092a864886f70d010101050003818d0030818902818100dce1aac6a391df18d95d284a473a27" +
	"a79dff4edd0c711be65866366240104de9d9fcf6c8c57072d488b7c2edc66b9e6990395d89a12fb72d394d0a61fe3512dc3f065a85e4" +
	"b79582ef38de6f968723a2601df4ed217afa1e4177309ac347b1b97b5fb90f467a45325fe44db2c7ad5b2b92730abd102fecf84c3b8700" +
	"10e366750203010001"

var (
	serverKeys = sync.OnceValue(func() *mcauth.KeyPair { return mcauth.MustGenerateKeyPair() })
	otherKeys  = sync.OnceValue(func() *mcauth.KeyPair { return mcauth.MustGenerateKeyPair() })
)

func decodeHex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func expectErrors(t *testing.T, f func() error, want ...error) {
	t.Helper()

	err := f()
	if err == nil {
		t.Fatal("expected an error")
	}

	for _, w := range want {
		if !errors.Is(err, w) {
			t.Fatalf("expected error %q, got %q", w, err)
		}
	}
}

// encryptFor is the client side of the encryption response.
func encryptFor(t testing.TB, k *mcauth.KeyPair, data []byte) []byte {
	t.Helper()

	pub, err := mcauth.ParsePublicKey(k.PublicKeyBytes())
	if err != nil {
		t.Fatal(err)
	}

	out, err := mcauth.Encrypt(nil, pub, data)
	if err != nil {
		t.Fatal(err)
	}

	return out
}
