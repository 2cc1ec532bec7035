// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto"
	_ "crypto/sha1" // registers SHA-1, the digest of the server id hash.
	"hash"

	bhash "github.com/bytemare/hash"
)

// NewHash returns a newly instantiated Hash, or ErrHashUnavailable if id is not linked into the binary.
func NewHash(id crypto.Hash) (*Hash, error) {
	if !id.Available() {
		return nil, ErrHashUnavailable
	}

	return &Hash{h: id.New()}, nil
}

// Hash wraps a hash function and exposes only necessary hashing methods.
type Hash struct {
	h hash.Hash
}

// Size returns the output size of the hashing function.
func (h *Hash) Size() int {
	return h.h.Size()
}

// Sum returns the current hash of the running state.
func (h *Hash) Sum() []byte {
	return h.h.Sum(nil)
}

// Write adds the inputs, in order, to the running state.
func (h *Hash) Write(p ...[]byte) {
	for _, in := range p {
		_, _ = h.h.Write(in)
	}
}

// Fingerprint returns the SHA-256 digest of data.
func Fingerprint(data []byte) []byte {
	h := bhash.FromCrypto(crypto.SHA256).GetHashFunction()
	_, _ = h.Write(data)

	return h.Sum(nil)
}
