// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"bytes"
	"crypto"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"testing"
)

func TestNewHashUnavailable(t *testing.T) {
	if _, err := NewHash(crypto.Hash(0)); !errors.Is(err, ErrHashUnavailable) {
		t.Fatalf("expected %q, got %v", ErrHashUnavailable, err)
	}
}

func TestHashWriteIsConcatenation(t *testing.T) {
	h, err := NewHash(crypto.SHA1)
	if err != nil {
		t.Fatal(err)
	}

	if h.Size() != sha1.Size {
		t.Fatalf("unexpected size %d", h.Size())
	}

	h.Write([]byte("ab"), nil, []byte("c"))
	want := sha1.Sum([]byte("abc"))

	if !bytes.Equal(h.Sum(), want[:]) {
		t.Fatalf("got %x, want %x", h.Sum(), want)
	}
}

func TestFingerprint(t *testing.T) {
	want, _ := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

	if got := Fingerprint([]byte("abc")); !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestReadRandom(t *testing.T) {
	out := make([]byte, 8)
	if err := ReadRandom(nil, out); err != nil {
		t.Fatal(err)
	}

	if err := ReadRandom(failingReader{}, out); !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected %q, got %v", ErrShortRead, err)
	}

	if err := ReadRandom(bytes.NewReader([]byte{1, 2, 3}), out); !errors.Is(err, ErrShortRead) {
		t.Fatalf("expected %q on a short source, got %v", ErrShortRead, err)
	}
}
