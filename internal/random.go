// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
)

// Reader returns r, or crypto/rand.Reader if r is nil.
func Reader(r io.Reader) io.Reader {
	if r == nil {
		return cryptorand.Reader
	}

	return r
}

// ReadRandom fills out entirely from r, which defaults to crypto/rand.Reader.
func ReadRandom(r io.Reader, out []byte) error {
	if _, err := io.ReadFull(Reader(r), out); err != nil {
		return fmt.Errorf("%w: %w", ErrShortRead, err)
	}

	return nil
}
