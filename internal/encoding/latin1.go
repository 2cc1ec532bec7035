// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides the byte and integer encodings used by the handshake.
package encoding

import "unicode"

// replacement is written for runes that ISO-8859-1 can't represent.
const replacement = '?'

// Latin1 encodes s in ISO-8859-1. Runes above U+00FF and invalid UTF-8 sequences are each replaced by a single '?'.
func Latin1(s string) []byte {
	out := make([]byte, 0, len(s))

	for _, r := range s {
		if r > unicode.MaxLatin1 {
			out = append(out, replacement)
			continue
		}

		out = append(out, byte(r))
	}

	return out
}
