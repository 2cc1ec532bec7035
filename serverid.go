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

	"github.com/bytemare/mcauth/internal"
	"github.com/bytemare/mcauth/internal/encoding"
)

// serverIDHashFunction is the digest of the server id hash. Clients and the session service use SHA-1.
var serverIDHashFunction = crypto.SHA1

// ServerIDHash returns the server id hash the session service expects for a login: the SHA-1 digest of the ISO-8859-1
// encoded session id, the shared secret, and the DER encoded public key, rendered as a signed two's-complement
// integer in lowercase base 16 (e.g. "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1"). It is not zero padded.
//
// Runes of sessionID that ISO-8859-1 can't represent are hashed as '?'. An error is returned only if SHA-1 is not
// available, and it carries ErrCodeInitialization.
func ServerIDHash(sessionID string, sharedSecret, publicKey []byte) (string, error) {
	h, err := internal.NewHash(serverIDHashFunction)
	if err != nil {
		return "", ErrInitialization.Join(err)
	}

	h.Write(encoding.Latin1(sessionID), sharedSecret, publicKey)

	return encoding.SignedHex(h.Sum()), nil
}
