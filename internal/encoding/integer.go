// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding

import "math/big"

// OS2SignedInt interprets in as a big-endian two's-complement integer. The value is negative if the most significant
// bit of in[0] is set. An empty input is zero.
func OS2SignedInt(in []byte) *big.Int {
	n := new(big.Int).SetBytes(in)

	if len(in) != 0 && in[0]&0x80 != 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(len(in))*8)
		n.Sub(n, modulus)
	}

	return n
}

// SignedHex returns the lowercase base 16 form of OS2SignedInt(in), with a leading '-' for negative values and no
// zero padding.
func SignedHex(in []byte) string {
	return OS2SignedInt(in).Text(16)
}
