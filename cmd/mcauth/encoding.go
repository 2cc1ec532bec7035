// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/bytemare/mcauth"
)

const (
	encodingBase64 = "base64"
	encodingHex    = "hex"
	encodingPEM    = "pem"
)

var errNoPEMBlock = errors.New("no PEM block found")

func encodePublicKey(k *mcauth.KeyPair, encoding string) string {
	switch encoding {
	case encodingHex:
		return hex.EncodeToString(k.PublicKeyBytes())
	case encodingPEM:
		return strings.TrimSuffix(string(k.PublicKeyPEM()), "\n")
	default:
		return base64.StdEncoding.EncodeToString(k.PublicKeyBytes())
	}
}

func decodePublicKey(s, encoding string) ([]byte, error) {
	switch encoding {
	case encodingHex:
		return hex.DecodeString(strings.TrimSpace(s))
	case encodingPEM:
		block, _ := pem.Decode([]byte(s))
		if block == nil {
			return nil, errNoPEMBlock
		}

		return block.Bytes, nil
	case encodingBase64:
		return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}
