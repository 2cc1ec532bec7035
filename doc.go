// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package mcauth implements the server side primitives of the Minecraft protocol encryption handshake, used to
// authenticate premium accounts and to agree on the key of the encrypted session.
//
// A server generates one KeyPair at start-up and shares it across all logins. For each login attempt it sends the
// DER encoded public key and a fresh VerifyToken in the encryption request. The client answers with the shared
// secret and the token, both encrypted under the public key. The server unwraps them with DecryptSharedSecret and
// VerifyEchoedToken, then computes ServerIDHash and hands it, with the user name, to the session service that
// confirms account ownership.
//
// Transport, the session service request, and the AES/CFB8 traffic encryption that follows the handshake are left
// to the caller.
//
// Errors are classified by ErrorCode. Only ErrCodeInitialization is fatal to a server; decryption failures are
// reported as the single ErrDecryption value so that nothing distinguishes one failure cause from another.
package mcauth
