// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package mcauth

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrInitialization indicates that a required algorithm is unavailable in the runtime. The server cannot operate
	// without it, and callers should abort start-up.
	ErrInitialization = ErrCodeInitialization.New("")

	// ErrInput indicates that an argument is invalid, e.g. a malformed public key or a failing random source.
	ErrInput = ErrCodeInput.New("")

	// ErrDecryption indicates that a client-supplied ciphertext could not be unwrapped. The value and its message are
	// the same for every cause, and it never carries the underlying error.
	ErrDecryption = ErrCodeDecryption.New("")

	// ErrTokenMismatch indicates that the echoed verify token does not match the one sent to the client.
	ErrTokenMismatch = ErrCodeTokenMismatch.New("verify token mismatch")
)

// ErrorCode represents the class of a handshake error. Only ErrCodeInitialization is meant to be fatal to a server,
// all other classes are bound to a single login attempt.
type ErrorCode byte //nolint:errname // This is an error code, not an error type.

const (
	// ErrCodeUnknown represents an unknown error.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeInitialization represents an unavailable cryptographic algorithm.
	ErrCodeInitialization

	// ErrCodeInput represents an invalid argument.
	ErrCodeInput

	// ErrCodeDecryption represents a failure to decrypt client data.
	ErrCodeDecryption

	// ErrCodeTokenMismatch represents a verify token that did not survive the round trip.
	ErrCodeTokenMismatch
)

// New creates a new Error with the given message and errors.
func (c ErrorCode) New(message string, errs ...error) *Error {
	if message == "" {
		message = strings.ReplaceAll(c.String(), "_", " ")
	}

	return &Error{
		Code:    c,
		Message: message,
		Err:     errors.Join(errs...),
	}
}

// String returns the string representation of the ErrorCode. If the code is not recognized, it returns "unknown_error".
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeUnknown:
		return "unknown_error"
	case ErrCodeInitialization:
		return "initialization_error"
	case ErrCodeInput:
		return "input_error"
	case ErrCodeDecryption:
		return "decryption_error"
	case ErrCodeTokenMismatch:
		return "token_mismatch_error"
	default:
		return "unknown_error"
	}
}

// Error implements the error interface for the ErrorCode type.
func (c ErrorCode) Error() string {
	return c.String()
}

// Is reports whether target is the same ErrorCode, or an *Error carrying it.
func (c ErrorCode) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return c == errCode
	}

	return false
}

// As implements the errors.As method for the ErrorCode type.
func (c ErrorCode) As(target any) bool {
	switch t := target.(type) {
	case *ErrorCode:
		*t = c
		return true
	default:
		return false
	}
}

// Error represents a classified handshake error.
type Error struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error returns only the concise form of the error, without the cause. The cause can be retrieved with Unwrap().
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Join wraps the provided errors under the current error.
func (e *Error) Join(errs ...error) error {
	return errors.Join(e, errors.Join(errs...))
}

// LogValue implements the slog.LogValuer interface.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("code_name", e.Code.String()),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}

	return slog.GroupValue(attrs...)
}

// Format implements the fmt.Formatter interface. The %+v verb prints the code and the full cause chain.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			e.formatV(f)
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(f, e.Error()) //nolint:errcheck // human-readable
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error()) //nolint:errcheck // quoted string
	default:
		_, _ = io.WriteString(f, e.Error()) //nolint:errcheck // safe default
	}
}

// Is matches a bare ErrorCode by code, and another *Error by code and message.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *Error:
		return e.Code == t.Code && strings.EqualFold(e.Message, t.Message)
	default:
		return false
	}
}

// As implements the errors.As method for the Error type.
func (e *Error) As(target any) bool {
	switch t := target.(type) {
	case *ErrorCode:
		*t = e.Code
		return true
	case **Error:
		*t = e
		return true
	default:
		return false
	}
}

func printV(f fmt.State, err error, depth int) {
	if err == nil {
		return
	}

	prefix := strings.Repeat("  ", depth)
	_, _ = fmt.Fprintf(f, "\n%s↳ %v", prefix, err) //nolint:errcheck // safe to ignore

	var multiUnwrapper interface{ Unwrap() []error }
	if errors.As(err, &multiUnwrapper) {
		for _, child := range multiUnwrapper.Unwrap() {
			printV(f, child, depth+1)
		}

		return
	}

	var singleUnwrapper interface{ Unwrap() error }
	if errors.As(err, &singleUnwrapper) {
		printV(f, singleUnwrapper.Unwrap(), depth+1)
	}
}

func (e *Error) formatV(f fmt.State) {
	_, _ = fmt.Fprintf(f, "code=%d(%s)", e.Code, e.Code.String()) //nolint:errcheck // safe to ignore
	if e.Message != "" {
		_, _ = fmt.Fprintf(f, " message=%q", e.Message) //nolint:errcheck // safe to ignore
	}

	if e.Err != nil {
		printV(f, e.Err, 0)
	}
}
