// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import "errors"

// Sentinel errors for keyparse operations.
var (
	// ErrInvalidFieldSpec indicates malformed or unsupported field spec input.
	ErrInvalidFieldSpec = errors.New("invalid field spec")
	// ErrMissingFileSpecs indicates a spec without filename segments.
	ErrMissingFileSpecs = errors.New("file specs must not be empty")
	// ErrInvalidFieldName indicates a field name that is not a valid identifier.
	ErrInvalidFieldName = errors.New("invalid field name")
	// ErrDuplicateFieldName indicates a field name declared more than once.
	ErrDuplicateFieldName = errors.New("duplicate field name")

	// ErrPrefixMismatch indicates key leading-separator disagreement with
	// the configured absolute/relative form.
	ErrPrefixMismatch = errors.New("key prefix mismatch")
	// ErrNoMatch indicates a key that does not match the compiled pattern.
	ErrNoMatch = errors.New("key does not match pattern")
	// ErrSeparatorInValue indicates a parsed value containing the separator
	// in strict validation mode.
	ErrSeparatorInValue = errors.New("parsed values contain the separator")

	// ErrInvalidLayout indicates malformed layout file input.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrUnknownLayout indicates a layout name absent from the set.
	ErrUnknownLayout = errors.New("unknown layout")
	// ErrNoLayoutMatched indicates that no layout in the set parsed the key.
	ErrNoLayoutMatched = errors.New("no layout matched key")
)
