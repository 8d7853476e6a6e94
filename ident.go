// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import "strings"

// internalPrefix marks fields captured for pattern structure only.
const internalPrefix = "_"

// validIdentifier reports whether name is usable as a capture field name:
// ASCII letters, digits and underscore, not starting with a digit.
func validIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// internalField reports whether name is an internal-only capture.
func internalField(name string) bool {
	return strings.HasPrefix(name, internalPrefix)
}
