// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

// MergeFields merges field spec slices preserving input order.
func MergeFields(fieldSets ...[]FieldSpec) []FieldSpec {
	total := 0
	for _, set := range fieldSets {
		total += len(set)
	}

	out := make([]FieldSpec, 0, total)
	for _, set := range fieldSets {
		out = append(out, set...)
	}

	return out
}
