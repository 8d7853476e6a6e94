// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import (
	"regexp"
	"strings"
)

// Literal declares a segment matching text exactly, with pattern
// metacharacters escaped. Combined with an internal "_" name it declares
// filler infixes between filename segments.
func Literal(name, text string) FieldSpec {
	return FieldSpec{Name: name, Expr: regexp.QuoteMeta(text)}
}

// Ext declares an `ext` filename segment for one file extension.
//
// Accepted extension forms:
//   - "csv"
//   - ".csv.gz"
//   - "*.tar.gz"
//
// Empty input declares a generic dot-prefixed extension matcher.
// Returned patterns include the leading dot.
func Ext(ext string) FieldSpec {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, "*.")
	ext = strings.TrimLeft(ext, ".")
	if ext == "" {
		return FieldSpec{Name: "ext", Expr: `\.[\w.]+`}
	}

	return FieldSpec{Name: "ext", Expr: regexp.QuoteMeta("." + ext)}
}

// DatePartitions declares the common `year=/month=/day=` partition chain.
func DatePartitions() []FieldSpec {
	return []FieldSpec{
		FieldExpr("year", `\d{4}`),
		FieldExpr("month", `\d{2}`),
		FieldExpr("day", `\d{2}`),
	}
}
