// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// dirCharset matches bare directory and partition values.
	dirCharset = `\w+`
	// fileCharset matches bare filename segments, dot included for extensions.
	fileCharset = `[\w.]+`
)

// compiledSpec is parser-internal compiled representation of one layout.
type compiledSpec struct {
	// re is the anchored full-key matcher.
	re *regexp.Regexp
	// source is the assembled pattern without anchors, kept for diagnostics.
	source string
}

// compileSpec validates the layout tree and assembles one anchored pattern.
//
// All layout defects (missing filename segments, malformed field shapes,
// invalid or duplicate field names) surface here, never at parse time.
func compileSpec(spec Spec, opts Options) (*compiledSpec, error) {
	if len(spec.File) == 0 {
		return nil, fmt.Errorf("%w: got %v", ErrMissingFileSpecs, spec.File)
	}

	if err := checkFieldNames(spec); err != nil {
		return nil, err
	}

	source, err := assemblePattern(spec, opts)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(`\A(?:` + source + `)\z`)
	if err != nil {
		return nil, fmt.Errorf("%w: compile pattern %q: %v", ErrInvalidFieldSpec, source, err)
	}

	return &compiledSpec{re: re, source: source}, nil
}

// assemblePattern renders directories, partitions and filename segments
// into one pattern string.
//
// Directory and partition renderings are joined by the separator with one
// trailing separator when any exist. Filename renderings are concatenated
// directly, so multiple filename segments form one contiguous component.
func assemblePattern(spec Spec, opts Options) (string, error) {
	sep := regexp.QuoteMeta(opts.Separator)
	delim := regexp.QuoteMeta(opts.PartitionDelimiter)

	parts := make([]string, 0, len(spec.Dirs)+len(spec.Partitions))
	for _, f := range spec.Dirs {
		p, err := renderValue(f, dirCharset)
		if err != nil {
			return "", err
		}

		parts = append(parts, p)
	}

	for _, f := range spec.Partitions {
		p, err := renderPartition(f, delim)
		if err != nil {
			return "", err
		}

		parts = append(parts, p)
	}

	var b strings.Builder
	if opts.Absolute {
		b.WriteString(sep)
	}

	if len(parts) > 0 {
		b.WriteString(strings.Join(parts, sep))
		b.WriteString(sep)
	}

	for _, f := range spec.File {
		p, err := renderValue(f, fileCharset)
		if err != nil {
			return "", err
		}

		b.WriteString(p)
	}

	return b.String(), nil
}

// renderPartition renders one `name=value` segment. The name token is a
// validated identifier, so it needs no escaping before the delimiter.
func renderPartition(f FieldSpec, delim string) (string, error) {
	v, err := renderValue(f, dirCharset)
	if err != nil {
		return "", err
	}

	return f.Name + delim + v, nil
}

// renderValue renders one segment value with the given bare-name charset.
//
// Group children always render through the directory rule: bare leaves
// inside a filename group match the directory charset, not the filename
// one. Custom expressions are spliced verbatim.
func renderValue(f FieldSpec, bare string) (string, error) {
	if f.Expr != "" && len(f.Fields) > 0 {
		return "", fmt.Errorf("%w: field %q sets both expr and nested fields", ErrInvalidFieldSpec, f.Name)
	}

	switch {
	case len(f.Fields) > 0:
		var b strings.Builder
		for _, child := range f.Fields {
			p, err := renderValue(child, dirCharset)
			if err != nil {
				return "", err
			}

			b.WriteString(p)
		}

		return capture(f.Name, b.String()), nil
	case f.Expr != "":
		return capture(f.Name, f.Expr), nil
	default:
		return capture(f.Name, bare), nil
	}
}

// capture wraps body as a named capture group.
func capture(name, body string) string {
	return "(?P<" + name + ">" + body + ")"
}

// checkFieldNames walks the whole layout tree up front so invalid and
// duplicate names produce uniform errors instead of engine-specific
// group-name diagnostics.
func checkFieldNames(spec Spec) error {
	seen := make(map[string]struct{})
	for _, list := range [][]FieldSpec{spec.Dirs, spec.Partitions, spec.File} {
		if err := collectFieldNames(list, seen); err != nil {
			return err
		}
	}

	return nil
}

// collectFieldNames validates and records field names of one subtree.
func collectFieldNames(fields []FieldSpec, seen map[string]struct{}) error {
	for _, f := range fields {
		if !validIdentifier(f.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidFieldName, f.Name)
		}

		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateFieldName, f.Name)
		}

		seen[f.Name] = struct{}{}

		if err := collectFieldNames(f.Fields, seen); err != nil {
			return err
		}
	}

	return nil
}
