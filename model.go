// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import "github.com/goccy/go-yaml"

// Validation represents the value validation mode applied after matching.
type Validation uint8

const (
	// ValidationUnknown is unset/invalid validation placeholder.
	ValidationUnknown Validation = iota
	// ValidationStrict rejects parsed values containing the separator.
	ValidationStrict
	// ValidationLenient returns separator-containing values as-is.
	ValidationLenient
)

// FieldSpec is one declarative, possibly nested key segment.
//
// The populated members select the variant:
//   - only Name: bare field matched by a default charset
//   - Name+Expr: field matched by the caller-supplied pattern, unescaped
//   - Name+Fields: group capturing the concatenation of its children
//
// Setting both Expr and Fields is rejected at compile time.
type FieldSpec struct {
	// Name is the capture field name, a valid identifier.
	// Names starting with "_" are internal and absent from results.
	Name string `json:"name" yaml:"name"`
	// Expr is a caller-supplied pattern overriding the default charset.
	Expr string `json:"expr,omitempty" yaml:"expr,omitempty"`
	// Fields are nested child segments concatenated without separator.
	Fields []FieldSpec `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Spec declares one complete key layout.
type Spec struct {
	// Dirs are directory-level segments, joined by the separator.
	Dirs []FieldSpec `json:"dirs,omitempty" yaml:"dirs,omitempty"`
	// Partitions are `name=value` segments following the directories.
	Partitions []FieldSpec `json:"partitions,omitempty" yaml:"partitions,omitempty"`
	// File are filename segments concatenated without separator, required.
	File []FieldSpec `json:"file" yaml:"file"`
}

// Options controls parser compilation and validation behavior.
type Options struct {
	// Separator is the key component delimiter. Empty value defaults to "/".
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
	// PartitionDelimiter joins a partition name and its value.
	// Empty value defaults to "=".
	PartitionDelimiter string `json:"partition_delimiter,omitempty" yaml:"partition_delimiter,omitempty"`
	// Validation is the value validation mode, strict by default.
	Validation Validation `json:"validation,omitempty" yaml:"validation,omitempty"`
	// Absolute requires keys to start with the separator.
	Absolute bool `json:"absolute,omitempty" yaml:"absolute,omitempty"`
}

// Fields is a flat field-name to matched-substring mapping.
type Fields map[string]string

// Field declares a bare segment matched by the default charset.
func Field(name string) FieldSpec {
	return FieldSpec{Name: name}
}

// FieldExpr declares a segment matched by expr.
//
// The expression is spliced into the compiled pattern verbatim; the
// caller is responsible for its correctness. Use Literal for
// pre-escaped literal text.
func FieldExpr(name, expr string) FieldSpec {
	return FieldSpec{Name: name, Expr: expr}
}

// FieldGroup declares a group capturing the concatenation of its
// children while each child stays separately addressable.
func FieldGroup(name string, fields ...FieldSpec) FieldSpec {
	return FieldSpec{Name: name, Fields: fields}
}

// UnmarshalYAML accepts either a bare scalar (bare field name) or a
// mapping with name/expr/fields keys.
func (f *FieldSpec) UnmarshalYAML(data []byte) error {
	var name string
	if err := yaml.Unmarshal(data, &name); err == nil {
		*f = FieldSpec{Name: name}
		return nil
	}

	// plain alias drops the method set to avoid unmarshal recursion
	type plain FieldSpec

	var raw plain
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	*f = FieldSpec(raw)
	return nil
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.Separator == "" {
		opts.Separator = "/"
	}

	if opts.PartitionDelimiter == "" {
		opts.PartitionDelimiter = "="
	}

	if !opts.Validation.valid() {
		opts.Validation = ValidationStrict
	}
}

// valid reports whether validation mode value is supported.
func (v Validation) valid() bool {
	return v == ValidationStrict || v == ValidationLenient
}
