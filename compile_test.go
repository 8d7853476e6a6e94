// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParserRequiresFileSpecs(t *testing.T) {
	t.Parallel()

	_, err := NewParser(Spec{Dirs: []FieldSpec{Field("one")}}, Options{})
	require.ErrorIs(t, err, ErrMissingFileSpecs)
}

func TestNewParserRejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	_, err := NewParser(Spec{
		Dirs: []FieldSpec{Field("a")},
		File: []FieldSpec{Field("a")},
	}, Options{})
	require.ErrorIs(t, err, ErrDuplicateFieldName)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestNewParserRejectsNestedDuplicateNames(t *testing.T) {
	t.Parallel()

	_, err := NewParser(Spec{
		Dirs: []FieldSpec{
			FieldGroup("outer", FieldExpr("inner", `\d`)),
		},
		File: []FieldSpec{Field("inner")},
	}, Options{})
	require.ErrorIs(t, err, ErrDuplicateFieldName)
}

func TestNewParserRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "1", "9field", "with-dash", "with.dot", "sp ace"} {
		_, err := NewParser(Spec{File: []FieldSpec{Field(name)}}, Options{})
		require.ErrorIs(t, err, ErrInvalidFieldName, "name %q must be rejected", name)
	}
}

func TestNewParserRejectsExprWithNestedFields(t *testing.T) {
	t.Parallel()

	bad := FieldSpec{
		Name:   "both",
		Expr:   `\d+`,
		Fields: []FieldSpec{Field("child")},
	}

	_, err := NewParser(Spec{File: []FieldSpec{bad}}, Options{})
	require.ErrorIs(t, err, ErrInvalidFieldSpec)
	assert.Contains(t, err.Error(), `"both"`)
}

func TestPatternAssembly(t *testing.T) {
	t.Parallel()

	p, err := NewParser(Spec{
		Dirs:       []FieldSpec{Field("one")},
		Partitions: []FieldSpec{FieldExpr("year", `\d{4}`)},
		File:       []FieldSpec{Field("filename")},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, `(?P<one>\w+)/year=(?P<year>\d{4})/(?P<filename>[\w.]+)`, p.Pattern())
}

func TestPatternAssemblyAbsolute(t *testing.T) {
	t.Parallel()

	p, err := NewParser(Spec{
		File: []FieldSpec{Field("filename")},
	}, Options{Absolute: true})
	require.NoError(t, err)

	assert.Equal(t, `/(?P<filename>[\w.]+)`, p.Pattern())
}

func TestPatternAssemblyNoDirsNoTrailingSeparator(t *testing.T) {
	t.Parallel()

	p, err := NewParser(Spec{
		File: []FieldSpec{Field("base"), Field("rest")},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, `(?P<base>[\w.]+)(?P<rest>[\w.]+)`, p.Pattern())
}

func TestPatternAssemblyEscapesSeparator(t *testing.T) {
	t.Parallel()

	p, err := NewParser(Spec{
		Dirs: []FieldSpec{Field("one")},
		File: []FieldSpec{Field("filename")},
	}, Options{Separator: "."})
	require.NoError(t, err)

	assert.Equal(t, `(?P<one>\w+)\.(?P<filename>[\w.]+)`, p.Pattern())
}

func TestPatternAssemblyNestedGroupUsesDirCharset(t *testing.T) {
	t.Parallel()

	// Documented quirk: bare leaves inside a filename group render through
	// the directory rule and match \w+, not the filename charset.
	p, err := NewParser(Spec{
		File: []FieldSpec{FieldGroup("file", Field("seven"))},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, `(?P<file>(?P<seven>\w+))`, p.Pattern())
}

func TestFieldNamesSkipInternal(t *testing.T) {
	t.Parallel()

	p, err := NewParser(Spec{
		Dirs: []FieldSpec{Field("one")},
		File: []FieldSpec{
			Field("base"),
			Literal("_1", "-"),
			FieldExpr("date", `\d{8}`),
		},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "base", "date"}, p.FieldNames())
}
