// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

/*
Package keyparse extracts named fields from path-like keys that encode
metadata positionally, e.g. `env/stage/table/year=2019/month=11/file-20191102.csv`.

A key layout is declared once as directories, `name=value` partitions and
filename segments. The layout compiles into a single anchored pattern at
construction time; each Parse call matches one key against the compiled
pattern and returns a flat field-name to value mapping.

Basic flow:
  - declare a layout (`Spec` with `Field` / `FieldExpr` / `FieldGroup`)
  - compile parser (`NewParser`)
  - extract fields (`Parse`)

For multiple layouts declared in YAML, use `Set`:
  - parse layout files (`ParseLayouts` / `LoadLayoutsFile`)
  - compile all layouts (`NewSet` / `LoadSetFile`)
  - dispatch by name (`Parse`) or probe in declared order (`ParseAny`)

Compiled parsers and sets are immutable and safe for concurrent use.
Field names starting with "_" are internal: they consume literal filler
text (infixes between filename segments) and never appear in results.
*/
package keyparse
