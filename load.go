// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// supportedLayoutVersion is the only layout document version accepted.
const supportedLayoutVersion = 1

// ParseLayouts parses a versioned YAML layout document from reader.
//
// Document form:
//
//	version: 1
//	layouts:
//	  - name: daily-exports
//	    dirs: [environment, table]
//	    partitions:
//	      - name: year
//	        expr: '\d{4}'
//	    file:
//	      - filename
//	    options:
//	      absolute: true
func ParseLayouts(r io.Reader) ([]Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read layouts: %w", err)
	}

	var doc LayoutFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	if doc.Version != supportedLayoutVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidLayout, doc.Version)
	}

	if len(doc.Layouts) == 0 {
		return nil, fmt.Errorf("%w: no layouts declared", ErrInvalidLayout)
	}

	return doc.Layouts, nil
}

// ParseLayoutsString parses layouts from string input.
func ParseLayoutsString(src string) ([]Layout, error) {
	return ParseLayouts(strings.NewReader(src))
}

// LoadLayoutsFile reads and parses layouts from a file.
func LoadLayoutsFile(path string) ([]Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layouts file: %w", err)
	}
	defer func() { _ = f.Close() }()

	layouts, err := ParseLayouts(f)
	if err != nil {
		return nil, fmt.Errorf("parse layouts file %q: %w", path, err)
	}

	return layouts, nil
}
