// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import "fmt"

// Layout is one named key layout with its parser options.
type Layout struct {
	// Name identifies the layout inside a set.
	Name string `json:"name" yaml:"name"`
	// Spec declares the layout segments.
	Spec `json:",inline" yaml:",inline"`
	// Options controls compilation and validation behavior.
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// LayoutFile is a versioned YAML layout document.
type LayoutFile struct {
	// Version is the layout document format version.
	Version int `json:"version" yaml:"version"`
	// Layouts are declared layouts in probe order.
	Layouts []Layout `json:"layouts" yaml:"layouts"`
}

// namedParser pairs one compiled parser with its layout name.
type namedParser struct {
	parser *Parser
	name   string
}

// Set is an ordered collection of compiled named layouts.
//
// All layouts compile eagerly at construction. A set is immutable and
// safe for concurrent use.
type Set struct {
	index   map[string]*Parser
	parsers []namedParser
}

// NewSet compiles layouts into a set.
//
// Layout names must be non-empty and unique; every layout must compile.
func NewSet(layouts ...Layout) (*Set, error) {
	if len(layouts) == 0 {
		return nil, fmt.Errorf("%w: no layouts declared", ErrInvalidLayout)
	}

	s := &Set{
		index:   make(map[string]*Parser, len(layouts)),
		parsers: make([]namedParser, 0, len(layouts)),
	}

	for _, layout := range layouts {
		if layout.Name == "" {
			return nil, fmt.Errorf("%w: empty layout name", ErrInvalidLayout)
		}

		if _, ok := s.index[layout.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate layout name %q", ErrInvalidLayout, layout.Name)
		}

		p, err := NewParser(layout.Spec, layout.Options)
		if err != nil {
			return nil, fmt.Errorf("layout %q: %w", layout.Name, err)
		}

		s.index[layout.Name] = p
		s.parsers = append(s.parsers, namedParser{parser: p, name: layout.Name})
	}

	return s, nil
}

// LoadSetFile loads a YAML layout file and compiles all its layouts.
func LoadSetFile(path string) (*Set, error) {
	layouts, err := LoadLayoutsFile(path)
	if err != nil {
		return nil, err
	}

	return NewSet(layouts...)
}

// Parser returns the compiled parser for one layout name.
func (s *Set) Parser(name string) (*Parser, bool) {
	p, ok := s.index[name]
	return p, ok
}

// Parse extracts fields from key using the named layout.
func (s *Set) Parse(name, key string) (Fields, error) {
	p, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}

	return p.Parse(key)
}

// ParseAny probes layouts in declared order and returns the first
// successful extraction together with its layout name.
func (s *Set) ParseAny(key string) (string, Fields, error) {
	for i := range s.parsers {
		fields, err := s.parsers[i].parser.Parse(key)
		if err != nil {
			continue
		}

		return s.parsers[i].name, fields, nil
	}

	return "", nil, fmt.Errorf("%w: %q", ErrNoLayoutMatched, key)
}

// Names returns layout names in declared probe order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.parsers))
	for i := range s.parsers {
		names = append(names, s.parsers[i].name)
	}

	return names
}
