// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/keyparse

package keyparse

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Parser extracts fields from keys matching one compiled layout.
type Parser struct {
	re        *regexp.Regexp
	source    string
	separator string
	names     []string
	absolute  bool
	strict    bool
}

// NewParser compiles one layout spec into an immutable parser.
func NewParser(spec Spec, opts Options) (*Parser, error) {
	opts.applyDefaults()

	cs, err := compileSpec(spec, opts)
	if err != nil {
		return nil, err
	}

	sub := cs.re.SubexpNames()
	names := make([]string, 0, len(sub))
	for _, name := range sub {
		if name == "" || internalField(name) {
			continue
		}

		names = append(names, name)
	}

	return &Parser{
		re:        cs.re,
		source:    cs.source,
		separator: opts.Separator,
		names:     names,
		absolute:  opts.Absolute,
		strict:    opts.Validation == ValidationStrict,
	}, nil
}

// Parse matches one key fully and extracts all declared fields.
//
// A group field and its children are independent flat entries in the
// result. Internal "_" fields are captured for pattern structure and
// removed before returning. In strict validation mode any captured value
// containing the separator is an error.
func (p *Parser) Parse(key string) (Fields, error) {
	if err := p.checkPrefix(key); err != nil {
		return nil, err
	}

	m := p.re.FindStringSubmatch(key)
	if m == nil {
		return nil, fmt.Errorf("%w: %q did not match %s key pattern %q",
			ErrNoMatch, key, p.form(), p.source)
	}

	groups := make(Fields, len(m)-1)
	for i, name := range p.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}

		groups[name] = m[i]
	}

	if p.strict {
		for _, val := range groups {
			if strings.Contains(val, p.separator) {
				return nil, fmt.Errorf("%w %q: %v", ErrSeparatorInValue, p.separator, groups)
			}
		}
	}

	for name := range groups {
		if internalField(name) {
			delete(groups, name)
		}
	}

	return groups, nil
}

// Pattern returns the assembled pattern source without full-match anchors.
func (p *Parser) Pattern() string {
	return p.source
}

// FieldNames returns declared non-internal field names in pattern order.
func (p *Parser) FieldNames() []string {
	return slices.Clone(p.names)
}

// checkPrefix validates leading-separator agreement with the configured form.
func (p *Parser) checkPrefix(key string) error {
	hasPrefix := strings.HasPrefix(key, p.separator)
	if p.absolute && !hasPrefix {
		return fmt.Errorf("%w: %q must start with %q for absolute keys",
			ErrPrefixMismatch, key, p.separator)
	}

	if !p.absolute && hasPrefix {
		return fmt.Errorf("%w: %q must not start with %q for relative keys",
			ErrPrefixMismatch, key, p.separator)
	}

	return nil
}

// form returns key form name for diagnostics.
func (p *Parser) form() string {
	if p.absolute {
		return "absolute"
	}

	return "relative"
}
