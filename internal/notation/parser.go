// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notation implements the keeper:// notation micro-language used to
// address one value nested inside a decrypted vault record:
//
//	["keeper://"] <record-uid-or-title> "/" <selector> ["/" <parameter>] ["[" index1 "]"] ["[" index2 "]"]
//
// Parsing and resolution are pure functions over their inputs: no shared
// state is touched, so a [Resolver] is safe for concurrent use.
package notation

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Prefix is the optional scheme prefix, matched case-insensitively.
const Prefix = "keeper://"

// Selector tokens. The set is closed and matched case-sensitively; anything
// else is a parse error.
const (
	SelectorType        = "type"
	SelectorTitle       = "title"
	SelectorNotes       = "notes"
	SelectorField       = "field"
	SelectorCustomField = "custom_field"
	SelectorFile        = "file"
)

// Token is one parsed fragment: Raw is the substring exactly as it appeared
// in the notation, Text its unescaped value.
type Token struct {
	Raw  string
	Text string
}

// Section is the parse result of one grammar section. StartPos and EndPos
// are byte offsets into the source string, kept for error messages.
type Section struct {
	Name      string
	IsPresent bool
	StartPos  int
	EndPos    int
	Text      *Token

	// Parameter and the indices are populated on the selector section only,
	// and only for the long selectors (field, custom_field, file).
	Parameter *Token
	Index1    *Token
	Index2    *Token
}

// Notation is a fully parsed notation string. A successful parse never has a
// footer: trailing text after the last valid section is a parse error.
type Notation struct {
	// Source is the notation text after optional base64url decoding.
	Source string

	Prefix   Section
	Record   Section
	Selector Section
}

// Parse parses a notation string with legacy index reinterpretation
// disabled. See [Resolver] for the legacy-mode variant.
func Parse(text string) (*Notation, error) {
	return parse(text, false)
}

func parse(source string, legacyMode bool) (*Notation, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty notation", ErrMalformedNotation)
	}

	// A notation without any slash cannot be valid as-is; it may be the
	// base64url form produced by callers that need URL-safe references.
	if !strings.Contains(source, "/") {
		if decoded, err := base64.RawURLEncoding.DecodeString(source); err == nil &&
			utf8.Valid(decoded) && strings.Contains(string(decoded), "/") {
			source = string(decoded)
		}
	}

	n := &Notation{Source: source}
	pos := 0

	n.Prefix = Section{Name: "prefix"}
	if len(source) >= len(Prefix) && strings.EqualFold(source[:len(Prefix)], Prefix) {
		prefix := source[:len(Prefix)]
		n.Prefix.IsPresent = true
		n.Prefix.EndPos = len(Prefix) - 1
		n.Prefix.Text = &Token{Raw: prefix, Text: prefix}
		pos = len(Prefix)
	}

	record, next, err := parseToken(source, pos, "/")
	if err != nil {
		return nil, err
	}
	if record.Raw == "" {
		return nil, fmt.Errorf("%w: empty record token at position %d", ErrMalformedNotation, pos)
	}
	n.Record = Section{Name: "record", IsPresent: true, StartPos: pos, EndPos: next - 1, Text: record}

	if next >= len(source) {
		return nil, fmt.Errorf("%w: missing selector at position %d", ErrMalformedNotation, next)
	}
	pos = next + 1

	selector, next, err := parseToken(source, pos, "/[")
	if err != nil {
		return nil, err
	}
	n.Selector = Section{Name: "selector", IsPresent: true, StartPos: pos, EndPos: next - 1, Text: selector}

	switch selector.Text {
	case SelectorType, SelectorTitle, SelectorNotes:
		if next < len(source) {
			return nil, fmt.Errorf("%w: selector %q takes no parameter, unexpected text at position %d",
				ErrMalformedNotation, selector.Text, next)
		}
		return n, nil
	case SelectorField, SelectorCustomField, SelectorFile:
		// long selectors continue below
	default:
		return nil, fmt.Errorf("%w %q at position %d", ErrAmbiguousSelector, selector.Text, pos)
	}

	if next >= len(source) || source[next] != '/' {
		return nil, fmt.Errorf("%w: selector %q requires a parameter at position %d",
			ErrMalformedNotation, selector.Text, next)
	}
	pos = next + 1

	parameter, next, err := parseToken(source, pos, "/[")
	if err != nil {
		return nil, err
	}
	if parameter.Raw == "" {
		return nil, fmt.Errorf("%w: empty parameter at position %d", ErrMalformedNotation, pos)
	}
	if next < len(source) && source[next] == '/' {
		return nil, fmt.Errorf("%w: unexpected text after parameter at position %d", ErrMalformedNotation, next)
	}
	n.Selector.Parameter = parameter
	n.Selector.EndPos = next - 1

	if selector.Text == SelectorFile {
		if next < len(source) {
			return nil, fmt.Errorf("%w: selector file takes no index at position %d", ErrMalformedNotation, next)
		}
		return n, nil
	}

	for count := 0; next < len(source); count++ {
		if count == 2 {
			return nil, fmt.Errorf("%w: unexpected text after indices at position %d", ErrMalformedNotation, next)
		}
		if source[next] != '[' {
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrMalformedNotation, source[next], next)
		}

		pos = next + 1
		index, end, err := parseToken(source, pos, "[]")
		if err != nil {
			return nil, err
		}
		if end >= len(source) || source[end] != ']' {
			return nil, fmt.Errorf("%w: unterminated index at position %d", ErrMalformedNotation, pos-1)
		}
		if count == 0 {
			n.Selector.Index1 = index
		} else {
			n.Selector.Index2 = index
		}
		next = end + 1
		n.Selector.EndPos = end
	}

	if idx := n.Selector.Index1; idx != nil && !isNumeric(idx.Text) {
		// Older notation strings omitted the numeric index and put the
		// property name into the first bracket pair. Reinterpreting that is
		// an explicit opt-in; by default it is a hard parse error.
		if !legacyMode {
			return nil, fmt.Errorf("%w: index %q is not numeric at position %d",
				ErrMalformedNotation, idx.Text, n.Selector.EndPos)
		}
		if n.Selector.Index2 != nil {
			return nil, fmt.Errorf("%w: legacy property index %q cannot be combined with a second index",
				ErrMalformedNotation, idx.Text)
		}
		n.Selector.Index2 = idx
		n.Selector.Index1 = &Token{Raw: "", Text: ""}
	}

	if idx := n.Selector.Index2; idx != nil && idx.Text == "" {
		return nil, fmt.Errorf("%w: empty property index at position %d", ErrMalformedNotation, n.Selector.EndPos)
	}

	return n, nil
}

// parseToken scans source from pos until the first unescaped delimiter or
// end of string. It returns the token and the position of the delimiter
// (or len(source) when none was found). The only legal escape sequences are
// \/ \[ \] and \\; a backslash before any other byte is a parse error.
func parseToken(source string, pos int, delimiters string) (*Token, int, error) {
	var text strings.Builder
	i := pos
	for i < len(source) {
		c := source[i]
		if c == '\\' {
			if i+1 >= len(source) || !strings.ContainsRune(`/[]\`, rune(source[i+1])) {
				return nil, 0, fmt.Errorf("%w: invalid escape sequence at position %d", ErrMalformedNotation, i)
			}
			text.WriteByte(source[i+1])
			i += 2
			continue
		}
		if strings.IndexByte(delimiters, c) >= 0 {
			break
		}
		text.WriteByte(c)
		i++
	}
	return &Token{Raw: source[pos:i], Text: text.String()}, i, nil
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// escapeToken renders a token text back into its escaped wire form.
func escapeToken(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(`/[]\`, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// String renders the parsed notation back into canonical text form. Escaping
// is re-applied, so Parse(n.String()) reproduces the same section set.
func (n *Notation) String() string {
	var b strings.Builder
	if n.Prefix.IsPresent {
		b.WriteString(Prefix)
	}
	b.WriteString(escapeToken(n.Record.Text.Text))
	b.WriteByte('/')
	b.WriteString(n.Selector.Text.Text)
	if n.Selector.Parameter != nil {
		b.WriteByte('/')
		b.WriteString(escapeToken(n.Selector.Parameter.Text))
	}
	if n.Selector.Index1 != nil {
		b.WriteByte('[')
		b.WriteString(n.Selector.Index1.Text)
		b.WriteByte(']')
	}
	if n.Selector.Index2 != nil {
		b.WriteByte('[')
		b.WriteString(escapeToken(n.Selector.Index2.Text))
		b.WriteByte(']')
	}
	return b.String()
}
