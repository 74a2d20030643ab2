// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notation

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-keeper-sdk/models"
)

// Resolver parses notation strings and resolves them against a decrypted
// record snapshot supplied by the caller. It holds no mutable state and is
// safe for concurrent use.
type Resolver struct {
	legacyMode bool
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithLegacyMode enables reinterpretation of a non-numeric first index as a
// property index (old notation strings omitted the numeric index). New
// callers should not need this; it exists for compatibility only.
func WithLegacyMode() Option {
	return func(r *Resolver) { r.legacyMode = true }
}

// NewResolver constructs a Resolver. Legacy index handling is off unless
// [WithLegacyMode] is given.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse parses text honoring the resolver's legacy-mode setting.
func (r *Resolver) Parse(text string) (*Notation, error) {
	return parse(text, r.legacyMode)
}

// Resolve parses text and resolves it against records.
//
// The returned value is, depending on the notation:
//   - a string for the short selectors (type, title, notes);
//   - a *models.FileRef for the file selector (content is fetched
//     separately, keyed by FileRef.UID);
//   - the full value array ([]any) for the empty-bracket index form;
//   - a single element (scalar or mapping) or one property of it otherwise.
//
// Callers that need a single value regardless of field arity must index [0]
// explicitly.
func (r *Resolver) Resolve(records []*models.Record, text string) (any, error) {
	n, err := r.Parse(text)
	if err != nil {
		return nil, err
	}
	return r.ResolveParsed(records, n)
}

// ResolveParsed resolves an already-parsed notation against records.
func (r *Resolver) ResolveParsed(records []*models.Record, n *Notation) (any, error) {
	record, err := findRecord(records, n.Record.Text.Text)
	if err != nil {
		return nil, err
	}

	switch n.Selector.Text.Text {
	case SelectorType:
		return record.Type, nil
	case SelectorTitle:
		return record.Title, nil
	case SelectorNotes:
		return record.Notes, nil
	case SelectorFile:
		file, ok := record.GetFile(n.Selector.Parameter.Text)
		if !ok {
			return nil, fmt.Errorf("%w: record %s has no file %q",
				ErrFileNotFound, record.RecordUID, n.Selector.Parameter.Text)
		}
		return file, nil
	case SelectorField:
		field, ok := record.GetField(n.Selector.Parameter.Text)
		return r.resolveField(record, n, field, ok)
	case SelectorCustomField:
		field, ok := record.GetCustomField(n.Selector.Parameter.Text)
		return r.resolveField(record, n, field, ok)
	}

	// unreachable: parse rejects everything outside the closed selector set
	return nil, fmt.Errorf("%w %q", ErrAmbiguousSelector, n.Selector.Text.Text)
}

func (r *Resolver) resolveField(record *models.Record, n *Notation, field *models.FieldValue, ok bool) (any, error) {
	key := n.Selector.Parameter.Text
	if !ok {
		return nil, fmt.Errorf("%w: record %s has no %s %q",
			ErrFieldNotFound, record.RecordUID, n.Selector.Text.Text, key)
	}

	index1, index2 := n.Selector.Index1, n.Selector.Index2

	// [] with no property index means the whole value array, whatever its
	// length.
	if index1 != nil && index1.Text == "" && index2 == nil {
		return field.Value, nil
	}

	i := 0
	if index1 != nil && index1.Text != "" {
		// parse already guaranteed a pure-digit token
		i, _ = strconv.Atoi(index1.Text)
	}
	if i < 0 || i >= len(field.Value) {
		return nil, fmt.Errorf("%w: index %d outside valid range [0,%d) for %s %q",
			ErrIndexOutOfRange, i, len(field.Value), n.Selector.Text.Text, key)
	}
	element := field.Value[i]

	if index2 == nil {
		return element, nil
	}

	mapping, ok := element.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: element %d of %s %q is not an object",
			ErrPropertyNotFound, i, n.Selector.Text.Text, key)
	}
	value, ok := mapping[index2.Text]
	if !ok {
		return nil, fmt.Errorf("%w: element %d of %s %q has no property %q",
			ErrPropertyNotFound, i, n.Selector.Text.Text, key, index2.Text)
	}
	return value, nil
}

// findRecord resolves the record token: an exact UID match wins, then an
// exact title match. A title shared by several records cannot be resolved
// unambiguously and is reported as not found.
func findRecord(records []*models.Record, token string) (*models.Record, error) {
	for _, rec := range records {
		if rec.RecordUID == token {
			return rec, nil
		}
	}

	var match *models.Record
	for _, rec := range records {
		if rec.Title != token {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: multiple records match title %q", ErrRecordNotFound, token)
		}
		match = rec
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q matches no record uid or title", ErrRecordNotFound, token)
	}
	return match, nil
}
