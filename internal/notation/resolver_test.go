// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-keeper-sdk/models"
)

func testRecords() []*models.Record {
	return []*models.Record{
		{
			RecordUID: "UID1",
			Title:     "Prod DB",
			Type:      "login",
			Notes:     "rotate quarterly",
			Fields: []models.FieldValue{
				{Type: "login", Value: []any{"alice"}},
				{Type: "url", Value: []any{"https://a.example", "https://b.example"}},
			},
			Custom: []models.FieldValue{
				{Type: "phone", Label: "phone", Value: []any{
					map[string]any{"number": "555-1111", "type": "Work"},
					map[string]any{"number": "555-2222", "type": "Mobile"},
				}},
			},
			Files: []models.FileRef{
				{UID: "FUID1", Name: "cert.pem", Title: "TLS cert"},
			},
		},
		{RecordUID: "UID2", Title: "Duplicate", Type: "login"},
		{RecordUID: "UID3", Title: "Duplicate", Type: "login"},
	}
}

func TestResolve_ShortSelectors(t *testing.T) {
	r := NewResolver()
	records := testRecords()

	got, err := r.Resolve(records, "keeper://UID1/type")
	require.NoError(t, err)
	assert.Equal(t, "login", got)

	got, err = r.Resolve(records, "UID1/title")
	require.NoError(t, err)
	assert.Equal(t, "Prod DB", got)

	got, err = r.Resolve(records, "UID1/notes")
	require.NoError(t, err)
	assert.Equal(t, "rotate quarterly", got)
}

func TestResolve_FieldDefaultsToFirstElement(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve(testRecords(), "keeper://UID1/field/login")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestResolve_EmptyBracketsReturnWholeArray(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve(testRecords(), "UID1/field/url[]")
	require.NoError(t, err)
	assert.Equal(t, []any{"https://a.example", "https://b.example"}, got)
}

func TestResolve_ExplicitIndex(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve(testRecords(), "UID1/field/url[1]")
	require.NoError(t, err)
	assert.Equal(t, "https://b.example", got)
}

func TestResolve_PropertyIndex(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve(testRecords(), "UID1/custom_field/phone[1][number]")
	require.NoError(t, err)
	assert.Equal(t, "555-2222", got)

	// without an explicit element index the first element is used
	got, err = r.Resolve(testRecords(), "UID1/custom_field/phone[0][number]")
	require.NoError(t, err)
	assert.Equal(t, "555-1111", got)
}

func TestResolve_IndexOutOfRange(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve(testRecords(), "UID1/field/login[5]")
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "[0,1)")
}

func TestResolve_PropertyErrors(t *testing.T) {
	r := NewResolver()

	// scalar element has no properties
	_, err := r.Resolve(testRecords(), "UID1/field/login[0][missing]")
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	// object element without the requested key
	_, err = r.Resolve(testRecords(), "UID1/custom_field/phone[0][fax]")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestResolve_FileSelector(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve(testRecords(), "UID1/file/cert.pem")
	require.NoError(t, err)

	file, ok := got.(*models.FileRef)
	require.True(t, ok, "file selector must yield a *models.FileRef, got %T", got)
	assert.Equal(t, "FUID1", file.UID)

	// title also matches
	got, err = r.Resolve(testRecords(), "UID1/file/TLS cert")
	require.NoError(t, err)
	assert.Equal(t, "FUID1", got.(*models.FileRef).UID)

	_, err = r.Resolve(testRecords(), "UID1/file/missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestResolve_RecordLookup(t *testing.T) {
	r := NewResolver()
	records := testRecords()

	// title lookup works when unique
	got, err := r.Resolve(records, "Prod DB/type")
	require.NoError(t, err)
	assert.Equal(t, "login", got)

	// ambiguous title cannot be resolved
	_, err = r.Resolve(records, "Duplicate/type")
	require.ErrorIs(t, err, ErrRecordNotFound)
	assert.Contains(t, err.Error(), "multiple records")

	// unknown token
	_, err = r.Resolve(records, "nope/type")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestResolve_UIDWinsOverTitle(t *testing.T) {
	records := []*models.Record{
		{RecordUID: "X", Title: "other", Type: "uid-match"},
		{RecordUID: "Y", Title: "X", Type: "title-match"},
	}

	got, err := NewResolver().Resolve(records, "X/type")
	require.NoError(t, err)
	assert.Equal(t, "uid-match", got)
}

func TestResolve_FieldNotFound(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve(testRecords(), "UID1/field/totp")
	assert.ErrorIs(t, err, ErrFieldNotFound)

	_, err = r.Resolve(testRecords(), "UID1/custom_field/login")
	assert.ErrorIs(t, err, ErrFieldNotFound, "standard fields must not leak into custom_field")
}

func TestResolve_LegacyMode(t *testing.T) {
	legacy := NewResolver(WithLegacyMode())

	got, err := legacy.Resolve(testRecords(), "UID1/custom_field/phone[number]")
	require.NoError(t, err)
	assert.Equal(t, "555-1111", got, "legacy property index reads element 0")

	// default resolver rejects the same string
	_, err = NewResolver().Resolve(testRecords(), "UID1/custom_field/phone[number]")
	assert.ErrorIs(t, err, ErrMalformedNotation)
}
