// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Record represents a single vault record after decryption.
// The record key has already been unwrapped and the data payload decrypted;
// all fields below are plaintext and must never be persisted or logged.
type Record struct {
	// RecordUID is the opaque identifier of the record, unique per vault.
	// Immutable once the record is created.
	RecordUID string

	// Title is the human-readable record title.
	Title string

	// Type is the record type name (e.g. "login", "databaseCredentials").
	Type string

	// Notes contains free-form user notes.
	Notes string

	// Fields holds the standard typed fields of the record, in server order.
	Fields []FieldValue

	// Custom holds user-defined fields. Same shape as Fields; the Label is
	// the primary way duplicates of the same type are told apart.
	Custom []FieldValue

	// Files lists attachment metadata. File content is fetched separately,
	// keyed by FileRef.UID.
	Files []FileRef

	// RecordKey is the unwrapped per-record AES-256 key. It is needed again
	// to unwrap file keys and to re-encrypt the record on update.
	RecordKey []byte

	// Revision is the server-side revision counter used on updates.
	Revision int64

	// RawJSON is the decrypted record data payload exactly as received.
	RawJSON []byte
}

// FieldValue is one entry of a record's fields or custom arrays.
//
// Value is always an array, even for single-valued fields; notation indexing
// semantics depend on this invariant. Elements are either plain scalars
// (string, number) or nested mappings (e.g. a phone value is
// {"number": ..., "ext": ..., "type": ...}).
type FieldValue struct {
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`
	Value []any  `json:"value"`
}

// FileRef describes one file attached to a record. It carries metadata only;
// the content is downloaded and decrypted on demand.
type FileRef struct {
	// UID identifies the file within the vault.
	UID string

	// Name is the stored file name, Title an optional display title.
	Name  string
	Title string

	// MimeType is the declared content type of the file.
	MimeType string

	// Size is the plaintext size in bytes.
	Size int64

	// FileKey is the unwrapped per-file AES-256 key.
	FileKey []byte

	// URL is the pre-signed download location for the encrypted content.
	URL string
}

// RecordData mirrors the JSON layout of a decrypted record payload.
type RecordData struct {
	Title  string       `json:"title"`
	Type   string       `json:"type"`
	Notes  string       `json:"notes,omitempty"`
	Fields []FieldValue `json:"fields"`
	Custom []FieldValue `json:"custom,omitempty"`
}

// FileData mirrors the JSON layout of a decrypted file metadata payload.
type FileData struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	LastModified int64  `json:"lastModified,omitempty"`
}

// NewRecordFromData builds a Record from a decrypted data payload.
func NewRecordFromData(uid string, recordKey, raw []byte, revision int64) (*Record, error) {
	var data RecordData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal record data: %w", err)
	}

	return &Record{
		RecordUID: uid,
		Title:     data.Title,
		Type:      data.Type,
		Notes:     data.Notes,
		Fields:    data.Fields,
		Custom:    data.Custom,
		RecordKey: recordKey,
		Revision:  revision,
		RawJSON:   raw,
	}, nil
}

// GetField returns the first standard field whose label or type equals key.
// Label wins over type so that duplicate types remain addressable.
func (r *Record) GetField(key string) (*FieldValue, bool) {
	return findField(r.Fields, key)
}

// GetCustomField is GetField over the custom field array.
func (r *Record) GetCustomField(key string) (*FieldValue, bool) {
	return findField(r.Custom, key)
}

// SetField upserts a standard field: if a field with the given type (and
// label, when non-empty) exists its value array is replaced in place,
// otherwise a new field is appended. The explicit lookup replaces the
// dynamic property-bag accessors some clients expose.
func (r *Record) SetField(fieldType, label string, value []any) {
	r.Fields = upsertField(r.Fields, fieldType, label, value)
}

// SetCustomField is SetField over the custom field array.
func (r *Record) SetCustomField(fieldType, label string, value []any) {
	r.Custom = upsertField(r.Custom, fieldType, label, value)
}

// GetFile returns the attachment whose name or title equals key.
func (r *Record) GetFile(key string) (*FileRef, bool) {
	for i := range r.Files {
		if r.Files[i].Name == key || r.Files[i].Title == key {
			return &r.Files[i], true
		}
	}
	return nil, false
}

// Data re-serializes the mutable record attributes into a data payload,
// ready for encryption under the record key on update.
func (r *Record) Data() ([]byte, error) {
	data := RecordData{
		Title:  r.Title,
		Type:   r.Type,
		Notes:  r.Notes,
		Fields: r.Fields,
		Custom: r.Custom,
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal record data: %w", err)
	}
	return raw, nil
}

func findField(fields []FieldValue, key string) (*FieldValue, bool) {
	for i := range fields {
		if fields[i].Label == key {
			return &fields[i], true
		}
	}
	for i := range fields {
		if fields[i].Type == key {
			return &fields[i], true
		}
	}
	return nil, false
}

func upsertField(fields []FieldValue, fieldType, label string, value []any) []FieldValue {
	for i := range fields {
		if fields[i].Type != fieldType {
			continue
		}
		if label != "" && fields[i].Label != label {
			continue
		}
		fields[i].Value = value
		if label != "" {
			fields[i].Label = label
		}
		return fields
	}
	return append(fields, FieldValue{Type: fieldType, Label: label, Value: value})
}
