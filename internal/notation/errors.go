package notation

import (
	"errors"
	"fmt"
)

// Sentinel errors raised during notation parsing and resolution. All of them
// fail fast: no partial or best-effort value is ever returned alongside an
// error. Callers should match with [errors.Is].
var (
	// ErrMalformedNotation is returned for any grammar violation: bad escape,
	// unterminated index bracket, empty record token, trailing text after the
	// last valid section. The message carries the byte offset into the
	// notation string.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrAmbiguousSelector is returned when the selector token is not one of
	// type, title, notes, field, custom_field, file. It is a grammar
	// violation, so it also matches ErrMalformedNotation.
	ErrAmbiguousSelector = fmt.Errorf("%w: unknown selector", ErrMalformedNotation)

	// ErrRecordNotFound is returned when the record token matches no record
	// UID and no record title in the supplied record set.
	ErrRecordNotFound = errors.New("record not found")

	// ErrFieldNotFound is returned when no field in the targeted array has a
	// matching label or type.
	ErrFieldNotFound = errors.New("field not found")

	// ErrFileNotFound is returned when no attachment has a matching name or
	// title.
	ErrFileNotFound = errors.New("file not found")

	// ErrIndexOutOfRange is returned when a numeric index falls outside the
	// value array. The message names the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPropertyNotFound is returned when a property index targets an
	// element that is not a mapping or lacks the named key.
	ErrPropertyNotFound = errors.New("property not found")
)
