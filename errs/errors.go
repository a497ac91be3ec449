// Package errs defines the sentinel errors returned by the n2b packages.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") so callers can
// match them with errors.Is while still getting a descriptive message.
// Category errors (ErrEncoding, ErrIO, ErrConsistency) are wrapped together
// with the specific sentinel, so both match:
//
//	if errors.Is(err, errs.ErrEncoding) { ... }     // any encoding problem
//	if errors.Is(err, errs.ErrEmbeddedNUL) { ... }  // the specific cause
package errs

import "errors"

// Categories.
var (
	// ErrEncoding reports a name that cannot be represented in the name-group table.
	ErrEncoding = errors.New("name-group encoding error")
	// ErrIO reports a rejected seek, write or read on the destination or source stream.
	ErrIO = errors.New("name-group i/o error")
	// ErrConsistency reports a table whose offsets disagree with the base offset in use.
	ErrConsistency = errors.New("name-group consistency error")
)

// Encoding errors.
var (
	ErrEmbeddedNUL    = errors.New("name contains an embedded NUL byte")
	ErrInvalidUTF8    = errors.New("name is not valid UTF-8")
	ErrOffsetOverflow = errors.New("name-group offset exceeds 32-bit range")
	ErrTooManyNames   = errors.New("too many names")
)

// Decoding errors.
var (
	ErrTruncated         = errors.New("name-group data truncated")
	ErrInvalidOffset     = errors.New("name offset outside name-group section")
	ErrMissingTerminator = errors.New("name is not NUL-terminated")
	ErrDuplicateName     = errors.New("duplicate name in name-group table")
	ErrInvalidNameCount  = errors.New("invalid name count")
)

// Option errors.
var (
	ErrInvalidOption = errors.New("invalid option")
)
