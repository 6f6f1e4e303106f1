// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package eventtype

import "errors"

var (
	// ErrInvalidClassification is returned when a class string is not
	// one of the six lowercase class names, or when an out-of-range
	// Class value is marshaled.
	ErrInvalidClassification = errors.New("eventtype: invalid classification")

	// ErrMalformedType is returned when a wire value that should hold
	// an event type is not a string.
	ErrMalformedType = errors.New("eventtype: malformed event type")

	// ErrConflictingClass is returned by Register when the event type
	// is already interned with a different class.
	ErrConflictingClass = errors.New("eventtype: conflicting classification")
)
