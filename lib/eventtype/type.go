// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package eventtype

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bureau-foundation/eventtype/lib/codec"
)

// Type identifies a Matrix event type: the wire string placed in an
// event's "type" field together with the class it is processed as.
//
// Type is an immutable value. Obtain one from the package constants,
// [Find], [FindWithHint], or by decoding; the zero value is the
// Unknown-classed empty string. Values for the same string obtained
// through the registry are equal under ==. A value produced by
// [Type.WithClass] compares unequal to the canonical one whenever the
// class differs.
type Type struct {
	raw   string
	class Class

	// all marks the All sentinel so that no wire string can collide
	// with it.
	all bool
}

// String returns the wire string (e.g., "m.room.message").
func (t Type) String() string { return t.raw }

// Raw returns the wire string. Identical to String; provided for call
// sites that read better with an explicit accessor.
func (t Type) Raw() string { return t.raw }

// Class returns how this occurrence of the type is processed.
func (t Type) Class() Class { return t.class }

// Repr returns the wire string followed by the class, for logs and
// test failure messages: "m.room.message (message)".
func (t Type) Repr() string {
	if t.all {
		return t.raw + " (all)"
	}
	return t.raw + " (" + t.class.String() + ")"
}

// IsState reports whether the type is classed as room state.
func (t Type) IsState() bool { return t.class == State }

// IsMessage reports whether the type is classed as a timeline message.
func (t Type) IsMessage() bool { return t.class == Message }

// IsEphemeral reports whether the type is classed as an ephemeral
// room signal.
func (t Type) IsEphemeral() bool { return t.class == Ephemeral }

// IsAccountData reports whether the type is classed as account data.
func (t Type) IsAccountData() bool { return t.class == AccountData }

// IsToDevice reports whether the type is classed as a to-device
// message.
func (t Type) IsToDevice() bool { return t.class == ToDevice }

// IsAll reports whether t is the All sentinel.
func (t Type) IsAll() bool { return t.all }

// IsCustom reports whether the wire string lies outside the "m."
// namespace reserved for the Matrix specification.
func (t Type) IsCustom() bool { return !t.all && !strings.HasPrefix(t.raw, "m.") }

// IsCall reports whether the type belongs to the VoIP "m.call.*" family.
func (t Type) IsCall() bool { return strings.HasPrefix(t.raw, "m.call.") }

// Matches reports whether an event of type other passes a filter on t.
// All matches everything; otherwise the wire strings must be equal,
// regardless of class.
func (t Type) Matches(other Type) bool {
	if t.all || other.all {
		return true
	}
	return t.raw == other.raw
}

// WithClass returns a copy of t carrying class. The registry is not
// consulted or modified: Find(t.String()) keeps returning the
// canonical class.
func (t Type) WithClass(class Class) Type {
	t.class = class
	return t
}

// Serialize returns the value placed in an outgoing event's "type"
// field.
func (t Type) Serialize() string { return t.raw }

// MarshalText implements encoding.TextMarshaler. JSON encodes Type as
// a bare string through this method, including as a map key.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by interning the
// text in the default registry. It never fails.
func (t *Type) UnmarshalText(data []byte) error {
	*t = Find(string(data))
	return nil
}

// UnmarshalJSON accepts only a JSON string. Numbers, booleans, objects,
// arrays and null fail with an error wrapping ErrMalformedType.
func (t *Type) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedType, err)
	}
	parsed, err := Deserialize(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalCBOR encodes the wire string as a CBOR text string.
func (t Type) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(t.raw)
}

// UnmarshalCBOR accepts only a CBOR text string. Any other item fails
// with an error wrapping ErrMalformedType.
func (t *Type) UnmarshalCBOR(data []byte) error {
	var value any
	if err := codec.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedType, err)
	}
	parsed, err := Deserialize(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
