// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package eventtype

import "fmt"

// Class describes how the protocol treats an event carrying a given
// type string. The set is closed: there is no way to construct a valid
// Class outside the six constants below.
type Class uint8

const (
	// Unknown is the class of event types the registry has no
	// classification for. It is the zero value.
	Unknown Class = iota

	// State events are room state, keyed by (type, state_key) and
	// delivered in the state and timeline sections of /sync.
	State

	// Message events are persistent, non-state timeline events.
	Message

	// AccountData events are per-user (global or per-room) account data.
	AccountData

	// Ephemeral events are transient room signals such as typing
	// notifications and read receipts.
	Ephemeral

	// ToDevice events are sent directly between devices, outside any
	// room timeline.
	ToDevice
)

var classNames = [...]string{
	Unknown:     "unknown",
	State:       "state",
	Message:     "message",
	AccountData: "account_data",
	Ephemeral:   "ephemeral",
	ToDevice:    "to_device",
}

// Classes returns every class in declaration order.
func Classes() []Class {
	return []Class{Unknown, State, Message, AccountData, Ephemeral, ToDevice}
}

// ParseClass converts the lowercase wire form of a class ("state",
// "account_data", ...) back into a Class. Any other input returns an
// error wrapping ErrInvalidClassification.
func ParseClass(name string) (Class, error) {
	for class, candidate := range classNames {
		if candidate == name {
			return Class(class), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrInvalidClassification, name)
}

// Valid reports whether c is one of the six defined classes.
func (c Class) Valid() bool { return int(c) < len(classNames) }

// String returns the lowercase wire form of the class. Out-of-range
// values render as "class(N)" so they are visible in logs.
func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("class(%d)", uint8(c))
	}
	return classNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidClassification, uint8(c))
	}
	return []byte(classNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized
// names fail rather than defaulting to Unknown.
func (c *Class) UnmarshalText(data []byte) error {
	parsed, err := ParseClass(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
