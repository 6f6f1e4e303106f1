// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package eventtype provides the typed identifier for the "type" field
// of Matrix events.
//
// Every event crossing the Matrix client-server API carries a type
// string ("m.room.message", "m.typing", "m.room_key") whose value
// decides the shape of its content and how the event is processed.
// [Type] pairs that wire string with a [Class] describing the protocol
// context the event arrives in: room state, timeline message, ephemeral
// signal, account data, or to-device message.
//
// Types are interned in a [Registry]. [Find] returns the canonical
// value for a wire string, creating and recording an [Unknown]-classed
// entry the first time an unseen string is looked up. Because Type is a
// small comparable value, two lookups of the same string compare equal
// with ==, and callers can switch directly on the exported constants:
//
//	switch evt.Type {
//	case eventtype.RoomMessage, eventtype.Sticker:
//	    ...
//	case eventtype.RoomMember:
//	    ...
//	}
//
// The registry is the single source of truth for a string's class. A
// class hint passed to [FindWithHint] is only used when the string is
// first interned. Call sites that need to process a known string in a
// different context (an encrypted to-device payload reusing
// "m.room.encrypted", for example) use [Type.WithClass], which returns
// a new value and leaves the registry alone.
//
// Unrecognized strings are never errors: the Matrix federation adds
// event types continuously and clients must tolerate types they do not
// understand. The only decode failures are a class string outside the
// closed set ([ErrInvalidClassification]) and a wire value that is not
// a string at all ([ErrMalformedType]).
//
// Type serializes as a bare string in JSON, YAML and CBOR. The CBOR
// form goes through lib/codec so it matches every other Bureau
// internal protocol.
package eventtype
