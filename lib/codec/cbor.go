// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Class and other text-form enums encode as CBOR text strings.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Event documents decoded into any must be usable by code that
		// expects JSON-shaped maps.
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// RawMessage is an undecoded CBOR item. Decoding a document into
// map[string]RawMessage lets callers tell an absent field from a
// present one and decode each field separately.
type RawMessage = cbor.RawMessage

// Decoder reads a stream of concatenated CBOR items.
type Decoder = cbor.Decoder

// NewDecoder returns a Decoder reading CBOR items from r.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}

// Diagnose returns the RFC 8949 diagnostic notation of a single CBOR
// item, for test assertions and debug logging.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
