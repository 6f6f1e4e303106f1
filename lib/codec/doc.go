// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the shared CBOR encoding configuration for
// event-type identifiers and the documents that carry them.
//
// JSON is the Matrix wire format. CBOR is the internal format used when
// decoded events are handed between Bureau processes over sockets or
// persisted to state files. Both must agree on how an event type looks:
// a bare text string, never a wrapping map. That is why the encoder
// and decoder here route encoding.TextMarshaler and
// encoding.TextUnmarshaler implementations through CBOR text strings.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2) so the
// same logical document always produces identical bytes:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// A stream of concatenated items, such as an event log, is read with
// [NewDecoder].
package codec
