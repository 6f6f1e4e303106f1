// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bureau-event-type inspects how Matrix event type strings are
// classified: room state, timeline message, ephemeral, account data,
// to-device, or unknown.
//
//	bureau-event-type classify m.room.message com.example.task
//	bureau-event-type list --class state
//	bureau-event-type list --digest
//	bureau-event-type decode < events.jsonl
//	bureau-event-type decode --cbor < events.cbor
//
// Deployment-specific event types are declared in the config file
// named by --config or BUREAU_CONFIG and registered before any command
// runs. decode --cbor reads the concatenated CBOR event maps that
// Bureau processes persist and exchange. The --digest output lets operators confirm that two hosts
// share the same classification table.
//
// Exit codes:
//
//	0  success
//	1  one or more input events could not be decoded
//	2  usage or configuration error
package main
