// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads configuration for programs that consume Matrix
// event types.
//
// Configuration comes from a single file named by either the
// BUREAU_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no discovery and no fallback search.
//
// The file is YAML (.yaml, .yml) or JSON with comments (.json,
// .jsonc). Unknown keys are rejected in both formats. The file
// configures logging and declares deployment-specific event types
// together with their classes:
//
//	log:
//	  level: debug
//	  format: json
//	event_types:
//	  - type: com.example.task
//	    class: state
//
// [Config.Apply] registers the declarations in an eventtype registry.
// A declaration that disagrees with a class the registry already holds
// (including the well-known Matrix types) is reported rather than
// silently ignored.
package config
