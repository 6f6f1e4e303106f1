// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package eventtype

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/alphadose/haxmap"
	"github.com/zeebo/blake3"
)

// Registry interns event types: it maps each wire string to its
// canonical Type. Entries are created on first lookup and never
// removed or altered afterwards.
//
// A Registry is safe for concurrent use. Lookups of interned strings
// are lock-free. The first lookup of a new string takes a mutex and
// re-checks the table before inserting, so concurrent callers racing
// on the same string all receive the same canonical value.
type Registry struct {
	types *haxmap.Map[string, Type]

	// writeMu serializes inserts. haxmap's Set and GetOrCompute
	// overwrite an existing key, so they are only called under it.
	writeMu sync.Mutex

	// beforeInsert, when set, runs after a lock-free miss and before
	// the mutex is taken. Tests use it to inject a competing insert.
	beforeInsert func(raw string)
}

// NewRegistry returns an empty registry. Most callers use the
// package-level functions, which operate on the process-wide registry
// holding the well-known constants.
func NewRegistry() *Registry {
	return &Registry{types: haxmap.New[string, Type]()}
}

// Find returns the canonical Type for raw, interning it as Unknown if
// it has not been seen before. Find never fails.
func (r *Registry) Find(raw string) Type {
	return r.FindWithHint(raw, Unknown)
}

// FindWithHint returns the canonical Type for raw. If raw is not yet
// interned, it is recorded with class hint. If it is already interned,
// the existing value is returned unchanged even when its class differs
// from hint; use [Type.WithClass] to process a known string under a
// different class.
func (r *Registry) FindWithHint(raw string, hint Class) Type {
	if existing, ok := r.types.Get(raw); ok {
		return existing
	}
	if r.beforeInsert != nil {
		r.beforeInsert(raw)
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	if existing, ok := r.types.Get(raw); ok {
		return existing
	}
	canonical := Type{raw: raw, class: hint}
	r.types.Set(raw, canonical)
	return canonical
}

// Register interns raw with class, like FindWithHint, but reports an
// error wrapping ErrConflictingClass if raw is already interned with a
// different class. The canonical value is returned either way and is
// never modified.
func (r *Registry) Register(raw string, class Class) (Type, error) {
	canonical := r.FindWithHint(raw, class)
	if canonical.class != class {
		return canonical, fmt.Errorf("%w: %q is registered as %s, not %s",
			ErrConflictingClass, raw, canonical.class, class)
	}
	return canonical, nil
}

// Lookup returns the canonical Type for raw without interning it.
func (r *Registry) Lookup(raw string) (Type, bool) {
	return r.types.Get(raw)
}

// Len returns the number of interned types.
func (r *Registry) Len() int {
	return int(r.types.Len())
}

// Types returns every interned type sorted by wire string.
func (r *Registry) Types() []Type {
	types := make([]Type, 0, r.types.Len())
	r.types.ForEach(func(_ string, t Type) bool {
		types = append(types, t)
		return true
	})
	slices.SortFunc(types, func(a, b Type) int {
		return strings.Compare(a.raw, b.raw)
	})
	return types
}

// Digest returns a BLAKE3 fingerprint of the interned table: each
// entry's length-prefixed wire string and class, in sorted order. Two
// registries that classify the same set of strings identically have
// equal digests.
func (r *Registry) Digest() [32]byte {
	var table []byte
	for _, t := range r.Types() {
		table = binary.AppendUvarint(table, uint64(len(t.raw)))
		table = append(table, t.raw...)
		table = append(table, byte(t.class))
	}
	return blake3.Sum256(table)
}

// Deserialize converts a decoded wire value into a Type. A string is
// interned in r; any other value (a number, a map, nil) fails with an
// error wrapping ErrMalformedType. Unknown strings are never errors.
func (r *Registry) Deserialize(value any) (Type, error) {
	raw, ok := value.(string)
	if !ok {
		return Type{}, fmt.Errorf("%w: expected string, got %T", ErrMalformedType, value)
	}
	return r.Find(raw), nil
}

// defaultRegistry holds the well-known constants and every type
// decoded through the package-level functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Find returns the canonical Type for raw from the process-wide
// registry. See [Registry.Find].
func Find(raw string) Type { return defaultRegistry.Find(raw) }

// FindWithHint is [Registry.FindWithHint] on the process-wide registry.
func FindWithHint(raw string, hint Class) Type { return defaultRegistry.FindWithHint(raw, hint) }

// Register is [Registry.Register] on the process-wide registry.
func Register(raw string, class Class) (Type, error) { return defaultRegistry.Register(raw, class) }

// Lookup is [Registry.Lookup] on the process-wide registry.
func Lookup(raw string) (Type, bool) { return defaultRegistry.Lookup(raw) }

// Types is [Registry.Types] on the process-wide registry.
func Types() []Type { return defaultRegistry.Types() }

// Deserialize is [Registry.Deserialize] on the process-wide registry.
func Deserialize(value any) (Type, error) { return defaultRegistry.Deserialize(value) }
