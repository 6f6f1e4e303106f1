// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package eventtype

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
)

func TestFindInterns(t *testing.T) {
	registry := NewRegistry()

	first := registry.Find("com.example.interned")
	second := registry.Find("com.example.interned")
	if first != second {
		t.Errorf("repeated Find returned %s and %s", first.Repr(), second.Repr())
	}
	if registry.Len() != 1 {
		t.Errorf("Len() = %d after interning one string, want 1", registry.Len())
	}
	if first.Class() != Unknown {
		t.Errorf("unhinted class = %v, want unknown", first.Class())
	}
}

func TestFindHintIgnoredOnceInterned(t *testing.T) {
	registry := NewRegistry()

	hinted := registry.FindWithHint("com.example.hinted", State)
	if hinted.Class() != State {
		t.Fatalf("first hinted lookup class = %v, want state", hinted.Class())
	}

	unhinted := registry.Find("com.example.hinted")
	if unhinted != hinted {
		t.Errorf("unhinted lookup = %s, want %s", unhinted.Repr(), hinted.Repr())
	}

	conflicting := registry.FindWithHint("com.example.hinted", Message)
	if conflicting != hinted {
		t.Errorf("conflicting hint lookup = %s, want %s", conflicting.Repr(), hinted.Repr())
	}
	if conflicting.Class() != State {
		t.Errorf("conflicting hint changed class to %v", conflicting.Class())
	}
}

func TestFindConcurrentFirstLookup(t *testing.T) {
	registry := NewRegistry()

	const workers = 64
	const names = 16

	results := make([][names]Type, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		worker := worker
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			// Alternate hints across workers so a race that let two
			// inserts through would surface as differing classes.
			hint := State
			if worker%2 == 1 {
				hint = Message
			}
			for name := 0; name < names; name++ {
				results[worker][name] = registry.FindWithHint(fmt.Sprintf("com.example.race.%d", name), hint)
			}
		}()
	}
	close(start)
	wg.Wait()

	for name := 0; name < names; name++ {
		canonical := registry.Find(fmt.Sprintf("com.example.race.%d", name))
		for worker := 0; worker < workers; worker++ {
			if results[worker][name] != canonical {
				t.Errorf("worker %d name %d got %s, canonical is %s",
					worker, name, results[worker][name].Repr(), canonical.Repr())
			}
		}
	}
	if registry.Len() != names {
		t.Errorf("Len() = %d, want %d", registry.Len(), names)
	}
}

func TestFindWithHintCompetingInsert(t *testing.T) {
	registry := NewRegistry()

	// Another caller interns the string between this caller's lock-free
	// miss and its insert.
	var competitor Type
	registry.beforeInsert = func(raw string) {
		registry.beforeInsert = nil
		competitor = registry.FindWithHint(raw, Message)
	}

	got := registry.FindWithHint("com.example.race", State)
	if got != competitor {
		t.Errorf("late caller got %s, earlier caller got %s", got.Repr(), competitor.Repr())
	}
	if got.Class() != Message {
		t.Errorf("late caller class = %v, want the earlier caller's message", got.Class())
	}
	canonical, ok := registry.Lookup("com.example.race")
	if !ok || canonical != competitor {
		t.Errorf("registry holds (%s, %v), want %s", canonical.Repr(), ok, competitor.Repr())
	}
	if registry.Len() != 1 {
		t.Errorf("Len() = %d, want 1", registry.Len())
	}
}

func TestRegisterCompetingFind(t *testing.T) {
	registry := NewRegistry()

	var decoded Type
	registry.beforeInsert = func(raw string) {
		registry.beforeInsert = nil
		decoded = registry.Find(raw)
	}

	registered, err := registry.Register("com.example.race.config", State)
	if !errors.Is(err, ErrConflictingClass) {
		t.Fatalf("Register err = %v, want ErrConflictingClass", err)
	}
	if registered != decoded {
		t.Errorf("Register returned %s, Find returned %s", registered.Repr(), decoded.Repr())
	}
	if got := registry.Find("com.example.race.config"); got.Class() != Unknown {
		t.Errorf("canonical class = %v after losing the race, want unknown", got.Class())
	}
}

func TestRegisterRacingFind(t *testing.T) {
	for iteration := 0; iteration < 200; iteration++ {
		registry := NewRegistry()
		raw := fmt.Sprintf("com.example.race.%d", iteration)

		var registered, found Type
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			registered, _ = registry.Register(raw, State)
		}()
		go func() {
			defer wg.Done()
			found = registry.Find(raw)
		}()
		wg.Wait()

		canonical, _ := registry.Lookup(raw)
		if registered != canonical || found != canonical {
			t.Fatalf("iteration %d: Register got %s, Find got %s, registry holds %s",
				iteration, registered.Repr(), found.Repr(), canonical.Repr())
		}
	}
}

func TestRegisterReportsConflicts(t *testing.T) {
	registry := NewRegistry()

	registered, err := registry.Register("com.example.task", State)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.Class() != State {
		t.Errorf("registered class = %v, want state", registered.Class())
	}

	again, err := registry.Register("com.example.task", State)
	if err != nil {
		t.Errorf("re-registering with the same class: %v", err)
	}
	if again != registered {
		t.Errorf("re-register returned %s, want %s", again.Repr(), registered.Repr())
	}

	conflicting, err := registry.Register("com.example.task", AccountData)
	if !errors.Is(err, ErrConflictingClass) {
		t.Fatalf("conflicting Register err = %v, want ErrConflictingClass", err)
	}
	if conflicting != registered {
		t.Errorf("conflicting Register returned %s, want canonical %s", conflicting.Repr(), registered.Repr())
	}
	if got := registry.Find("com.example.task"); got.Class() != State {
		t.Errorf("class after conflict = %v, want state", got.Class())
	}
}

func TestLookupDoesNotIntern(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Lookup("com.example.absent"); ok {
		t.Error("Lookup found a string that was never interned")
	}
	if registry.Len() != 0 {
		t.Errorf("Len() = %d after Lookup, want 0", registry.Len())
	}

	interned := registry.Find("com.example.absent")
	found, ok := registry.Lookup("com.example.absent")
	if !ok || found != interned {
		t.Errorf("Lookup after Find = (%s, %v), want (%s, true)", found.Repr(), ok, interned.Repr())
	}
}

func TestTypesSorted(t *testing.T) {
	registry := NewRegistry()
	for _, raw := range []string{"m.typing", "com.example.b", "m.direct", "com.example.a"} {
		registry.Find(raw)
	}

	var raws []string
	for _, eventType := range registry.Types() {
		raws = append(raws, eventType.Raw())
	}
	want := []string{"com.example.a", "com.example.b", "m.direct", "m.typing"}
	if !slices.Equal(raws, want) {
		t.Errorf("Types() = %v, want %v", raws, want)
	}
}

func TestDigest(t *testing.T) {
	build := func(order []string, class Class) *Registry {
		registry := NewRegistry()
		for _, raw := range order {
			registry.FindWithHint(raw, class)
		}
		return registry
	}

	forward := build([]string{"m.a", "m.b", "m.c"}, State)
	reverse := build([]string{"m.c", "m.b", "m.a"}, State)
	if forward.Digest() != reverse.Digest() {
		t.Error("digest depends on insertion order")
	}

	reclassed := build([]string{"m.a", "m.b", "m.c"}, Message)
	if forward.Digest() == reclassed.Digest() {
		t.Error("digest does not reflect classification")
	}

	extended := build([]string{"m.a", "m.b", "m.c", "m.d"}, State)
	if forward.Digest() == extended.Digest() {
		t.Error("digest does not reflect table contents")
	}
	// Wire strings may contain any bytes. One entry embedding what
	// looks like a class and separator must not hash like two entries.
	embedded := NewRegistry()
	embedded.FindWithHint("m.a\x00\x02\nm.b", State)
	split := NewRegistry()
	split.FindWithHint("m.a", Message)
	split.FindWithHint("m.b", State)
	if embedded.Digest() == split.Digest() {
		t.Error("digest confuses an embedded separator with an entry boundary")
	}
}

func TestDeserialize(t *testing.T) {
	registry := NewRegistry()

	unknown, err := registry.Deserialize("m.totally.unknown.type")
	if err != nil {
		t.Fatalf("Deserialize unknown string: %v", err)
	}
	if unknown.Class() != Unknown {
		t.Errorf("class = %v, want unknown", unknown.Class())
	}
	if unknown != registry.Find("m.totally.unknown.type") {
		t.Error("Deserialize did not intern the string")
	}

	for _, value := range []any{42, 42.0, true, nil, map[string]any{"type": "m.room.message"}, []any{"m.room.message"}} {
		if _, err := registry.Deserialize(value); !errors.Is(err, ErrMalformedType) {
			t.Errorf("Deserialize(%#v) err = %v, want ErrMalformedType", value, err)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	candidates := append(Types(), Find("com.example.fresh"), ToDeviceEncrypted)
	for _, eventType := range candidates {
		decoded, err := Deserialize(eventType.Serialize())
		if err != nil {
			t.Fatalf("Deserialize(%q): %v", eventType.Serialize(), err)
		}
		if decoded.Raw() != eventType.Raw() {
			t.Errorf("round-trip raw = %q, want %q", decoded.Raw(), eventType.Raw())
		}
	}
}
