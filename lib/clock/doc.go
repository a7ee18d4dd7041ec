// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Production code accepts a Clock interface parameter instead of calling
// time.Now directly. In production, Real() provides the standard library
// behavior. In tests, Fake() provides a deterministic clock that moves
// only when Advance or Set is called.
//
// # Wiring Pattern
//
// Add a Clock field to structs that stamp data with the current time:
//
//	type Store struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	store := datastore.Open(path, clock.Real(), logger)
//
// In tests:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	store := datastore.Open(path, fake, logger)
//	fake.Advance(5 * time.Second)
package clock
