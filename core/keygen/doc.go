// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keygen builds random, hyphen-segmented keys from a set of ASCII
// character classes. It is UI-agnostic: callers translate their input into a
// Request and render the returned string or *InvalidRequestError.
//
// All randomness is drawn from an injected Source so that generation can be
// replayed in tests with a seeded source.
package keygen
