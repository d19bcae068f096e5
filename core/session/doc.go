// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session composes the key generator and the history buffer into the
// state a front end works with: the key currently on display, the history
// behind it, and the form the user fills in. UIs drive a Session and render
// its Output; they never touch keygen or history directly for generation.
package session
