// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package uiadapters contains thin adapters shared by the CLI and the TUI:
// building a session from configuration, translating core errors into
// localized warnings, and reaching the system clipboard. Adapters stay small so
// both front ends render the same behavior.
package uiadapters
