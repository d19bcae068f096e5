// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive terminal front end. It keeps only
// presentation state (focus, inputs, status line); generation and history
// live in `core/session`.
package tui
