// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Keysmith using Cobra.
// It wires configuration, localization and logging, and delegates generation
// to `core/session` through `uiadapters`. CLI code should remain thin.
package cli
