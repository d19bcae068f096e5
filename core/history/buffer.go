// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package history keeps a bounded, deduplicated list of generated keys with a
// cursor for stepping backwards and forwards through them.
package history

import "slices"

// DefaultMax is the number of keys kept when no other bound is configured.
const DefaultMax = 20

// Buffer is an ordered log of keys, oldest first. The zero value is not
// usable; call New. Buffer is not safe for concurrent use.
type Buffer struct {
	entries []string
	cursor  int
	max     int
}

// New returns an empty Buffer holding at most max keys. A max below one
// selects DefaultMax.
func New(max int) *Buffer {
	if max < 1 {
		max = DefaultMax
	}
	return &Buffer{cursor: -1, max: max}
}

// Record appends key unless it is already present, trims the oldest entry
// when the bound is exceeded and moves the cursor to the newest entry.
//
// A key that is already present keeps its position, so a duplicate of the
// oldest entry does not push it out even at capacity.
func (b *Buffer) Record(key string) {
	if !slices.Contains(b.entries, key) {
		b.entries = append(b.entries, key)
	}
	if len(b.entries) > b.max {
		b.entries = slices.Delete(b.entries, 0, 1)
	}
	b.cursor = len(b.entries) - 1
}

// Previous steps towards older entries. It returns false without moving when
// the buffer is empty or the cursor is already at the oldest entry.
func (b *Buffer) Previous() (string, bool) {
	if len(b.entries) == 0 || b.cursor <= 0 {
		return "", false
	}
	b.cursor--
	return b.entries[b.cursor], true
}

// Next steps towards newer entries. It returns false without moving when the
// buffer is empty or the cursor is already at the newest entry.
func (b *Buffer) Next() (string, bool) {
	if len(b.entries) == 0 || b.cursor >= len(b.entries)-1 {
		return "", false
	}
	b.cursor++
	return b.entries[b.cursor], true
}

// Current returns the entry under the cursor.
func (b *Buffer) Current() (string, bool) {
	if b.cursor < 0 || b.cursor >= len(b.entries) {
		return "", false
	}
	return b.entries[b.cursor], true
}

// Len returns the number of recorded keys.
func (b *Buffer) Len() int { return len(b.entries) }

// Cursor returns the cursor index, -1 when empty.
func (b *Buffer) Cursor() int { return b.cursor }

// Max returns the capacity.
func (b *Buffer) Max() int { return b.max }

// Entries returns a copy of the recorded keys, oldest first.
func (b *Buffer) Entries() []string {
	return slices.Clone(b.entries)
}
