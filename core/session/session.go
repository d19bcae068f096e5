// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"github.com/toeirei/keysmith/core/history"
	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/internal/logging"
)

// Session holds the displayed key and the history of generated keys.
type Session struct {
	gen     *keygen.Generator
	history *history.Buffer
	output  string
}

// New returns a Session. A nil hist gets a buffer of history.DefaultMax.
func New(gen *keygen.Generator, hist *history.Buffer) *Session {
	if hist == nil {
		hist = history.New(history.DefaultMax)
	}
	return &Session{gen: gen, history: hist}
}

// Generate produces a key for req, shows it and records it. On error the
// output and history are left untouched.
func (s *Session) Generate(req keygen.Request) (string, error) {
	key, err := s.gen.Generate(req)
	if err != nil {
		logging.Debugf("rejected generation request: %v", err)
		return "", err
	}
	s.output = key
	s.history.Record(key)
	logging.Debugf("generated key (%d segments of %d), history size %d", req.SegmentCount, req.SegmentLength, s.history.Len())
	return key, nil
}

// Output returns the key currently on display.
func (s *Session) Output() string { return s.output }

// Clear blanks the display. History is kept.
func (s *Session) Clear() { s.output = "" }

// Previous shows the next older history entry, if any.
func (s *Session) Previous() (string, bool) {
	key, ok := s.history.Previous()
	if ok {
		s.output = key
	}
	return key, ok
}

// Next shows the next newer history entry, if any.
func (s *Session) Next() (string, bool) {
	key, ok := s.history.Next()
	if ok {
		s.output = key
	}
	return key, ok
}

// History exposes the underlying buffer for read access.
func (s *Session) History() *history.Buffer { return s.history }
