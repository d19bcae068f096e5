// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import "strings"

// Separator joins the segments of a key.
const Separator = "-"

// Request describes one key. Classes may contain duplicates; they are
// collapsed before any draw.
type Request struct {
	Classes       []CharacterClass
	SegmentLength int
	SegmentCount  int
}

// Validate reports the first violated constraint in the order classes,
// length, segment count.
func (r Request) Validate() error {
	if len(Normalize(r.Classes)) == 0 {
		return &InvalidRequestError{Reason: NoCharacterClassSelected}
	}
	if r.SegmentLength < 1 {
		return &InvalidRequestError{Reason: NonPositiveLength}
	}
	if r.SegmentCount < 1 {
		return &InvalidRequestError{Reason: NonPositiveSegmentCount}
	}
	return nil
}

// KeyLength is the length of the string a valid request produces.
func (r Request) KeyLength() int {
	return r.SegmentCount*r.SegmentLength + r.SegmentCount - 1
}

// Generator draws keys from a Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator using src. A nil src falls back to a
// clock-seeded source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource()
	}
	return &Generator{src: src}
}

// Generate validates req and returns a key of req.SegmentCount segments of
// req.SegmentLength characters joined by Separator. Invalid requests fail
// before any randomness is consumed.
func (g *Generator) Generate(req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return g.generateKey(Normalize(req.Classes), req.SegmentLength, req.SegmentCount), nil
}

// pickCharacterClass returns one of classes with equal probability per class.
func (g *Generator) pickCharacterClass(classes []CharacterClass) CharacterClass {
	return classes[g.src.IntRange(0, len(classes)-1)]
}

func (g *Generator) generateCharacter(classes []CharacterClass) byte {
	lo, hi := g.pickCharacterClass(classes).Range()
	return byte(g.src.IntRange(int(lo), int(hi)))
}

func (g *Generator) generateSegment(classes []CharacterClass, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = g.generateCharacter(classes)
	}
	return string(b)
}

func (g *Generator) generateKey(classes []CharacterClass, segmentLength, segmentCount int) string {
	parts := make([]string, segmentCount)
	for i := range parts {
		parts[i] = g.generateSegment(classes, segmentLength)
	}
	return strings.Join(parts, Separator)
}
