// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"errors"
	"fmt"
	"strings"
)

// CharacterClass names a contiguous ASCII code point range.
type CharacterClass int

const (
	LowercaseLetter CharacterClass = iota + 1
	UppercaseLetter
	SpecialCharacter
	Digit
)

// MixName is the request-time shorthand for all four classes.
const MixName = "mix"

// ErrUnknownClass is returned by ParseClass for names it does not recognize.
var ErrUnknownClass = errors.New("unknown character class")

var classRanges = map[CharacterClass][2]rune{
	LowercaseLetter:  {97, 122},
	UppercaseLetter:  {65, 90},
	SpecialCharacter: {33, 47},
	Digit:            {48, 57},
}

var classNames = map[CharacterClass]string{
	LowercaseLetter:  "lower",
	UppercaseLetter:  "upper",
	SpecialCharacter: "special",
	Digit:            "digit",
}

// aliases accepted by ParseClass in addition to the canonical names.
var classAliases = map[string]CharacterClass{
	"lower":     LowercaseLetter,
	"lowercase": LowercaseLetter,
	"small":     LowercaseLetter,
	"upper":     UppercaseLetter,
	"uppercase": UppercaseLetter,
	"capital":   UppercaseLetter,
	"special":   SpecialCharacter,
	"symbol":    SpecialCharacter,
	"symbols":   SpecialCharacter,
	"digit":     Digit,
	"digits":    Digit,
	"number":    Digit,
	"numbers":   Digit,
}

// AllClasses returns the four concrete classes in canonical order.
func AllClasses() []CharacterClass {
	return []CharacterClass{LowercaseLetter, UppercaseLetter, SpecialCharacter, Digit}
}

// Mix expands the "mix" shorthand. It is identical to AllClasses and exists so
// call sites read the way users phrase the option.
func Mix() []CharacterClass {
	return AllClasses()
}

// Range returns the inclusive code point bounds of c.
func (c CharacterClass) Range() (lo, hi rune) {
	r := classRanges[c]
	return r[0], r[1]
}

// Contains reports whether r falls inside the class range.
func (c CharacterClass) Contains(r rune) bool {
	lo, hi := c.Range()
	return c.Valid() && r >= lo && r <= hi
}

// Valid reports whether c is one of the four concrete classes.
func (c CharacterClass) Valid() bool {
	_, ok := classRanges[c]
	return ok
}

func (c CharacterClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CharacterClass(%d)", int(c))
}

// ClassOf returns the class whose range contains r.
func ClassOf(r rune) (CharacterClass, bool) {
	for _, c := range AllClasses() {
		if c.Contains(r) {
			return c, true
		}
	}
	return 0, false
}

// ParseClass resolves a single class name. "mix" is not a class and is
// rejected here; use ParseClasses to expand it.
func ParseClass(name string) (CharacterClass, error) {
	c, ok := classAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return c, nil
}

// ParseClasses resolves a list of class names, expanding "mix" to all four
// classes. Empty names are skipped. The result is normalized.
func ParseClasses(names []string) ([]CharacterClass, error) {
	var classes []CharacterClass
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
			continue
		case MixName:
			classes = append(classes, Mix()...)
		default:
			c, err := ParseClass(name)
			if err != nil {
				return nil, err
			}
			classes = append(classes, c)
		}
	}
	return Normalize(classes), nil
}

// Normalize drops invalid and duplicate classes and returns the rest in
// canonical order, so every distinct class is drawn with equal weight.
func Normalize(classes []CharacterClass) []CharacterClass {
	seen := make(map[CharacterClass]bool, len(classes))
	for _, c := range classes {
		if c.Valid() {
			seen[c] = true
		}
	}
	out := make([]CharacterClass, 0, len(seen))
	for _, c := range AllClasses() {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}
