// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import "github.com/toeirei/keysmith/core/keygen"

// DefaultSegmentLength is the length Reset restores.
const DefaultSegmentLength = 4

// Form is the user's selection: one toggle per class, the Mix shortcut and
// the two dimensions.
type Form struct {
	Lower   bool
	Upper   bool
	Special bool
	Digits  bool
	Mix     bool

	SegmentLength int
	SegmentCount  int
}

// NewForm returns a form with the given dimensions and no class selected.
func NewForm(segmentLength, segmentCount int) Form {
	return Form{SegmentLength: segmentLength, SegmentCount: segmentCount}
}

// FormFromClasses returns a form with exactly the toggles for classes set.
func FormFromClasses(classes []keygen.CharacterClass, segmentLength, segmentCount int) Form {
	f := NewForm(segmentLength, segmentCount)
	for _, c := range classes {
		f.Set(c, true)
	}
	return f
}

// Classes resolves the selection. Mix overrides the individual toggles.
func (f Form) Classes() []keygen.CharacterClass {
	if f.Mix {
		return keygen.Mix()
	}
	var classes []keygen.CharacterClass
	if f.Upper {
		classes = append(classes, keygen.UppercaseLetter)
	}
	if f.Lower {
		classes = append(classes, keygen.LowercaseLetter)
	}
	if f.Special {
		classes = append(classes, keygen.SpecialCharacter)
	}
	if f.Digits {
		classes = append(classes, keygen.Digit)
	}
	return keygen.Normalize(classes)
}

// Request turns the form into a generation request.
func (f Form) Request() keygen.Request {
	return keygen.Request{
		Classes:       f.Classes(),
		SegmentLength: f.SegmentLength,
		SegmentCount:  f.SegmentCount,
	}
}

// ClassTogglesEnabled reports whether the per-class toggles take effect.
func (f Form) ClassTogglesEnabled() bool { return !f.Mix }

// Selected reports the toggle state for c.
func (f Form) Selected(c keygen.CharacterClass) bool {
	switch c {
	case keygen.LowercaseLetter:
		return f.Lower
	case keygen.UppercaseLetter:
		return f.Upper
	case keygen.SpecialCharacter:
		return f.Special
	case keygen.Digit:
		return f.Digits
	}
	return false
}

// Set changes the toggle for c.
func (f *Form) Set(c keygen.CharacterClass, on bool) {
	switch c {
	case keygen.LowercaseLetter:
		f.Lower = on
	case keygen.UppercaseLetter:
		f.Upper = on
	case keygen.SpecialCharacter:
		f.Special = on
	case keygen.Digit:
		f.Digits = on
	}
}

// Toggle flips c unless Mix is on, in which case the class toggles are
// locked. It reports whether anything changed.
func (f *Form) Toggle(c keygen.CharacterClass) bool {
	if f.Mix || !c.Valid() {
		return false
	}
	f.Set(c, !f.Selected(c))
	return true
}

// Reset restores the segment length and clears every toggle. The segment
// count is left alone.
func (f *Form) Reset() {
	f.SegmentLength = DefaultSegmentLength
	f.Lower, f.Upper, f.Special, f.Digits, f.Mix = false, false, false, false, false
}
