// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/core/session"
)

func TestForm_MixOverridesToggles(t *testing.T) {
	f := session.NewForm(4, 4)
	f.Digits = true
	f.Mix = true

	assert.Equal(t, keygen.AllClasses(), f.Classes())
	assert.False(t, f.ClassTogglesEnabled())
	assert.False(t, f.Toggle(keygen.LowercaseLetter), "class toggles are locked under mix")
	assert.False(t, f.Lower)
}

func TestForm_ClassesInCanonicalOrder(t *testing.T) {
	f := session.NewForm(4, 4)
	f.Digits = true
	f.Upper = true

	assert.Equal(t, []keygen.CharacterClass{keygen.UppercaseLetter, keygen.Digit}, f.Classes())
}

func TestForm_EmptySelectionYieldsInvalidRequest(t *testing.T) {
	f := session.NewForm(4, 4)
	err := f.Request().Validate()
	reason, ok := keygen.ReasonOf(err)
	assert.True(t, ok)
	assert.Equal(t, keygen.NoCharacterClassSelected, reason)
}

func TestForm_Toggle(t *testing.T) {
	f := session.NewForm(4, 4)
	assert.True(t, f.Toggle(keygen.SpecialCharacter))
	assert.True(t, f.Selected(keygen.SpecialCharacter))
	assert.True(t, f.Toggle(keygen.SpecialCharacter))
	assert.False(t, f.Selected(keygen.SpecialCharacter))
	assert.False(t, f.Toggle(keygen.CharacterClass(0)))
}

func TestForm_ResetKeepsSegmentCount(t *testing.T) {
	f := session.FormFromClasses(keygen.Mix(), 9, 6)
	f.Mix = true

	f.Reset()

	assert.Equal(t, session.DefaultSegmentLength, f.SegmentLength)
	assert.Equal(t, 6, f.SegmentCount)
	assert.Empty(t, f.Classes())
	assert.True(t, f.ClassTogglesEnabled())
}

func TestFormFromClasses(t *testing.T) {
	f := session.FormFromClasses([]keygen.CharacterClass{keygen.LowercaseLetter, keygen.Digit}, 5, 3)
	assert.True(t, f.Lower)
	assert.True(t, f.Digits)
	assert.False(t, f.Upper)
	assert.Equal(t, keygen.Request{
		Classes:       []keygen.CharacterClass{keygen.LowercaseLetter, keygen.Digit},
		SegmentLength: 5,
		SegmentCount:  3,
	}, f.Request())
}
