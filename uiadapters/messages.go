// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"errors"

	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/internal/i18n"
)

// UserError carries a localized message for display while keeping the
// underlying error reachable through errors.Is/As.
type UserError struct {
	Msg string
	Err error
}

func (e *UserError) Error() string { return e.Msg }

func (e *UserError) Unwrap() error { return e.Err }

// Warning wraps err in a *UserError with its localized text.
func Warning(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{Msg: WarningFor(err), Err: err}
}

// WarningFor returns the localized message shown to the user for err.
func WarningFor(err error) string {
	if reason, ok := keygen.ReasonOf(err); ok {
		switch reason {
		case keygen.NoCharacterClassSelected:
			return i18n.T("generate.warn_no_class")
		case keygen.NonPositiveLength:
			return i18n.T("generate.warn_no_length")
		case keygen.NonPositiveSegmentCount:
			return i18n.T("generate.warn_no_parts")
		}
		return i18n.T("generate.warn_invalid", err)
	}
	if errors.Is(err, keygen.ErrUnknownClass) {
		return i18n.T("generate.unknown_class", err)
	}
	return err.Error()
}

// ClassLabel returns the localized name of a class toggle.
func ClassLabel(c keygen.CharacterClass) string {
	return i18n.T("class." + c.String())
}
