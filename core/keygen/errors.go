// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"errors"
	"fmt"
)

// Reason tells why a Request was rejected.
type Reason int

const (
	NoCharacterClassSelected Reason = iota + 1
	NonPositiveLength
	NonPositiveSegmentCount
)

var (
	// ErrInvalidRequest matches every *InvalidRequestError.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrNoCharacterClass indicates an empty class set.
	ErrNoCharacterClass = errors.New("no character class selected")

	// ErrNonPositiveLength indicates a segment length below one.
	ErrNonPositiveLength = errors.New("segment length must be at least 1")

	// ErrNonPositiveSegmentCount indicates a segment count below one.
	ErrNonPositiveSegmentCount = errors.New("segment count must be at least 1")
)

func (r Reason) String() string {
	switch r {
	case NoCharacterClassSelected:
		return "NoCharacterClassSelected"
	case NonPositiveLength:
		return "NonPositiveLength"
	case NonPositiveSegmentCount:
		return "NonPositiveSegmentCount"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

func (r Reason) sentinel() error {
	switch r {
	case NoCharacterClassSelected:
		return ErrNoCharacterClass
	case NonPositiveLength:
		return ErrNonPositiveLength
	case NonPositiveSegmentCount:
		return ErrNonPositiveSegmentCount
	}
	return nil
}

// InvalidRequestError is the only error Generate returns.
type InvalidRequestError struct {
	Reason Reason
}

func (e *InvalidRequestError) Error() string {
	if err := e.Reason.sentinel(); err != nil {
		return "invalid generation request: " + err.Error()
	}
	return "invalid generation request"
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Reason.sentinel()
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// ReasonOf extracts the rejection reason from err, if it is or wraps an
// *InvalidRequestError.
func ReasonOf(err error) (Reason, bool) {
	var ire *InvalidRequestError
	if errors.As(err, &ire) {
		return ire.Reason, true
	}
	return 0, false
}
