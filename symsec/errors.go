// SPDX-License-Identifier: MIT
// Package symsec: sentinel error set.
// Every message is prefixed with "symsec: ..." so logs stay greppable.
// Callers match with errors.Is; context is added by the caller through
// fmt.Errorf("ctx: %w", ErrX).

package symsec

import "errors"

var (
	// ErrLengthMismatch is returned when labels and dims of a descriptor
	// have different lengths.
	ErrLengthMismatch = errors.New("symsec: labels and dims length mismatch")

	// ErrDuplicateLabel is returned when a descriptor lists the same label twice.
	ErrDuplicateLabel = errors.New("symsec: duplicate sector label")

	// ErrBadDim is returned for a negative sector dimension.
	ErrBadDim = errors.New("symsec: negative sector dimension")

	// ErrTooManyGroups is returned when more than MaxSymmetries groups are requested.
	ErrTooManyGroups = errors.New("symsec: too many symmetry groups")

	// ErrNilSectors is returned when a bookkeeper table holds a nil descriptor.
	ErrNilSectors = errors.New("symsec: nil sector descriptor")
)
