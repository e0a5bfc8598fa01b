// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..."; match with errors.Is.
// Kernels do not validate (hot path) and therefore never return errors;
// layout constructors do.

package tensor

import "errors"

var (
	// ErrBadShape is returned for a negative sector count or a dims table
	// that does not agree with the shape.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrLayoutMismatch is returned when block keys are not strictly
	// ascending, fall outside the shape, or disagree with a volume list.
	ErrLayoutMismatch = errors.New("tensor: block layout mismatch")

	// ErrOutOfRange is returned for a block or sector index outside the tensor.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor is returned when a nil tensor is passed where one is required.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
