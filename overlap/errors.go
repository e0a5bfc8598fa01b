// SPDX-License-Identifier: MIT
// Package overlap: sentinel error set.
// Every message is prefixed with "overlap: ..."; callers match with
// errors.Is. Operations wrap these with the site, bond or center that
// triggered them.

package overlap

import "errors"

var (
	// ErrNilNetwork indicates a nil *network.Tree.
	ErrNilNetwork = errors.New("overlap: network is nil")

	// ErrNilState indicates a state without a bookkeeper or with nil tensors.
	ErrNilState = errors.New("overlap: state is incomplete")

	// ErrTopologyMismatch indicates that the optimizing state, the
	// reference state and the network disagree on site, bond or physical
	// counts.
	ErrTopologyMismatch = errors.New("overlap: topology mismatch between states and network")

	// ErrNotAdjacent indicates a link query between sites that share no bond.
	ErrNotAdjacent = errors.New("overlap: sites are not adjacent")

	// ErrLinkMismatch indicates a cache whose reference or optimizing
	// bond is not the one sitting on the contracted leg.
	ErrLinkMismatch = errors.New("overlap: cache does not match tensor leg")

	// ErrTooManyLinks indicates a chain contraction over more than two links.
	ErrTooManyLinks = errors.New("overlap: more than two links in chain contraction")

	// ErrNilTensorInfo indicates a nil tensor info operand or scratch buffer.
	ErrNilTensorInfo = errors.New("overlap: tensor info is nil")

	// ErrInvalidCenter indicates a center naming a missing site, the same
	// site twice, or two sites that share no bond.
	ErrInvalidCenter = errors.New("overlap: invalid two-site center")

	// ErrNonAdjacentCenter indicates a center move that does not keep
	// exactly one site of the previous center.
	ErrNonAdjacentCenter = errors.New("overlap: center does not share exactly one site with the previous center")

	// ErrVectorLength indicates a flat vector whose length differs from
	// the overlap vector it is combined with.
	ErrVectorLength = errors.New("overlap: vector length mismatch")
)
