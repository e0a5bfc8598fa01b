// SPDX-License-Identifier: MIT
// Package: lvtns/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; sentinels carry no parameters.
//   • Runtime code never panics; option constructors (WithX) do on nonsense input.

package builder

import "errors"

// ErrTooFewSites indicates that a size parameter (sites, arm length) is
// smaller than the constructor allows.
var ErrTooFewSites = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a nil topology or a failure of the network,
// bookkeeper or tensor layer while assembling a fixture.
var ErrConstructFailed = errors.New("builder: construction failed")
