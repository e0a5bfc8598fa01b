// SPDX-License-Identifier: MIT

package overlap

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvtns/network"
)

// Center is an ordered pair of adjacent sites optimized together.
type Center [2]int

// NoCenter is the center of a session that has not produced a vector yet.
var NoCenter = Center{network.Boundary, network.Boundary}

// Contains reports whether s is one of the two sites.
func (c Center) Contains(s int) bool { return c[0] == s || c[1] == s }

// SameSites reports whether c and o name the same two sites in any order.
func (c Center) SameSites(o Center) bool {
	return (c[0] == o[0] && c[1] == o[1]) || (c[0] == o[1] && c[1] == o[0])
}

// String renders "{a,b}".
func (c Center) String() string { return fmt.Sprintf("{%d,%d}", c[0], c[1]) }

// Session is the sweep state of a two-site overlap engine: the last
// center and the reference-with-environment contraction of each of its
// sites, kept so the next move can rebuild the departing bond without
// recontracting.
//
// All caches live in the Calculator, so only one session should drive a
// calculator at a time. A fresh (or Reset) session starts with a full
// walk that recomputes every cache toward its first center.
type Session struct {
	id     uuid.UUID
	last   Center
	result [2]*TensorInfo
	memory [2]*TensorInfo
	walk   [2]*TensorInfo
}

// NewSession returns a session with no center.
func NewSession() *Session {
	return &Session{
		id:     uuid.New(),
		last:   NoCenter,
		result: [2]*TensorInfo{newScratch(), newScratch()},
		memory: [2]*TensorInfo{newScratch(), newScratch()},
		walk:   [2]*TensorInfo{newScratch(), newScratch()},
	}
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Last returns the last center, NoCenter before the first vector.
func (s *Session) Last() Center { return s.last }

// Reset forgets the last center; scratch storage is kept.
func (s *Session) Reset() { s.last = NoCenter }
