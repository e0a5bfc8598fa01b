// SPDX-License-Identifier: MIT

package overlap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtns/network"
)

// TwoSite computes overlap vectors for a two-site sweep, keeping every
// cache directed toward the current center and updating only the bond
// the center leaves behind on each move.
type TwoSite struct {
	*Calculator
	session *Session
}

// NewTwoSite wraps c with a built-in session.
func NewTwoSite(c *Calculator) *TwoSite {
	return &TwoSite{Calculator: c, session: NewSession()}
}

// BuildTwoSite is Build followed by NewTwoSite.
func BuildTwoSite(opt, ref State, tree *network.Tree, opts ...Option) (*TwoSite, error) {
	c, err := Build(opt, ref, tree, opts...)
	if err != nil {
		return nil, err
	}
	return NewTwoSite(c), nil
}

// Session returns the built-in session.
func (t *TwoSite) Session() *Session { return t.session }

// GetOverlapVector is OverlapVector on the built-in session.
func (t *TwoSite) GetOverlapVector(center Center) (*OverlapVector, error) {
	return t.OverlapVector(t.session, center)
}

// checkCenter validates that center names two distinct adjacent sites.
func (t *TwoSite) checkCenter(center Center) error {
	a, b := center[0], center[1]
	if !t.tree.HasSite(a) || !t.tree.HasSite(b) || !t.tree.Adjacent(a, b) {
		return fmt.Errorf("center %s: %w", center, ErrInvalidCenter)
	}
	return nil
}

// Prepare brings every cache outside center up to date for center.
//
// Behavior:
//   - first center of the session: a recursive walk from both center
//     sites outward contracts every bond toward the center;
//   - same two sites as last time (any order): nothing to do;
//   - exactly one site shared with the last center: the bond between
//     the departing site and the shared one is rebuilt from the departing
//     site's retained contraction and its current optimizing tensor;
//   - in both previous cases, when another session has redirected a
//     cache leaving center (Cache.Toward), a full walk is done instead;
//   - otherwise ErrNonAdjacentCenter, with no state changed.
//
// Errors: ErrInvalidCenter, ErrNonAdjacentCenter, contraction errors.
func (t *TwoSite) Prepare(sess *Session, center Center) error {
	if err := t.checkCenter(center); err != nil {
		return err
	}
	switch {
	case sess.last == NoCenter:
		return t.walkToward(sess, center)
	case sess.last.SameSites(center):
		if t.directedToward(center, network.Boundary) {
			return nil
		}
		return t.rewalk(sess, center)
	}

	shared, kept := network.Boundary, 0
	for _, s := range sess.last {
		if center.Contains(s) {
			shared = s
			kept++
		}
	}
	if kept != 1 {
		return fmt.Errorf("Prepare: %s -> %s: %w", sess.last, center, ErrNonAdjacentCenter)
	}
	k := 0
	if sess.last[0] == shared {
		k = 1
	}
	departing := sess.last[k]

	link, err := t.InternalLink(departing, shared)
	if err != nil {
		return err
	}
	if !t.directedToward(center, link.Bond) {
		return t.rewalk(sess, center)
	}
	if err := t.RebuildCache(sess.result[k], t.pairs[departing].Opt, link.Leg, link.cache); err != nil {
		return fmt.Errorf("Prepare: bond %d: %w", link.Bond, err)
	}
	link.cache.toward = shared

	t.log.Debug("center moved",
		zap.Stringer("session", sess.id),
		zap.Stringer("from", sess.last),
		zap.Stringer("to", center),
		zap.Int("bond", link.Bond),
	)
	return nil
}

// directedToward reports whether every cache on a bond leaving center,
// except skip, is directed toward its center site. It is false when
// another session has redirected a cache since this one last ran.
func (t *TwoSite) directedToward(center Center, skip int) bool {
	for i := 0; i < 2; i++ {
		who, other := center[i], center[1-i]
		for _, l := range t.tree.Legs(who) {
			if l.Kind != network.LegVirtual || l.Bond == skip {
				continue
			}
			if t.tree.Other(l.Bond, who) == other {
				continue
			}
			if t.caches[l.Bond].toward != who {
				return false
			}
		}
	}
	return true
}

// rewalk walks the whole tree toward center.
func (t *TwoSite) rewalk(sess *Session, center Center) error {
	t.log.Debug("stale caches, walking toward center",
		zap.Stringer("session", sess.id),
		zap.Stringer("from", sess.last),
		zap.Stringer("to", center),
	)
	return t.walkToward(sess, center)
}

// walkToward recomputes every non-boundary cache of the tree toward center.
func (t *TwoSite) walkToward(sess *Session, center Center) error {
	for i := 0; i < 2; i++ {
		who, other := center[i], center[1-i]
		_, err := t.ExternalLinks(who, other, func(_ int, l Link) error {
			return t.prepareBond(sess, l.Bond, who)
		})
		if err != nil {
			return fmt.Errorf("Prepare: %w", err)
		}
	}
	t.log.Debug("caches walked toward center",
		zap.Stringer("session", sess.id),
		zap.Stringer("center", center),
	)
	return nil
}

// prepareBond directs the cache of bond b toward site toward, first
// preparing every bond behind the far site.
func (t *TwoSite) prepareBond(sess *Session, b, toward int) error {
	far := t.tree.Other(b, toward)
	if far == network.Boundary {
		return nil
	}
	links, err := t.ExternalLinks(far, toward, func(_ int, l Link) error {
		return t.prepareBond(sess, l.Bond, far)
	})
	if err != nil {
		return err
	}
	if err := t.ChainContract(t.pairs[far].Ref, links, sess.walk[0], sess.walk[1]); err != nil {
		return err
	}
	link, err := t.InternalLink(far, toward)
	if err != nil {
		return err
	}
	if err := t.RebuildCache(sess.walk[1], t.pairs[far].Opt, link.Leg, link.cache); err != nil {
		return err
	}
	link.cache.toward = toward
	return nil
}

// OverlapVector returns the overlap of the reference state with the
// optimizing state with both center sites removed, i.e. the vector that
// dotted with the optimizing two-site tensor of center gives the full
// overlap.
//
// Implementation:
//   - Stage 1: Prepare(sess, center).
//   - Stage 2: per center site, contract the reference tensor with the
//     caches of its external links (ChainContract).
//   - Stage 3: join both contractions over the shared bond.
//   - Stage 4: remember center.
//
// Errors: Prepare errors and contraction errors. On error the session
// keeps its previous center.
func (t *TwoSite) OverlapVector(sess *Session, center Center) (*OverlapVector, error) {
	if err := t.Prepare(sess, center); err != nil {
		return nil, err
	}
	var legs [2]int
	for i := 0; i < 2; i++ {
		who, other := center[i], center[1-i]
		links, err := t.ExternalLinks(who, other, nil)
		if err != nil {
			return nil, err
		}
		if err := t.ChainContract(t.pairs[who].Ref, links, sess.memory[i], sess.result[i]); err != nil {
			return nil, fmt.Errorf("OverlapVector: site %d: %w", who, err)
		}
		internal, err := t.InternalLink(who, other)
		if err != nil {
			return nil, err
		}
		legs[i] = internal.Leg
	}

	vec := join(center, sess.result[0], legs[0], sess.result[1], legs[1], t.cfg.prefactor)
	sess.last = center
	return vec, nil
}
