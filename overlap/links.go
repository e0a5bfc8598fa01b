// SPDX-License-Identifier: MIT

package overlap

import (
	"fmt"

	"github.com/katalvlaran/lvtns/network"
)

// Link names the cache sitting on one leg of a site.
type Link struct {
	// Bond is the virtual bond index.
	Bond int
	// Leg is the leg of the queried site attached to Bond.
	Leg   int
	cache *Cache
}

// Cache returns the overlap cache of the linked bond.
func (l Link) Cache() *Cache { return l.cache }

// linkMode selects which virtual legs of a site links() reports.
type linkMode uint8

const (
	// linkInternal keeps the bond shared with the other site.
	linkInternal linkMode = iota
	// linkExternal keeps every bond except the one shared with the other site.
	linkExternal
)

// VisitFunc is called once per reported link with the site on the far
// side of the bond (network.Boundary for a boundary bond). A non-nil
// error stops the traversal and is returned wrapped.
type VisitFunc func(neighbor int, l Link) error

// links walks the virtual legs of who in leg order and reports those
// selected by mode relative to other.
func (c *Calculator) links(who, other int, mode linkMode, visit VisitFunc) ([]Link, error) {
	if c.tree.CommonBond(who, other) == network.Boundary {
		return nil, fmt.Errorf("links(%d,%d): %w", who, other, ErrNotAdjacent)
	}
	var out []Link
	for leg, l := range c.tree.Legs(who) {
		if l.Kind != network.LegVirtual {
			continue
		}
		bd := c.tree.Bond(l.Bond)
		touches := bd.From == other || bd.To == other
		if touches != (mode == linkInternal) {
			continue
		}
		link := Link{Bond: l.Bond, Leg: leg, cache: c.caches[l.Bond]}
		if visit != nil {
			if err := visit(c.tree.Other(l.Bond, who), link); err != nil {
				return nil, fmt.Errorf("links(%d,%d) bond %d: %w", who, other, l.Bond, err)
			}
		}
		out = append(out, link)
	}
	return out, nil
}

// InternalLink returns the link of who toward its neighbor other.
//
// Errors: ErrNotAdjacent when the sites share no bond.
func (c *Calculator) InternalLink(who, other int) (Link, error) {
	ls, err := c.links(who, other, linkInternal, nil)
	if err != nil {
		return Link{}, err
	}
	return ls[0], nil
}

// ExternalLinks returns every virtual link of who except the one toward
// exclude, in leg order, calling visit (if non-nil) for each before
// returning.
//
// Errors: ErrNotAdjacent when who and exclude share no bond; any error
// returned by visit.
func (c *Calculator) ExternalLinks(who, exclude int, visit VisitFunc) ([]Link, error) {
	return c.links(who, exclude, linkExternal, visit)
}
