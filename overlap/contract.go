// SPDX-License-Identifier: MIT

package overlap

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtns/symsec"
	"github.com/katalvlaran/lvtns/tensor"
)

// OneLegContract substitutes link.Leg of ref with the optimizing side of
// link's cache:
//
//	result[..o..] = Σ_l ref[..l..] · cache[l,o]
//
// result is re-laid-out (descriptors, then blocks mirrored from ref) and
// zeroed before accumulation. Reference blocks whose sector on link.Leg
// has no cache block contribute nothing.
//
// Errors: ErrNilTensorInfo, ErrLinkMismatch.
func (c *Calculator) OneLegContract(ref *TensorInfo, link Link, result *TensorInfo) error {
	if ref == nil || result == nil {
		return ErrNilTensorInfo
	}
	if err := result.RenewSymsecLayout(ref, link); err != nil {
		return err
	}
	if err := result.RenewBlockLayout(ref, true); err != nil {
		return fmt.Errorf("OneLegContract: %w", err)
	}

	leg, cache := link.Leg, link.cache
	for n := 0; n < ref.NrBlocks(); n++ {
		rb := ref.Block(n)
		cb := cache.Block(rb.Sectors[leg])
		if cb.Offset == Absent {
			continue
		}
		idx := rb.Sectors
		idx[leg] = cb.Opt
		ob := result.BlockAt(idx)
		if ob.Offset == Absent {
			continue
		}
		alpha := c.cfg.prefactor(Coupling{Legs: 1, Leg: leg, Labels: ref.labels(rb.Sectors), Physical: ref.physical})
		tensor.AddOneLeg(alpha, leg,
			ref.BlockData(n), rb.Dims,
			cache.BlockData(rb.Sectors[leg]), cb.LDim, cb.SDim,
			result.BlockData(ob.Index), ob.Dims)
	}
	return nil
}

// ChainContract contracts ref with every link in order:
//   - no link (a leaf whose only bond is the excluded one): result is a copy of ref;
//   - one link (physical site): a single OneLegContract into result;
//   - two links (branching site): ref → memory over links[0], then
//     memory → result over links[1].
//
// Errors: ErrNilTensorInfo, ErrTooManyLinks, and OneLegContract errors.
func (c *Calculator) ChainContract(ref *TensorInfo, links []Link, memory, result *TensorInfo) error {
	if ref == nil || result == nil {
		return ErrNilTensorInfo
	}
	switch len(links) {
	case 0:
		result.CopyFrom(ref)
		return nil
	case 1:
		return c.OneLegContract(ref, links[0], result)
	case 2:
		if memory == nil {
			return ErrNilTensorInfo
		}
		if err := c.OneLegContract(ref, links[0], memory); err != nil {
			return err
		}
		return c.OneLegContract(memory, links[1], result)
	default:
		return fmt.Errorf("ChainContract: %d links: %w", len(links), ErrTooManyLinks)
	}
}

// RebuildCache recomputes cache as the contraction of ref with opt over
// their two legs other than openLeg:
//
//	cache[i,j] = Σ ref[..i..] · opt[..j..]
//
// Every leg is matched by label between ref and opt; the cache layout
// follows the match on openLeg. Blocks without a partner on either side
// contribute nothing.
//
// Errors: ErrNilTensorInfo, ErrLinkMismatch when the cache bond is not
// the one on openLeg of ref and opt.
func (c *Calculator) RebuildCache(ref, opt *TensorInfo, openLeg int, cache *Cache) error {
	if ref == nil || opt == nil {
		return ErrNilTensorInfo
	}
	if openLeg < 0 || openLeg > 2 || cache == nil ||
		cache.Ref() != ref.Leg(openLeg) || cache.Opt() != opt.Leg(openLeg) {
		return fmt.Errorf("RebuildCache: open leg %d: %w", openLeg, ErrLinkMismatch)
	}

	for l := 0; l < 3; l++ {
		pairs := c.matchers[l].Match(ref.Leg(l).Sectors(), opt.Leg(l).Sectors())
		c.lookup[l] = fillLookup(c.lookup[l], ref.Leg(l).Sectors().Len(), pairs)
	}
	cache.RenewBlockLayout(c.matchers[openLeg].Result(), true)

	workers := c.cfg.workers
	if workers == 1 || ref.NrBlocks() < workers {
		c.rebuildPart(ref, opt, openLeg, cache, 0, 1)
	} else {
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(part int) {
				defer wg.Done()
				c.rebuildPart(ref, opt, openLeg, cache, part, workers)
			}(w)
		}
		wg.Wait()
	}

	c.log.Debug("cache rebuilt",
		zap.Stringer("ref", cache.Ref()),
		zap.Int("openLeg", openLeg),
		zap.Int("used", cache.UsedSize()),
	)
	return nil
}

// rebuildPart accumulates the reference blocks whose open-leg sector is
// congruent to part modulo parts. Distinct parts write distinct cache blocks.
func (c *Calculator) rebuildPart(ref, opt *TensorInfo, open int, cache *Cache, part, parts int) {
	for n := 0; n < ref.NrBlocks(); n++ {
		rb := ref.Block(n)
		if rb.Sectors[open]%parts != part {
			continue
		}
		cb := cache.Block(rb.Sectors[open])
		if cb.Offset == Absent {
			continue
		}
		var idx [3]int
		matched := true
		for l := 0; l < 3; l++ {
			idx[l] = c.lookup[l][rb.Sectors[l]]
			if idx[l] < 0 {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		ob := opt.BlockAt(idx)
		if ob.Offset == Absent {
			continue
		}
		alpha := c.cfg.prefactor(Coupling{Legs: 2, Leg: open, Labels: ref.labels(rb.Sectors), Physical: ref.physical})
		tensor.AddTwoLeg(alpha, open,
			ref.BlockData(n), rb.Dims,
			opt.BlockData(ob.Index), ob.Dims,
			cache.BlockData(rb.Sectors[open]), cb.LDim, cb.SDim)
	}
}

// fillLookup turns matcher pairs into a ref-sector → opt-sector table,
// -1 for unmatched sectors, reusing buf.
func fillLookup(buf []int, n int, pairs []symsec.Pair) []int {
	if cap(buf) < n {
		buf = make([]int, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = -1
	}
	for _, p := range pairs {
		buf[p.Ref] = p.Opt
	}
	return buf
}
