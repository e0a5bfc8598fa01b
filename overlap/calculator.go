// SPDX-License-Identifier: MIT

package overlap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtns/network"
	"github.com/katalvlaran/lvtns/symsec"
	"github.com/katalvlaran/lvtns/tensor"
)

// State is a tree tensor network state: one site tensor per site and the
// bookkeeper describing its bonds.
type State struct {
	Tensors []*tensor.SiteTensor
	Book    *symsec.Bookkeeper
}

// Calculator owns one overlap cache per bond of the network and the
// reference/optimizing info pair of every site. It borrows the tensors of
// both states: the reference state must not change during its lifetime,
// the optimizing tensors may be updated in place between calls as long as
// their block layout is kept.
//
// A Calculator is not safe for concurrent use.
type Calculator struct {
	cfg      config
	log      *zap.Logger
	tree     *network.Tree
	ref, opt State
	pairs    []Pair
	caches   []*Cache
	matchers [3]*symsec.Matcher
	lookup   [3][]int
}

// Build prepares a calculator for the overlap of opt with ref on tree.
//
// Implementation:
//   - Stage 1: check that both states and the network agree on site,
//     bond and physical counts, before touching any tensor.
//   - Stage 2: wrap every site tensor in a TensorInfo carrying the
//     descriptors of its legs.
//   - Stage 3: create one cache per bond; boundary bonds get the identity
//     and are directed toward their only site for good.
//   - Stage 4: size three matchers for the largest reference bond.
//
// Errors:
//   - ErrNilNetwork, ErrNilState.
//   - ErrTopologyMismatch when counts disagree.
//   - tensor.ErrLayoutMismatch when a tensor disagrees with its descriptors.
func Build(opt, ref State, tree *network.Tree, opts ...Option) (*Calculator, error) {
	if tree == nil {
		return nil, ErrNilNetwork
	}
	if opt.Book == nil || ref.Book == nil {
		return nil, ErrNilState
	}
	if err := checkTopology(opt, ref, tree); err != nil {
		return nil, err
	}

	cfg := newConfig(opts...)
	c := &Calculator{
		cfg:    cfg,
		log:    cfg.logger,
		tree:   tree,
		ref:    ref,
		opt:    opt,
		pairs:  make([]Pair, tree.NrSites()),
		caches: make([]*Cache, tree.NrBonds()),
	}

	for s := range c.pairs {
		r, err := c.siteInfo(ref, s)
		if err != nil {
			return nil, fmt.Errorf("Build: reference site %d: %w", s, err)
		}
		o, err := c.siteInfo(opt, s)
		if err != nil {
			return nil, fmt.Errorf("Build: optimizing site %d: %w", s, err)
		}
		c.pairs[s] = Pair{Ref: r, Opt: o}
	}

	maxDim := ref.Book.MaxDimension()
	for l := range c.matchers {
		c.matchers[l] = symsec.NewMatcher(maxDim)
	}

	for b := range c.caches {
		rh, oh := ref.Book.Virtual(b), opt.Book.Virtual(b)
		cache := NewCache(rh, oh, cfg.capacityHint)
		if bd := tree.Bond(b); bd.IsBoundary() {
			cache.SetIdentity(c.matchers[0].Match(rh.Sectors(), oh.Sectors()))
			cache.toward = bd.From
			if bd.From == network.Boundary {
				cache.toward = bd.To
			}
		}
		c.caches[b] = cache
	}

	c.log.Info("overlap calculator built",
		zap.Int("sites", tree.NrSites()),
		zap.Int("bonds", tree.NrBonds()),
		zap.Int("maxDimension", maxDim),
		zap.Int("workers", cfg.workers),
	)
	if !cfg.customPrefactor && (ref.Book.NonAbelian() || opt.Book.NonAbelian()) {
		c.log.Warn("non-abelian symmetry with canonical prefactors; overlaps ignore recoupling coefficients",
			zap.String("groups", fmt.Sprint(ref.Book.Groups())),
		)
	}

	return c, nil
}

// checkTopology compares site, bond and physical counts.
func checkTopology(opt, ref State, tree *network.Tree) error {
	sites, bonds, phys := tree.NrSites(), tree.NrBonds(), tree.NrPhysical()
	for _, st := range []struct {
		name string
		s    State
	}{{"optimizing", opt}, {"reference", ref}} {
		if len(st.s.Tensors) != sites || st.s.Book.NrBonds() != bonds || st.s.Book.NrPhysical() != phys {
			return fmt.Errorf("Build: %s state has %d sites, %d bonds, %d physical; network %d, %d, %d: %w",
				st.name, len(st.s.Tensors), st.s.Book.NrBonds(), st.s.Book.NrPhysical(),
				sites, bonds, phys, ErrTopologyMismatch)
		}
	}
	return nil
}

// siteInfo wraps the tensor of site s in st with its leg descriptors.
func (c *Calculator) siteInfo(st State, s int) (*TensorInfo, error) {
	if st.Tensors[s] == nil {
		return nil, ErrNilState
	}
	return NewTensorInfo(st.Tensors[s], LegHandles(c.tree, st.Book, s), c.tree.IsPhysical(s))
}

// LegHandles resolves the descriptor handle of every leg of site s.
func LegHandles(tree *network.Tree, book *symsec.Bookkeeper, s int) [3]symsec.Handle {
	var hs [3]symsec.Handle
	for l, leg := range tree.Legs(s) {
		switch leg.Kind {
		case network.LegVirtual:
			hs[l] = book.Virtual(leg.Bond)
		case network.LegPhysical:
			hs[l] = book.Physical(leg.Bond)
		default:
			hs[l] = book.Trivial()
		}
	}
	return hs
}

// Tree returns the network.
func (c *Calculator) Tree() *network.Tree { return c.tree }

// Pair returns the info pair of site s.
func (c *Calculator) Pair(s int) Pair { return c.pairs[s] }

// Cache returns the overlap cache of bond b.
func (c *Calculator) Cache(b int) *Cache { return c.caches[b] }

// Logger returns the configured logger.
func (c *Calculator) Logger() *zap.Logger { return c.log }
