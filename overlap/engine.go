// SPDX-License-Identifier: MIT

package overlap

// Variant tells the overlap engines apart.
type Variant uint8

const (
	// VariantGeneric is the bare Calculator: link lookup and contractions.
	VariantGeneric Variant = iota
	// VariantTwoSite adds the two-site center state machine.
	VariantTwoSite
)

// String names the variant.
func (v Variant) String() string {
	if v == VariantTwoSite {
		return "two-site"
	}
	return "generic"
}

// Engine is implemented by *Calculator and *TwoSite only.
type Engine interface {
	Variant() Variant
	Calc() *Calculator
	sealed()
}

// Compile-time assertions.
var (
	_ Engine = (*Calculator)(nil)
	_ Engine = (*TwoSite)(nil)
)

// Variant reports VariantGeneric.
func (c *Calculator) Variant() Variant { return VariantGeneric }

// Calc returns c.
func (c *Calculator) Calc() *Calculator { return c }

func (c *Calculator) sealed() {}

// Variant reports VariantTwoSite.
func (t *TwoSite) Variant() Variant { return VariantTwoSite }
