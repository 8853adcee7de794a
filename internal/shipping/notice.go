// Package shipping aggregates individual shippable units into the shipment
// notice printed during checkout.
package shipping

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Item is one individual unit that has to be shipped. A cart line with
// quantity N contributes N items when its product requires shipping.
type Item interface {
	Name() string
	Weight() decimal.Decimal
}

// Group is the per-name aggregation in a notice. UnitWeight is assumed
// uniform across units with the same name.
type Group struct {
	Name       string
	Count      int
	UnitWeight decimal.Decimal
}

// WeightGrams is the unit weight expressed in grams, truncated toward zero.
func (g Group) WeightGrams() int64 {
	return g.UnitWeight.Mul(decimal.NewFromInt(1000)).IntPart()
}

// Notice is the shipment manifest for a single checkout.
type Notice struct {
	Groups      []Group
	TotalWeight decimal.Decimal
}

// BuildNotice groups the units by product name. Groups keep first-seen
// order so the notice is deterministic. Returns ok=false when there is
// nothing to ship, in which case no notice block is emitted at all.
func BuildNotice(items []Item) (Notice, bool) {
	if len(items) == 0 {
		return Notice{}, false
	}

	index := make(map[string]int)
	n := Notice{TotalWeight: decimal.Zero}

	for _, item := range items {
		n.TotalWeight = n.TotalWeight.Add(item.Weight())

		if i, ok := index[item.Name()]; ok {
			n.Groups[i].Count++
			continue
		}
		index[item.Name()] = len(n.Groups)
		n.Groups = append(n.Groups, Group{
			Name:       item.Name(),
			Count:      1,
			UnitWeight: item.Weight(),
		})
	}

	return n, true
}

// Render writes the notice block:
//
//	** Shipment notice **
//	2x Cheese 400g
//	1x Biscuits 700g
//	Total package weight 1.5kg
//
// The total weight is printed at full precision, never truncated.
func (n Notice) Render(w io.Writer) {
	fmt.Fprintln(w, "** Shipment notice **")
	for _, g := range n.Groups {
		fmt.Fprintf(w, "%dx %s %dg\n", g.Count, g.Name, g.WeightGrams())
	}
	fmt.Fprintf(w, "Total package weight %skg\n", n.TotalWeight.String())
}
