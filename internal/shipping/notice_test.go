package shipping

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

type unit struct {
	name   string
	weight decimal.Decimal
}

func (u unit) Name() string { return u.name }
func (u unit) Weight() decimal.Decimal { return u.weight }

func kg(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestBuildNoticeEmpty(t *testing.T) {
	if _, ok := BuildNotice(nil); ok {
		t.Fatal("empty input must produce no notice")
	}
}

func TestBuildNoticeGroupsFirstSeen(t *testing.T) {
	items := []Item{
		unit{"Cheese", kg(0.4)},
		unit{"Cheese", kg(0.4)},
		unit{"Biscuits", kg(0.7)},
	}

	n, ok := BuildNotice(items)
	if !ok {
		t.Fatal("expected a notice")
	}

	if len(n.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(n.Groups))
	}
	if n.Groups[0].Name != "Cheese" || n.Groups[0].Count != 2 {
		t.Fatalf("first group = %+v, want 2x Cheese", n.Groups[0])
	}
	if n.Groups[1].Name != "Biscuits" || n.Groups[1].Count != 1 {
		t.Fatalf("second group = %+v, want 1x Biscuits", n.Groups[1])
	}

	want := decimal.NewFromFloat(1.5)
	if !n.TotalWeight.Equal(want) {
		t.Fatalf("TotalWeight = %s, want %s", n.TotalWeight, want)
	}
}

func TestWeightGramsTruncates(t *testing.T) {
	g := Group{Name: "Nuts", Count: 1, UnitWeight: decimal.NewFromFloat(0.2599)}
	if got := g.WeightGrams(); got != 259 {
		t.Fatalf("WeightGrams() = %d, want 259 (truncated toward zero)", got)
	}
}

func TestRender(t *testing.T) {
	items := []Item{
		unit{"Cheese", kg(0.4)},
		unit{"Cheese", kg(0.4)},
		unit{"Biscuits", kg(0.7)},
	}

	n, ok := BuildNotice(items)
	if !ok {
		t.Fatal("expected a notice")
	}

	var buf strings.Builder
	n.Render(&buf)

	want := "** Shipment notice **\n" +
		"2x Cheese 400g\n" +
		"1x Biscuits 700g\n" +
		"Total package weight 1.5kg\n"
	if buf.String() != want {
		t.Fatalf("rendered notice:\n%s\nwant:\n%s", buf.String(), want)
	}
}
