package tier

import "github.com/shopspring/decimal"

type Progress struct {
	CurrentTierName string
	NextTierTarget  decimal.Decimal
	// Fraction of the way from the previous target to the next one, in [0, 1]
	Fraction float64
}

type Status struct {
	Tier
	Reached bool
}

// Progress locates net savings against the table.
//
// The next tier is the first one whose target is above net, or the last tier
// once every target is met. The current name is the tier just below the next
// one, except that below the first target it is the first tier's name and at
// or past the last target it is the last tier's name.
func (t *Table) Progress(net decimal.Decimal) Progress {
	last := len(t.tiers) - 1

	idx := last
	for i, tr := range t.tiers {
		if net.LessThan(tr.Target) {
			idx = i
			break
		}
	}

	prev := decimal.Zero
	if idx > 0 {
		prev = t.tiers[idx-1].Target
	}
	next := t.tiers[idx].Target

	var name string
	switch {
	case net.GreaterThanOrEqual(t.tiers[last].Target):
		name = t.tiers[last].Name
	case idx <= 0:
		name = t.tiers[0].Name
	default:
		name = t.tiers[idx-1].Name
	}

	return Progress{
		CurrentTierName: name,
		NextTierTarget:  next,
		Fraction:        fraction(net, prev, next),
	}
}

func fraction(net, prev, next decimal.Decimal) float64 {
	span := next.Sub(prev)
	if !span.IsPositive() {
		return 1
	}
	f := net.Sub(prev).Div(span)
	switch {
	case f.IsNegative():
		return 0
	case f.GreaterThan(decimal.NewFromInt(1)):
		return 1
	}
	v, _ := f.Float64()
	return v
}

// Statuses lists every tier with whether net has reached its target.
func (t *Table) Statuses(net decimal.Decimal) []Status {
	out := make([]Status, 0, len(t.tiers))
	for _, tr := range t.tiers {
		out = append(out, Status{
			Tier:    tr,
			Reached: net.GreaterThanOrEqual(tr.Target),
		})
	}
	return out
}
