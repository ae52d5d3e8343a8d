package tier

import (
	"rebate-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTable          = errs.NewValidation("tier table must contain at least one tier")
	ErrNegativeTarget      = errs.NewValidation("tier target must be non-negative")
	ErrTargetsNotAscending = errs.NewValidation("tier targets must be strictly increasing")
	ErrMissingName         = errs.NewValidation("tier name is required")
)

// Tier is a named savings threshold.
type Tier struct {
	Name   string
	Target decimal.Decimal
	Prize  string
}

// Table is an ordered, non-empty list of tiers with strictly increasing targets.
type Table struct {
	tiers []Tier
}

func NewTable(tiers []Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyTable
	}
	for i, t := range tiers {
		if t.Name == "" {
			return nil, errs.Wrapf(ErrMissingName, "tier #%d", i)
		}
		if t.Target.IsNegative() {
			return nil, errs.Wrapf(ErrNegativeTarget, "tier %q", t.Name)
		}
		if i > 0 && !t.Target.GreaterThan(tiers[i-1].Target) {
			return nil, errs.Wrapf(ErrTargetsNotAscending, "tier %q", t.Name)
		}
	}
	cp := make([]Tier, len(tiers))
	copy(cp, tiers)
	return &Table{tiers: cp}, nil
}

func (t *Table) Tiers() []Tier {
	cp := make([]Tier, len(t.tiers))
	copy(cp, t.tiers)
	return cp
}

func (t *Table) Len() int { return len(t.tiers) }

func (t *Table) Last() Tier { return t.tiers[len(t.tiers)-1] }

// HasTarget reports whether some tier uses exactly this target.
func (t *Table) HasTarget(target decimal.Decimal) bool {
	for _, tr := range t.tiers {
		if tr.Target.Equal(target) {
			return true
		}
	}
	return false
}
