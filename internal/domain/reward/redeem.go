package reward

import (
	"time"

	"rebate-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Counts struct {
	Unlocked  int
	Redeemed  int
	Available int
}

// Catalog is the configured prize table in display order.
type Catalog struct {
	prizes []Prize
}

func NewCatalog(prizes []Prize) (*Catalog, error) {
	seen := make(map[string]struct{}, len(prizes))
	for _, p := range prizes {
		if _, dup := seen[p.ID]; dup {
			return nil, errs.Wrapf(ErrDuplicatePrizeID, "prize %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	cp := make([]Prize, len(prizes))
	copy(cp, prizes)
	return &Catalog{prizes: cp}, nil
}

func (c *Catalog) Prizes() []Prize {
	cp := make([]Prize, len(c.prizes))
	copy(cp, c.prizes)
	return cp
}

func (c *Catalog) Find(id string) (Prize, error) {
	for _, p := range c.prizes {
		if p.ID == id {
			return p, nil
		}
	}
	return Prize{}, ErrPrizeNotFound
}

// Unlocked returns the ids of prizes whose target is at or below net.
func (c *Catalog) Unlocked(net decimal.Decimal) map[string]struct{} {
	out := make(map[string]struct{})
	for _, p := range c.prizes {
		if p.UnlockedAt(net) {
			out[p.ID] = struct{}{}
		}
	}
	return out
}

// Available returns unlocked prize ids that have no redemption yet.
func (c *Catalog) Available(net decimal.Decimal, history []*Redemption) map[string]struct{} {
	redeemed := RedeemedIDs(history)
	out := c.Unlocked(net)
	for id := range out {
		if _, ok := redeemed[id]; ok {
			delete(out, id)
		}
	}
	return out
}

func (c *Catalog) Summarize(net decimal.Decimal, history []*Redemption) Counts {
	return Counts{
		Unlocked:  len(c.Unlocked(net)),
		Redeemed:  len(history),
		Available: len(c.Available(net, history)),
	}
}

func RedeemedIDs(history []*Redemption) map[string]struct{} {
	out := make(map[string]struct{}, len(history))
	for _, r := range history {
		out[r.prizeID] = struct{}{}
	}
	return out
}

// Redeem returns a new history with a record for p prepended. The input
// history is left untouched when redemption is refused.
func Redeem(p Prize, net decimal.Decimal, history []*Redemption, now time.Time) ([]*Redemption, *Redemption, error) {
	if !p.UnlockedAt(net) {
		return nil, nil, ErrPrizeLocked
	}
	if _, ok := RedeemedIDs(history)[p.ID]; ok {
		return nil, nil, ErrAlreadyRedeemed
	}

	rec := newRedemption(p, now)
	out := make([]*Redemption, 0, len(history)+1)
	out = append(out, rec)
	out = append(out, history...)
	return out, rec, nil
}
