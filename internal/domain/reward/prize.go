package reward

import (
	"time"

	"rebate-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPrizeNotFound    = errs.NewNotFound("prize not found")
	ErrPrizeLocked      = errs.NewValidation("prize is not unlocked yet")
	ErrAlreadyRedeemed  = errs.NewValidation("prize has already been redeemed")
	ErrDuplicatePrizeID = errs.NewValidation("prize ids must be unique")
)

// Prize is unlocked once net savings reach its tier target.
type Prize struct {
	ID         string
	TierTarget decimal.Decimal
	Name       string
	Detail     string
}

func (p Prize) UnlockedAt(net decimal.Decimal) bool {
	return p.TierTarget.LessThanOrEqual(net)
}

// Redemption records one redeemed prize with snapshots of its name and target.
type Redemption struct {
	id         string
	prizeID    string
	prizeName  string
	tierTarget decimal.Decimal
	redeemedAt time.Time
}

func newRedemption(p Prize, now time.Time) *Redemption {
	return &Redemption{
		id:         uuid.NewString(),
		prizeID:    p.ID,
		prizeName:  p.Name,
		tierTarget: p.TierTarget,
		redeemedAt: now,
	}
}

func ReconstructRedemption(id, prizeID, prizeName string, tierTarget decimal.Decimal, redeemedAt time.Time) *Redemption {
	return &Redemption{
		id:         id,
		prizeID:    prizeID,
		prizeName:  prizeName,
		tierTarget: tierTarget,
		redeemedAt: redeemedAt,
	}
}

func (r *Redemption) ID() string                  { return r.id }
func (r *Redemption) PrizeID() string             { return r.prizeID }
func (r *Redemption) PrizeName() string           { return r.prizeName }
func (r *Redemption) TierTarget() decimal.Decimal { return r.tierTarget }
func (r *Redemption) RedeemedAt() time.Time       { return r.redeemedAt }
