package response

import (
	"time"

	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PrizeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Detail     string          `json:"detail"`
	TierTarget decimal.Decimal `json:"tierTarget"`
	Status     string          `json:"status"`
}

type RedemptionResponse struct {
	ID         string          `json:"id"`
	PrizeID    string          `json:"prizeId"`
	PrizeName  string          `json:"prizeName"`
	TierTarget decimal.Decimal `json:"tierTarget"`
	Date       time.Time       `json:"date"`
}

type RewardsResponse struct {
	NetSavings decimal.Decimal      `json:"netSavings"`
	Unlocked   int                  `json:"unlocked"`
	Redeemed   int                  `json:"redeemed"`
	Available  int                  `json:"available"`
	Prizes     []PrizeResponse      `json:"prizes"`
	History    []RedemptionResponse `json:"history"`
}

type RedeemResponse struct {
	ID        string `json:"id"`
	PrizeID   string `json:"prizeId"`
	PrizeName string `json:"prizeName"`
}

func FromRewardsOverview(v *queries.RewardsOverview) *RewardsResponse {
	prizes := make([]PrizeResponse, 0, len(v.Prizes))
	for _, p := range v.Prizes {
		prizes = append(prizes, PrizeResponse{
			ID:         p.ID,
			Name:       p.Name,
			Detail:     p.Detail,
			TierTarget: p.TierTarget,
			Status:     p.Status,
		})
	}
	history := make([]RedemptionResponse, 0, len(v.History))
	for _, r := range v.History {
		history = append(history, RedemptionResponse{
			ID:         r.ID,
			PrizeID:    r.PrizeID,
			PrizeName:  r.PrizeName,
			TierTarget: r.TierTarget,
			Date:       r.RedeemedAt,
		})
	}
	return &RewardsResponse{
		NetSavings: v.NetSavings,
		Unlocked:   v.Counts.Unlocked,
		Redeemed:   v.Counts.Redeemed,
		Available:  v.Counts.Available,
		Prizes:     prizes,
		History:    history,
	}
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{ID: r.RedemptionID, PrizeID: r.PrizeID, PrizeName: r.PrizeName}
}
