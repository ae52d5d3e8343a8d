package response

import (
	"rebate-ledger/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type EntryResponse struct {
	ID             string          `json:"id"`
	Store          string          `json:"store"`
	Item           string          `json:"item"`
	Savings        decimal.Decimal `json:"savings"`
	Fee            decimal.Decimal `json:"fee"`
	Net            decimal.Decimal `json:"net"`
	Date           string          `json:"date"`
	HasReceipt     bool            `json:"hasReceipt"`
	ReceiptDataURL *string         `json:"receiptDataUrl,omitempty"`
}

type EntryListResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Count   int              `json:"count"`
}

type CreateEntryResponse struct {
	ID string `json:"id"`
}

type TierProgressResponse struct {
	CurrentTier string          `json:"currentTier"`
	NextTarget  decimal.Decimal `json:"nextTarget"`
	Fraction    float64         `json:"fraction"`
}

type TierStatusResponse struct {
	Name    string          `json:"name"`
	Target  decimal.Decimal `json:"target"`
	Prize   string          `json:"prize"`
	Reached bool            `json:"reached"`
}

type DashboardResponse struct {
	GrossSavings decimal.Decimal      `json:"grossSavings"`
	TotalFees    decimal.Decimal      `json:"totalFees"`
	NetSavings   decimal.Decimal      `json:"netSavings"`
	EntryCount   int                  `json:"entryCount"`
	Progress     TierProgressResponse `json:"progress"`
	Tiers        []TierStatusResponse `json:"tiers"`
}

func FromEntryView(v *queries.EntryView) *EntryResponse {
	return &EntryResponse{
		ID:             v.ID,
		Store:          v.Store,
		Item:           v.Item,
		Savings:        v.Savings,
		Fee:            v.Fee,
		Net:            v.Net,
		Date:           v.Date,
		HasReceipt:     v.HasReceipt,
		ReceiptDataURL: v.Receipt,
	}
}

func FromEntryList(views []*queries.EntryView) *EntryListResponse {
	out := make([]*EntryResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromEntryView(v))
	}
	return &EntryListResponse{Entries: out, Count: len(out)}
}

func FromDashboardView(v *queries.DashboardView) *DashboardResponse {
	tiers := make([]TierStatusResponse, 0, len(v.Tiers))
	for _, t := range v.Tiers {
		tiers = append(tiers, TierStatusResponse{Name: t.Name, Target: t.Target, Prize: t.Prize, Reached: t.Reached})
	}
	return &DashboardResponse{
		GrossSavings: v.GrossSavings,
		TotalFees:    v.TotalFees,
		NetSavings:   v.NetSavings,
		EntryCount:   v.EntryCount,
		Progress: TierProgressResponse{
			CurrentTier: v.Progress.CurrentTierName,
			NextTarget:  v.Progress.NextTierTarget,
			Fraction:    v.Progress.ProgressFraction,
		},
		Tiers: tiers,
	}
}
