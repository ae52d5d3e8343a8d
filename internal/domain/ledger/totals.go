package ledger

import "github.com/shopspring/decimal"

type Totals struct {
	Gross decimal.Decimal
	Fees  decimal.Decimal
	Net   decimal.Decimal
}

func ComputeTotals(entries []*Entry) Totals {
	gross := decimal.Zero
	fees := decimal.Zero
	for _, e := range entries {
		if e == nil {
			continue
		}
		gross = gross.Add(e.savings)
		fees = fees.Add(e.fee)
	}
	return Totals{
		Gross: gross,
		Fees:  fees,
		Net:   gross.Sub(fees),
	}
}

func NetSavings(entries []*Entry) decimal.Decimal {
	return ComputeTotals(entries).Net
}
