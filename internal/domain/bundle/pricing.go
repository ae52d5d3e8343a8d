package bundle

import "github.com/shopspring/decimal"

type Quote struct {
	Count    int
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Fee      decimal.Decimal
	Total    decimal.Decimal
}

// PriceSelection prices the items whose sku is in skus. Duplicate or unknown
// skus contribute nothing. The discount may exceed the subtotal but the
// discounted amount is floored at zero before the fee is added.
func PriceSelection(items []Item, skus []string, discount, fee decimal.Decimal) (Quote, error) {
	if discount.IsNegative() {
		return Quote{}, ErrNegativeDiscount
	}
	if fee.IsNegative() {
		return Quote{}, ErrNegativeFee
	}

	chosen := selected(items, skus)
	subtotal := decimal.Zero
	for _, it := range chosen {
		subtotal = subtotal.Add(it.Price)
	}

	return Quote{
		Count:    len(chosen),
		Subtotal: subtotal,
		Discount: discount,
		Fee:      fee,
		Total:    decimal.Max(decimal.Zero, subtotal.Sub(discount)).Add(fee),
	}, nil
}

// selected keeps catalog order, not selection order.
func selected(items []Item, skus []string) []Item {
	want := make(map[string]struct{}, len(skus))
	for _, s := range skus {
		want[s] = struct{}{}
	}
	out := make([]Item, 0, len(skus))
	for _, it := range items {
		if _, ok := want[it.SKU]; ok {
			out = append(out, it)
		}
	}
	return out
}
