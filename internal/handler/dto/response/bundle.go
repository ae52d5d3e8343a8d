package response

import (
	"time"

	"rebate-ledger/internal/domain/bundle"
	"rebate-ledger/internal/usecase/commands"
	"rebate-ledger/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ItemResponse struct {
	SKU   string          `json:"sku"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type CategoryResponse struct {
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}

type ManufacturerResponse struct {
	Name       string             `json:"name"`
	Categories []CategoryResponse `json:"categories"`
}

type CatalogResponse struct {
	Manufacturers []ManufacturerResponse `json:"manufacturers"`
}

type QuoteResponse struct {
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Fee      decimal.Decimal `json:"fee"`
	Total    decimal.Decimal `json:"total"`
}

type BundleResponse struct {
	ID           string         `json:"id"`
	Date         time.Time      `json:"date"`
	Manufacturer string         `json:"manufacturer"`
	Category     string         `json:"category"`
	Items        []ItemResponse `json:"items"`
	QuoteResponse
}

type BundleListResponse struct {
	Bundles []*BundleResponse `json:"bundles"`
}

type SaveBundleResponse struct {
	ID string `json:"id"`
	QuoteResponse
}

func FromCatalog(tree []bundle.Manufacturer) (*CatalogResponse, error) {
	resp := &CatalogResponse{Manufacturers: []ManufacturerResponse{}}
	if err := copier.Copy(&resp.Manufacturers, &tree); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromQuote(q *bundle.Quote) *QuoteResponse {
	return &QuoteResponse{
		Count:    q.Count,
		Subtotal: q.Subtotal,
		Discount: q.Discount,
		Fee:      q.Fee,
		Total:    q.Total,
	}
}

func FromBundleView(v *queries.BundleView) (*BundleResponse, error) {
	resp := &BundleResponse{
		ID:            v.ID,
		Date:          v.CreatedAt,
		Manufacturer:  v.Manufacturer,
		Category:      v.Category,
		Items:         []ItemResponse{},
		QuoteResponse: *FromQuote(&v.Quote),
	}
	if err := copier.Copy(&resp.Items, &v.Items); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromBundleList(views []*queries.BundleView) (*BundleListResponse, error) {
	out := make([]*BundleResponse, 0, len(views))
	for _, v := range views {
		b, err := FromBundleView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return &BundleListResponse{Bundles: out}, nil
}

func FromSaveBundleResult(r *commands.SaveBundleResult) *SaveBundleResponse {
	return &SaveBundleResponse{ID: r.BundleID, QuoteResponse: *FromQuote(&r.Quote)}
}
