package repository

import (
	"bytes"
	"log/slog"
	"time"

	"rebate-ledger/internal/infra"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// amount is stored as a bare JSON number. Missing, null, non-numeric or
// non-finite values decode as zero.
type amount decimal.Decimal

func (a amount) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a *amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	b = bytes.Trim(b, `"`)
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		*a = amount(decimal.Zero)
		return nil
	}
	*a = amount(d)
	return nil
}

func (a amount) decimal() decimal.Decimal { return decimal.Decimal(a) }

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// decodeRecords decodes each element independently and drops the ones that
// are not objects of the expected shape.
func decodeRecords[T any](logger *slog.Logger, key string, raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))
	for i, elem := range raw {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			continue
		}
		var rec T
		if err := json.Unmarshal(elem, &rec); err != nil {
			logger.Warn("skipping malformed record",
				slog.String("kind", string(infra.KindCorrupt)),
				slog.String("key", key),
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, rec)
	}
	return out
}
