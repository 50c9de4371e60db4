package models

import "time"

// PricePoint is one ingested quote for a symbol. Funds report no volume and
// may omit the daily change.
type PricePoint struct {
	ID        int64
	Symbol    string
	Type      string
	Price     float64
	ChangePct *float64
	Volume    *int64
	FetchedAt time.Time
}
