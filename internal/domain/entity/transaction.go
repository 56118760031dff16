package entity

import "time"

// Transaction is a pre-populated sales record. The API never creates,
// updates or deletes transactions.
type Transaction struct {
	ID          uint
	Title       string
	Description string
	Price       float64
	Category    string
	Image       string
	Sold        bool
	DateOfSale  time.Time
	StoreID     *uint
	CreatedAt   time.Time
}

// TransactionStatistics aggregates sold/unsold totals, optionally scoped to a
// calendar month. All values default to zero when nothing matches.
type TransactionStatistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int64   `json:"totalSoldItems"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems"`
}

// PriceRangeCount is one fixed price band of the bar chart.
type PriceRangeCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// CategoryCount is one slice of the pie chart. Only categories present in
// the data are reported.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
