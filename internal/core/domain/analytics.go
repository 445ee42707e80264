package domain

import "github.com/shopspring/decimal"

// MonthsPerYear sizes the monthly series returned by analytics.
const MonthsPerYear = 12

// NotAvailable is shown when an aggregate has no data.
const NotAvailable = "N/A"

// CategoryCount is one slice of the seller's category pie.
type CategoryCount struct {
	Category string
	Count    int
}

// TopItem is the seller's most viewed product.
type TopItem struct {
	ProductName string
	Description string
	ImagePath   *string
	Visits      int
}

// SellerStats is the seller dashboard summary.
type SellerStats struct {
	BusinessName   string
	TotalProducts  int
	Visitors       int
	Trending       string
	Popular        string
	Categories     []CategoryCount
	MostViewedItem TopItem
	VisitsByMonth  [MonthsPerYear]int
}

// CategoryRevenue is completed-order revenue grouped by category.
type CategoryRevenue struct {
	Category string
	Revenue  decimal.Decimal
	Orders   int
}

// ProductRevenue is completed-order revenue for one product.
type ProductRevenue struct {
	ProductName string
	Category    string
	Revenue     decimal.Decimal
	Orders      int
}

// SellerRevenue is the seller revenue dashboard.
type SellerRevenue struct {
	BusinessName      string
	RevenueByCategory []CategoryRevenue
	MonthlyRevenue    [MonthsPerYear]decimal.Decimal
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	TopProducts       []ProductRevenue
}

// MonthlyBucket is a raw (month, value) aggregate row.
type MonthlyBucket[T any] struct {
	Month int
	Value T
}

// FillMonths spreads month buckets (1..12) into a fixed series. Out of range
// months are ignored.
func FillMonths[T any](buckets []MonthlyBucket[T]) [MonthsPerYear]T {
	var out [MonthsPerYear]T
	for _, b := range buckets {
		if b.Month >= 1 && b.Month <= MonthsPerYear {
			out[b.Month-1] = b.Value
		}
	}
	return out
}

// CleanupTask is a queued file deletion.
type CleanupTask struct {
	ID        int64
	ObjectKey string
	Attempts  int
}
