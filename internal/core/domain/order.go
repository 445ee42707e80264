package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending  OrderStatus = "Pending"
	OrderComplete OrderStatus = "Complete"
)

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	return s == OrderPending || s == OrderComplete
}

// Order records a captured payment. Name and price are snapshots taken at
// capture time.
type Order struct {
	OrderID             int64
	UserID              int64 // buyer's customer id
	ProductID           int64
	ProductName         string
	Price               decimal.Decimal
	DownPayment         decimal.Decimal
	RemainingPayment    decimal.Decimal
	Status              OrderStatus
	PaypalTransactionID *string
	PayerName           *string
	OrderDate           time.Time
	ImagePath           *string // product image1, joined on reads
}

// BuyerContact is the customer block attached to seller order listings.
type BuyerContact struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
}

// SellerOrder is an order as seen by the seller who owns the product.
type SellerOrder struct {
	Order
	Customer BuyerContact
}

// Purchase is an order row in the admin transaction report.
type Purchase struct {
	OrderID         int64
	ProductID       int64
	ItemName        string
	Buyer           string
	Date            time.Time
	BusinessName    string
	BusinessAddress string
	Price           decimal.Decimal
	Status          OrderStatus
	TransactionID   *string
}

// BuyerDisplayName picks the buyer label for purchase reports.
func BuyerDisplayName(first, last, payer *string) string {
	name := ""
	if first != nil {
		name = *first
	}
	if last != nil {
		if name != "" {
			name += " "
		}
		name += *last
	}
	if name != "" {
		return name
	}
	if payer != nil && *payer != "" {
		return *payer
	}
	return "Unknown"
}
