package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ImageSlots is the number of images a product can carry.
const ImageSlots = 3

// Product is a listing owned by a seller.
type Product struct {
	ProductID     int64
	SellerID      int64
	Name          string
	Price         decimal.Decimal
	Images        [ImageSlots]*string
	Verified      bool
	HistorianName *string
	HistorianType *string
	Category      string
	Description   string
	Visits        int
	Archived      bool
	CreatedAt     time.Time
}

// ProductCard is the list projection used by browse pages.
type ProductCard struct {
	ProductID   int64
	Name        string
	Price       decimal.Decimal
	Images      [ImageSlots]*string
	Verified    bool
	Description string
	Category    string
	ViewCount   int
	Archived    bool
}

// ProductDetail adds storefront data to a product.
type ProductDetail struct {
	Product
	StoreName           string
	BusinessAddress     string
	BusinessDescription string
}

// ProductDraft carries validated product fields for create and edit.
type ProductDraft struct {
	SellerID      int64
	Name          string
	Price         decimal.Decimal
	Verified      bool
	HistorianName string
	HistorianType string
	Category      string
	Description   string
}

// HistorianFields returns the historian columns, which are only kept for verified items.
func (d ProductDraft) HistorianFields() (*string, *string) {
	if !d.Verified {
		return nil, nil
	}
	name := strings.TrimSpace(d.HistorianName)
	kind := strings.TrimSpace(d.HistorianType)
	return &name, &kind
}

// NeedsHistorian reports whether a verified draft is missing historian details.
func (d ProductDraft) NeedsHistorian() bool {
	return d.Verified && (strings.TrimSpace(d.HistorianName) == "" || strings.TrimSpace(d.HistorianType) == "")
}

// ImageAction describes what an edit does with one image slot.
type ImageAction int

const (
	ImageKeep ImageAction = iota
	ImageReplace
	ImageDelete
)

// ImageChange is the per-slot instruction for an edit.
type ImageChange struct {
	Action ImageAction
	Key    string // new object key when Action is ImageReplace
}

// ProductUpdate is a validated edit. Slot changes are resolved against the
// stored row inside the update transaction.
type ProductUpdate struct {
	Draft   ProductDraft
	Changes [ImageSlots]ImageChange
}

// ProductQuery narrows product listings. The zero value lists every active
// product.
type ProductQuery struct {
	SellerID *int64
	Archived bool
	Term     string
}

// IsVerifiedFlag parses the form value used by the listing form ("yes"/"no").
func IsVerifiedFlag(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "yes")
}
