package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/utils"
)

// VisitStoreRequest records a storefront visit.
type VisitStoreRequest struct {
	CustomerID int64 `json:"customer_id" binding:"required,gt=0"`
	SellerID   int64 `json:"seller_id" binding:"required,gt=0"`
}

// TrackProductViewRequest records a product view.
type TrackProductViewRequest struct {
	ProductID  int64  `json:"product_id" binding:"required,gt=0"`
	CustomerID *int64 `json:"customer_id"`
}

// TrackProductViewResponse carries the updated view count.
type TrackProductViewResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ViewCount int    `json:"viewCount"`
}

// CategoryCountResponse is a pie slice.
type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TopItemResponse is the most viewed product.
type TopItemResponse struct {
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Image1Path  *string `json:"image1_path"`
	Visits      int     `json:"visits"`
}

// SellerStatsResponse is the seller dashboard.
type SellerStatsResponse struct {
	BusinessName   string                    `json:"businessName"`
	TotalProducts  int                       `json:"totalProducts"`
	Visitors       int                       `json:"visitors"`
	Trending       string                    `json:"trending"`
	Popular        string                    `json:"popular"`
	Categories     []CategoryCountResponse   `json:"categories"`
	MostViewedItem TopItemResponse           `json:"mostViewedItem"`
	VisitsByMonth  [domain.MonthsPerYear]int `json:"visitsByMonth"`
}

// ToSellerStatsResponse converts dashboard stats.
func ToSellerStatsResponse(s *domain.SellerStats) SellerStatsResponse {
	cats := make([]CategoryCountResponse, len(s.Categories))
	for i, c := range s.Categories {
		cats[i] = CategoryCountResponse{Category: c.Category, Count: c.Count}
	}
	return SellerStatsResponse{
		BusinessName:  s.BusinessName,
		TotalProducts: s.TotalProducts,
		Visitors:      s.Visitors,
		Trending:      s.Trending,
		Popular:       s.Popular,
		Categories:    cats,
		MostViewedItem: TopItemResponse{
			ProductName: s.MostViewedItem.ProductName,
			Description: s.MostViewedItem.Description,
			Image1Path:  utils.PublicUploadPath(s.MostViewedItem.ImagePath),
			Visits:      s.MostViewedItem.Visits,
		},
		VisitsByMonth: s.VisitsByMonth,
	}
}

// CategoryRevenueResponse is revenue grouped by category.
type CategoryRevenueResponse struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Orders   int             `json:"orders"`
}

// ProductRevenueResponse is revenue for one product.
type ProductRevenueResponse struct {
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Revenue     decimal.Decimal `json:"revenue"`
	Orders      int             `json:"orders"`
}

// SellerRevenueResponse is the revenue dashboard.
type SellerRevenueResponse struct {
	BusinessName      string                                `json:"businessName"`
	RevenueByCategory []CategoryRevenueResponse             `json:"revenueByCategory"`
	MonthlyRevenue    [domain.MonthsPerYear]decimal.Decimal `json:"monthlyRevenue"`
	TotalRevenue      decimal.Decimal                       `json:"totalRevenue"`
	TotalOrders       int                                   `json:"totalOrders"`
	TopProducts       []ProductRevenueResponse              `json:"topProducts"`
}

// ToSellerRevenueResponse converts the revenue dashboard.
func ToSellerRevenueResponse(r *domain.SellerRevenue) SellerRevenueResponse {
	byCat := make([]CategoryRevenueResponse, len(r.RevenueByCategory))
	for i, c := range r.RevenueByCategory {
		byCat[i] = CategoryRevenueResponse{Category: c.Category, Revenue: c.Revenue, Orders: c.Orders}
	}
	top := make([]ProductRevenueResponse, len(r.TopProducts))
	for i, p := range r.TopProducts {
		top[i] = ProductRevenueResponse{ProductName: p.ProductName, Category: p.Category, Revenue: p.Revenue, Orders: p.Orders}
	}
	return SellerRevenueResponse{
		BusinessName:      r.BusinessName,
		RevenueByCategory: byCat,
		MonthlyRevenue:    r.MonthlyRevenue,
		TotalRevenue:      r.TotalRevenue,
		TotalOrders:       r.TotalOrders,
		TopProducts:       top,
	}
}
