package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/utils"
)

// ProductForm is the multipart body of create and edit. Image files arrive
// as image1..image3 parts.
type ProductForm struct {
	SellerID      int64  `form:"seller_id"`
	ProductName   string `form:"product_name"`
	Price         string `form:"price"`
	Verified      string `form:"verified"`
	Description   string `form:"description"`
	HistorianName string `form:"Historian_Name"`
	HistorianType string `form:"Historian_Type"`
	Category      string `form:"category"`
	Image1Action  string `form:"image1_action"`
	Image2Action  string `form:"image2_action"`
	Image3Action  string `form:"image3_action"`
}

// ImageActions returns the per-slot action strings.
func (f ProductForm) ImageActions() [domain.ImageSlots]string {
	return [domain.ImageSlots]string{f.Image1Action, f.Image2Action, f.Image3Action}
}

// ProductCardResponse is a listing entry.
type ProductCardResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Image1Path  *string         `json:"image1_path"`
	Image2Path  *string         `json:"image2_path,omitempty"`
	Image3Path  *string         `json:"image3_path,omitempty"`
	Verified    bool            `json:"verified"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	ViewCount   int             `json:"view_count"`
	Archived    bool            `json:"archived"`
}

// ToProductCardResponses converts listing rows, normalising image paths.
func ToProductCardResponses(cards []domain.ProductCard) []ProductCardResponse {
	out := make([]ProductCardResponse, len(cards))
	for i, c := range cards {
		out[i] = ProductCardResponse{
			ProductID:   c.ProductID,
			ProductName: c.Name,
			Price:       c.Price,
			Image1Path:  utils.PublicUploadPath(c.Images[0]),
			Image2Path:  utils.PublicUploadPath(c.Images[1]),
			Image3Path:  utils.PublicUploadPath(c.Images[2]),
			Verified:    c.Verified,
			Description: c.Description,
			Category:    c.Category,
			ViewCount:   c.ViewCount,
			Archived:    c.Archived,
		}
	}
	return out
}

// ProductResponse is a full product, used by edit and detail pages.
type ProductResponse struct {
	ProductID           int64           `json:"product_id"`
	SellerID            int64           `json:"seller_id"`
	ProductName         string          `json:"product_name"`
	Price               decimal.Decimal `json:"price"`
	Image1Path          *string         `json:"image1_path"`
	Image2Path          *string         `json:"image2_path"`
	Image3Path          *string         `json:"image3_path"`
	Verified            bool            `json:"verified"`
	Description         string          `json:"description"`
	HistorianName       *string         `json:"Historian_Name"`
	HistorianType       *string         `json:"Historian_Type"`
	Category            string          `json:"category"`
	Visits              int             `json:"visits"`
	Archived            bool            `json:"archived"`
	StoreName           string          `json:"store_name,omitempty"`
	BusinessAddress     string          `json:"business_address,omitempty"`
	BusinessDescription string          `json:"business_description,omitempty"`
}

// ToProductResponse converts a product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		SellerID:      p.SellerID,
		ProductName:   p.Name,
		Price:         p.Price,
		Image1Path:    utils.PublicUploadPath(p.Images[0]),
		Image2Path:    utils.PublicUploadPath(p.Images[1]),
		Image3Path:    utils.PublicUploadPath(p.Images[2]),
		Verified:      p.Verified,
		Description:   p.Description,
		HistorianName: p.HistorianName,
		HistorianType: p.HistorianType,
		Category:      p.Category,
		Visits:        p.Visits,
		Archived:      p.Archived,
	}
}

// ToProductDetailResponse adds the storefront block to a product.
func ToProductDetailResponse(d *domain.ProductDetail) ProductResponse {
	resp := ToProductResponse(&d.Product)
	resp.StoreName = d.StoreName
	resp.BusinessAddress = d.BusinessAddress
	resp.BusinessDescription = d.BusinessDescription
	return resp
}

// CheckoutResponse is the minimal product block for checkout.
type CheckoutResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Image1Path  *string         `json:"image1_path"`
}

// ToCheckoutResponse converts a product to the checkout DTO.
func ToCheckoutResponse(p *domain.Product) CheckoutResponse {
	return CheckoutResponse{
		ProductID:   p.ProductID,
		ProductName: p.Name,
		Price:       p.Price,
		Image1Path:  utils.PublicUploadPath(p.Images[0]),
	}
}

// CreateProductResponse is returned with 201 Created.
type CreateProductResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ItemID  int64  `json:"itemId"`
}

// ArchiveRequest names the acting seller. It falls back to the token's seller.
type ArchiveRequest struct {
	SellerID int64 `json:"sellerId"`
}

// SearchParams are the header search query parameters.
type SearchParams struct {
	Q          string `form:"q"`
	Seller     *int64 `form:"seller"`
	CustomerID *int64 `form:"customerId"`
}

// SearchResponse carries matches and the optional customer avatar.
type SearchResponse struct {
	Status     string                `json:"status"`
	Data       []ProductCardResponse `json:"data"`
	ProfilePic *string               `json:"profile_pic"`
}
