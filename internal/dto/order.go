package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/utils"
)

// CreateOrderRequest is posted after a successful payment capture.
type CreateOrderRequest struct {
	UserID              int64           `json:"user_id" binding:"required,gt=0"`
	ProductID           int64           `json:"product_id" binding:"required,gt=0"`
	ProductName         string          `json:"product_name" binding:"required,notblank"`
	Price               decimal.Decimal `json:"price"`
	DownPayment         decimal.Decimal `json:"down_payment"`
	RemainingPayment    decimal.Decimal `json:"remaining_payment"`
	PaypalTransactionID *string         `json:"paypal_transaction_id"`
	PayerName           *string         `json:"payer_name"`
}

// CreateOrderResponse returns the new order id.
type CreateOrderResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// UpdateOrderStatusRequest is sent by the seller who owns the product.
type UpdateOrderStatusRequest struct {
	Status   domain.OrderStatus `json:"status" binding:"required,oneof=Pending Complete"`
	SellerID int64              `json:"sellerId"`
}

// OrderResponse is an order as returned to buyers and sellers.
type OrderResponse struct {
	OrderID             int64                 `json:"order_id"`
	UserID              int64                 `json:"user_id"`
	ProductID           int64                 `json:"product_id"`
	ProductName         string                `json:"product_name"`
	Price               decimal.Decimal       `json:"price"`
	DownPayment         decimal.Decimal       `json:"down_payment"`
	RemainingPayment    decimal.Decimal       `json:"remaining_payment"`
	Status              domain.OrderStatus    `json:"status"`
	OrderDate           time.Time             `json:"order_date"`
	PaypalTransactionID *string               `json:"paypal_transaction_id"`
	PayerName           *string               `json:"payer_name"`
	ImagePath           *string               `json:"image_path"`
	Customer            *BuyerContactResponse `json:"customer,omitempty"`
}

// BuyerContactResponse is the buyer block on seller orders.
type BuyerContactResponse struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// OrdersResponse wraps order lists.
type OrdersResponse struct {
	Status string          `json:"status"`
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts an order to its response DTO.
func ToOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:             o.OrderID,
		UserID:              o.UserID,
		ProductID:           o.ProductID,
		ProductName:         o.ProductName,
		Price:               o.Price,
		DownPayment:         o.DownPayment,
		RemainingPayment:    o.RemainingPayment,
		Status:              o.Status,
		OrderDate:           o.OrderDate,
		PaypalTransactionID: o.PaypalTransactionID,
		PayerName:           o.PayerName,
		ImagePath:           utils.PublicUploadPath(o.ImagePath),
	}
}

// ToBuyerOrdersResponse converts a buyer's orders.
func ToBuyerOrdersResponse(orders []domain.Order) OrdersResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(o)
	}
	return OrdersResponse{Status: "success", Orders: out}
}

// ToSellerOrdersResponse converts a seller's orders with buyer contacts.
func ToSellerOrdersResponse(orders []domain.SellerOrder) OrdersResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp := ToOrderResponse(o.Order)
		resp.Customer = &BuyerContactResponse{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Email:     o.Customer.Email,
			Phone:     o.Customer.Phone,
			Address:   o.Customer.Address,
		}
		out[i] = resp
	}
	return OrdersResponse{Status: "success", Orders: out}
}

// PurchaseResponse is one row of the admin transaction report.
type PurchaseResponse struct {
	OrderID         int64              `json:"orderId"`
	ProductID       int64              `json:"productId"`
	ItemName        string             `json:"itemName"`
	Buyer           string             `json:"buyer"`
	Date            string             `json:"date"`
	BusinessName    string             `json:"businessName"`
	BusinessAddress string             `json:"businessAddress"`
	Price           decimal.Decimal    `json:"price"`
	Status          domain.OrderStatus `json:"status"`
	TransactionID   *string            `json:"transactionId"`
}

// ToPurchaseResponses converts purchase rows.
func ToPurchaseResponses(rows []domain.Purchase) []PurchaseResponse {
	out := make([]PurchaseResponse, len(rows))
	for i, p := range rows {
		out[i] = PurchaseResponse{
			OrderID:         p.OrderID,
			ProductID:       p.ProductID,
			ItemName:        p.ItemName,
			Buyer:           p.Buyer,
			Date:            FormatTimestamp(p.Date),
			BusinessName:    p.BusinessName,
			BusinessAddress: p.BusinessAddress,
			Price:           p.Price,
			Status:          p.Status,
			TransactionID:   p.TransactionID,
		}
	}
	return out
}

// TimestampLayout is the admin report time format (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in the admin report format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
