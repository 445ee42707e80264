package pgsql

import (
	"context"
	"fmt"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool DBPool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `o.order_id, o.user_id, o.product_id, o.product_name, o.price, o.down_payment,
	o.remaining_payment, o.status, o.paypal_transaction_id, o.payer_name, o.order_date, p.image1_path`

func orderScanTargets(o *domain.Order, status *string) []any {
	return []any{
		&o.OrderID, &o.UserID, &o.ProductID, &o.ProductName, &o.Price, &o.DownPayment,
		&o.RemainingPayment, status, &o.PaypalTransactionID, &o.PayerName, &o.OrderDate, &o.ImagePath,
	}
}

func (r *PgxOrderRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, product_id, product_name, price, down_payment, remaining_payment,
		                    status, paypal_transaction_id, payer_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING order_id`,
		order.UserID, order.ProductID, order.ProductName, order.Price, order.DownPayment,
		order.RemainingPayment, string(order.Status), order.PaypalTransactionID, order.PayerName,
	).Scan(&id)
	if err != nil {
		mapped := mapPgError(err, "insert order")
		if apperrors.IsNotFound(mapped) {
			return 0, apperrors.NewNotFoundError("Product not found")
		}
		return 0, mapped
	}
	return id, nil
}

func (r *PgxOrderRepository) ListBuyerOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN products p ON p.product_id = o.product_id
		WHERE o.user_id = $1
		ORDER BY o.order_date DESC, o.order_id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query buyer orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(orderScanTargets(&o, &status)...); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		o.Status = domain.OrderStatus(status)
		orders = append(orders, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", rows.Err())
	}
	return orders, nil
}

func (r *PgxOrderRepository) ListSellerOrders(ctx context.Context, sellerID int64) ([]domain.SellerOrder, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+orderColumns+`,
		       c.first_name, c.last_name, c.email, c.phone, c.address
		FROM orders o
		JOIN products p ON p.product_id = o.product_id
		LEFT JOIN customers c ON c.customer_id = o.user_id
		WHERE p.seller_id = $1
		ORDER BY o.order_date DESC, o.order_id DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seller orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.SellerOrder{}
	for rows.Next() {
		var o domain.SellerOrder
		var status string
		targets := append(orderScanTargets(&o.Order, &status),
			&o.Customer.FirstName, &o.Customer.LastName, &o.Customer.Email, &o.Customer.Phone, &o.Customer.Address)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan seller order row: %w", err)
		}
		o.Status = domain.OrderStatus(status)
		orders = append(orders, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating seller order rows: %w", rows.Err())
	}
	return orders, nil
}

func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID, sellerID int64, status domain.OrderStatus) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE orders o SET status = $1
		FROM products p
		WHERE o.order_id = $2 AND p.product_id = o.product_id AND p.seller_id = $3`,
		string(status), orderID, sellerID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewForbiddenError("Order not found or you don't have permission to update this order")
	}
	return nil
}

func (r *PgxOrderRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT o.order_id, o.product_id, o.product_name, c.first_name, c.last_name, o.payer_name,
		       o.order_date, COALESCE(s.business_name, 'Unknown Business'),
		       COALESCE(NULLIF(s.business_address, ''), 'Unknown Address'),
		       o.price, o.status, o.paypal_transaction_id
		FROM orders o
		LEFT JOIN customers c ON c.customer_id = o.user_id
		LEFT JOIN products p ON p.product_id = o.product_id
		LEFT JOIN sellers s ON s.seller_id = p.seller_id
		ORDER BY o.order_date DESC, o.order_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var p domain.Purchase
		var first, last, payer *string
		var status string
		err := rows.Scan(&p.OrderID, &p.ProductID, &p.ItemName, &first, &last, &payer,
			&p.Date, &p.BusinessName, &p.BusinessAddress, &p.Price, &status, &p.TransactionID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		p.Buyer = domain.BuyerDisplayName(first, last, payer)
		p.Status = domain.OrderStatus(status)
		purchases = append(purchases, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", rows.Err())
	}
	return purchases, nil
}
