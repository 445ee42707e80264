package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxAnalyticsRepository struct {
	BaseRepository
}

func newPgxAnalyticsRepository(pool DBPool) portsrepo.AnalyticsRepositoryFacade {
	return &PgxAnalyticsRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AnalyticsRepositoryFacade = (*PgxAnalyticsRepository)(nil)

func (r *PgxAnalyticsRepository) RecordStoreVisit(ctx context.Context, sellerID int64, customerID *int64) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO store_visits (seller_id, customer_id) VALUES ($1, $2)`, sellerID, customerID)
	if err != nil {
		return notFoundAs(mapPgError(err, "record store visit"), "Seller not found")
	}
	return nil
}

func (r *PgxAnalyticsRepository) TrackProductView(ctx context.Context, productID int64, customerID *int64) (int, error) {
	var count int
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var err error
		if customerID != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO product_views (product_id, customer_id) VALUES ($1, $2)
				ON CONFLICT (product_id, customer_id) WHERE customer_id IS NOT NULL DO NOTHING`,
				productID, *customerID)
		} else {
			_, err = tx.Exec(ctx, `INSERT INTO product_views (product_id) VALUES ($1)`, productID)
		}
		if err != nil {
			return notFoundAs(mapPgError(err, "track product view"), "Product not found")
		}
		return tx.QueryRow(ctx, `SELECT COUNT(*) FROM product_views WHERE product_id = $1`, productID).Scan(&count)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgxAnalyticsRepository) businessName(ctx context.Context, sellerID int64) (string, error) {
	var name string
	err := r.Pool.QueryRow(ctx, `SELECT business_name FROM sellers WHERE seller_id = $1`, sellerID).Scan(&name)
	if err != nil {
		return "", notFoundAs(mapPgError(err, "find seller"), "Seller not found")
	}
	return name, nil
}

// optionalString scans a single text column, returning fallback when the
// query yields no row.
func (r *PgxAnalyticsRepository) optionalString(ctx context.Context, fallback, query string, args ...any) (string, error) {
	var out string
	err := r.Pool.QueryRow(ctx, query, args...).Scan(&out)
	if errors.Is(err, pgx.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return out, nil
}

func (r *PgxAnalyticsRepository) SellerStats(ctx context.Context, sellerID int64, year int) (*domain.SellerStats, error) {
	name, err := r.businessName(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	stats := &domain.SellerStats{
		BusinessName:   name,
		Categories:     []domain.CategoryCount{},
		MostViewedItem: domain.TopItem{ProductName: domain.NotAvailable, Description: "No items yet"},
	}

	err = r.Pool.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM products WHERE seller_id = $1),
		       (SELECT COUNT(*) FROM store_visits WHERE seller_id = $1)`, sellerID).
		Scan(&stats.TotalProducts, &stats.Visitors)
	if err != nil {
		return nil, fmt.Errorf("failed to count seller totals: %w", err)
	}

	stats.Trending, err = r.optionalString(ctx, domain.NotAvailable, `
		SELECT category FROM products
		GROUP BY category
		HAVING SUM(visits) > 0
		ORDER BY SUM(visits) DESC, category
		LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trending category: %w", err)
	}
	stats.Popular, err = r.optionalString(ctx, domain.NotAvailable, `
		SELECT category FROM products
		WHERE seller_id = $1
		GROUP BY category
		HAVING SUM(visits) > 0
		ORDER BY SUM(visits) DESC, category
		LIMIT 1`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular category: %w", err)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT category, COUNT(*) FROM products
		WHERE seller_id = $1
		GROUP BY category
		ORDER BY COUNT(*) DESC, category`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		stats.Categories = append(stats.Categories, c)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category counts: %w", rows.Err())
	}

	var top domain.TopItem
	err = r.Pool.QueryRow(ctx, `
		SELECT product_name, description, image1_path, visits FROM products
		WHERE seller_id = $1
		ORDER BY visits DESC, product_id
		LIMIT 1`, sellerID).Scan(&top.ProductName, &top.Description, &top.ImagePath, &top.Visits)
	switch {
	case err == nil:
		stats.MostViewedItem = top
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("failed to query most viewed item: %w", err)
	}

	visits, err := r.monthly(ctx, `
		SELECT EXTRACT(MONTH FROM visited_at)::int, COUNT(*)::int FROM store_visits
		WHERE seller_id = $1 AND EXTRACT(YEAR FROM visited_at)::int = $2
		GROUP BY 1`, sellerID, year)
	if err != nil {
		return nil, err
	}
	stats.VisitsByMonth = domain.FillMonths(visits)
	return stats, nil
}

func (r *PgxAnalyticsRepository) monthly(ctx context.Context, query string, args ...any) ([]domain.MonthlyBucket[int], error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly series: %w", err)
	}
	defer rows.Close()
	var out []domain.MonthlyBucket[int]
	for rows.Next() {
		var b domain.MonthlyBucket[int]
		if err := rows.Scan(&b.Month, &b.Value); err != nil {
			return nil, fmt.Errorf("failed to scan monthly bucket: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PgxAnalyticsRepository) SellerRevenue(ctx context.Context, sellerID int64, year int) (*domain.SellerRevenue, error) {
	name, err := r.businessName(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	rev := &domain.SellerRevenue{
		BusinessName:      name,
		RevenueByCategory: []domain.CategoryRevenue{},
		TopProducts:       []domain.ProductRevenue{},
	}
	complete := string(domain.OrderComplete)

	rows, err := r.Pool.Query(ctx, `
		SELECT p.category, COALESCE(SUM(o.price), 0), COUNT(o.order_id)::int
		FROM products p
		LEFT JOIN orders o ON o.product_id = p.product_id AND o.status = $2
		WHERE p.seller_id = $1
		GROUP BY p.category
		ORDER BY 2 DESC, p.category`, sellerID, complete)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue by category: %w", err)
	}
	for rows.Next() {
		var c domain.CategoryRevenue
		if err := rows.Scan(&c.Category, &c.Revenue, &c.Orders); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan category revenue: %w", err)
		}
		rev.RevenueByCategory = append(rev.RevenueByCategory, c)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category revenue: %w", rows.Err())
	}

	rows, err = r.Pool.Query(ctx, `
		SELECT EXTRACT(MONTH FROM o.order_date)::int, SUM(o.price)
		FROM orders o
		JOIN products p ON p.product_id = o.product_id
		WHERE p.seller_id = $1 AND o.status = $2 AND EXTRACT(YEAR FROM o.order_date)::int = $3
		GROUP BY 1`, sellerID, complete, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly revenue: %w", err)
	}
	var months []domain.MonthlyBucket[decimal.Decimal]
	for rows.Next() {
		var b domain.MonthlyBucket[decimal.Decimal]
		if err := rows.Scan(&b.Month, &b.Value); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan monthly revenue: %w", err)
		}
		months = append(months, b)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly revenue: %w", rows.Err())
	}
	rev.MonthlyRevenue = domain.FillMonths(months)

	err = r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(o.price), 0), COUNT(*)::int
		FROM orders o
		JOIN products p ON p.product_id = o.product_id
		WHERE p.seller_id = $1 AND o.status = $2`, sellerID, complete).Scan(&rev.TotalRevenue, &rev.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue totals: %w", err)
	}

	rows, err = r.Pool.Query(ctx, `
		SELECT p.product_name, p.category, SUM(o.price), COUNT(*)::int
		FROM orders o
		JOIN products p ON p.product_id = o.product_id
		WHERE p.seller_id = $1 AND o.status = $2
		GROUP BY p.product_id, p.product_name, p.category
		ORDER BY 3 DESC, p.product_id
		LIMIT 5`, sellerID, complete)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.ProductRevenue
		if err := rows.Scan(&p.ProductName, &p.Category, &p.Revenue, &p.Orders); err != nil {
			return nil, fmt.Errorf("failed to scan top product: %w", err)
		}
		rev.TopProducts = append(rev.TopProducts, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating top products: %w", rows.Err())
	}
	return rev, nil
}

