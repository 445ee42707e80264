package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxProductRepository struct {
	BaseRepository
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

var imageColumns = [domain.ImageSlots]string{"image1_path", "image2_path", "image3_path"}

const productColumns = `p.product_id, p.seller_id, p.product_name, p.price, p.image1_path, p.image2_path, p.image3_path,
	p.verified, p.historian_name, p.historian_type, p.category, p.description, p.visits, p.archived, p.created_at`

func productScanTargets(p *domain.Product) []any {
	return []any{
		&p.ProductID, &p.SellerID, &p.Name, &p.Price,
		&p.Images[0], &p.Images[1], &p.Images[2],
		&p.Verified, &p.HistorianName, &p.HistorianType,
		&p.Category, &p.Description, &p.Visits, &p.Archived, &p.CreatedAt,
	}
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	var p domain.Product
	err := r.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.product_id = $1`, productID).
		Scan(productScanTargets(&p)...)
	if err != nil {
		return nil, productLookupError(err)
	}
	return &p, nil
}

func (r *PgxProductRepository) FindProductDetail(ctx context.Context, productID int64) (*domain.ProductDetail, error) {
	var d domain.ProductDetail
	targets := append(productScanTargets(&d.Product), &d.StoreName, &d.BusinessAddress, &d.BusinessDescription)
	err := r.Pool.QueryRow(ctx, `
		SELECT `+productColumns+`, s.business_name, s.business_address, COALESCE(s.business_description, '')
		FROM products p
		JOIN sellers s ON s.seller_id = p.seller_id
		WHERE p.product_id = $1`, productID).Scan(targets...)
	if err != nil {
		return nil, productLookupError(err)
	}
	return &d, nil
}

func productLookupError(err error) error {
	return notFoundAs(mapPgError(err, "find product"), "Product not found")
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.ProductCard, error) {
	builder := psql.Select(
		"product_id", "product_name", "price", "image1_path", "image2_path", "image3_path",
		"verified", "description", "category", "visits", "archived",
	).From("products").Where(squirrel.Eq{"archived": q.Archived})
	if q.SellerID != nil {
		builder = builder.Where(squirrel.Eq{"seller_id": *q.SellerID})
	}
	if term := strings.TrimSpace(q.Term); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"product_name": pattern},
			squirrel.ILike{"category": pattern},
		})
	}
	query, args, err := builder.OrderBy("created_at DESC", "product_id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build product query: %w", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	cards := []domain.ProductCard{}
	for rows.Next() {
		var c domain.ProductCard
		err := rows.Scan(&c.ProductID, &c.Name, &c.Price, &c.Images[0], &c.Images[1], &c.Images[2],
			&c.Verified, &c.Description, &c.Category, &c.ViewCount, &c.Archived)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		cards = append(cards, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return cards, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PgxProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT DISTINCT category FROM products
		WHERE archived = false AND category <> ''
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PgxProductRepository) CreateProduct(ctx context.Context, draft domain.ProductDraft, images [domain.ImageSlots]*string) (int64, error) {
	historianName, historianType := draft.HistorianFields()
	var id int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO products (seller_id, product_name, price, image1_path, image2_path, image3_path,
		                      verified, historian_name, historian_type, category, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING product_id`,
		draft.SellerID, draft.Name, draft.Price, images[0], images[1], images[2],
		draft.Verified, historianName, historianType, draft.Category, draft.Description,
	).Scan(&id)
	if err != nil {
		mapped := mapPgError(err, "insert product")
		if apperrors.IsNotFound(mapped) {
			return 0, apperrors.NewNotFoundError("Seller not found")
		}
		return 0, mapped
	}
	return id, nil
}

// lockOwnedProduct locks the product row and checks it belongs to sellerID.
func lockOwnedProduct(ctx context.Context, tx pgx.Tx, productID, sellerID int64, forbidden string) ([domain.ImageSlots]*string, error) {
	var owner int64
	var images [domain.ImageSlots]*string
	err := tx.QueryRow(ctx, `
		SELECT seller_id, image1_path, image2_path, image3_path
		FROM products WHERE product_id = $1
		FOR UPDATE`, productID).Scan(&owner, &images[0], &images[1], &images[2])
	if err != nil {
		return images, productLookupError(err)
	}
	if owner != sellerID {
		return images, apperrors.NewForbiddenError(forbidden)
	}
	return images, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, productID int64, update domain.ProductUpdate) ([]string, error) {
	var obsolete []string
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		current, err := lockOwnedProduct(ctx, tx, productID, update.Draft.SellerID, "Unauthorized to edit this product")
		if err != nil {
			return err
		}

		d := update.Draft
		historianName, historianType := d.HistorianFields()
		builder := psql.Update("products").SetMap(map[string]any{
			"product_name":   d.Name,
			"price":          d.Price,
			"verified":       d.Verified,
			"historian_name": historianName,
			"historian_type": historianType,
			"category":       d.Category,
			"description":    d.Description,
		})
		var dropped []*string
		for slot, change := range update.Changes {
			switch change.Action {
			case domain.ImageReplace:
				builder = builder.Set(imageColumns[slot], change.Key)
				dropped = append(dropped, current[slot])
			case domain.ImageDelete:
				builder = builder.Set(imageColumns[slot], nil)
				dropped = append(dropped, current[slot])
			}
		}
		query, args, err := builder.Where(squirrel.Eq{"product_id": productID}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build product update: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return mapPgError(err, "update product")
		}

		obsolete = localObjectKeys(dropped...)
		return enqueueCleanup(ctx, tx, obsolete)
	})
	if err != nil {
		return nil, err
	}
	return obsolete, nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64, sellerID int64) ([]string, error) {
	var obsolete []string
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		images, err := lockOwnedProduct(ctx, tx, productID, sellerID, "Unauthorized to delete this product")
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, productID); err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		obsolete = localObjectKeys(images[:]...)
		return enqueueCleanup(ctx, tx, obsolete)
	})
	if err != nil {
		return nil, err
	}
	return obsolete, nil
}

func (r *PgxProductRepository) SetArchived(ctx context.Context, productID int64, sellerID int64, archived bool) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE products SET archived = $1
		WHERE product_id = $2 AND seller_id = $3`, archived, productID, sellerID)
	if err != nil {
		return fmt.Errorf("failed to update archive flag: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE product_id = $1)`, productID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if !exists {
		return apperrors.NewNotFoundError("Product not found")
	}
	if archived {
		return apperrors.NewForbiddenError("Unauthorized to archive this product")
	}
	return apperrors.NewForbiddenError("Unauthorized to restore this product")
}

func (r *PgxProductRepository) IncrementVisits(ctx context.Context, productID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE products SET visits = visits + 1 WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to increment visits: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("Product not found")
	}
	return nil
}
