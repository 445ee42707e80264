package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

type PgxProfileRepository struct {
	BaseRepository
	products *PgxProductRepository
}

func newPgxProfileRepository(pool DBPool, products *PgxProductRepository) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}, products: products}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) FindCustomerProfile(ctx context.Context, customerID int64) (*domain.CustomerProfile, error) {
	var c domain.CustomerProfile
	err := r.Pool.QueryRow(ctx, `
		SELECT c.customer_id, c.user_id, c.first_name, c.last_name, c.phone, c.address, c.email,
		       c.profile_pic, c.about_info, a.username
		FROM customers c
		JOIN accounts a ON a.user_id = c.user_id
		WHERE c.customer_id = $1`, customerID).Scan(
		&c.CustomerID, &c.UserID, &c.FirstName, &c.LastName, &c.Phone, &c.Address, &c.Email,
		&c.ProfilePic, &c.AboutInfo, &c.Username,
	)
	if err != nil {
		return nil, notFoundAs(mapPgError(err, "find customer"), "Customer not found")
	}
	return &c, nil
}

func (r *PgxProfileRepository) FindCustomerPicture(ctx context.Context, customerID int64) (*string, error) {
	var pic *string
	err := r.Pool.QueryRow(ctx, `SELECT profile_pic FROM customers WHERE customer_id = $1`, customerID).Scan(&pic)
	if err != nil {
		return nil, notFoundAs(mapPgError(err, "find customer picture"), "Customer not found")
	}
	return pic, nil
}

func (r *PgxProfileRepository) UpdateCustomerProfile(ctx context.Context, customerID int64, update domain.CustomerProfileUpdate) (*string, error) {
	var replaced *string
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var userID int64
		var current *string
		err := tx.QueryRow(ctx, `SELECT user_id, profile_pic FROM customers WHERE customer_id = $1 FOR UPDATE`, customerID).
			Scan(&userID, &current)
		if err != nil {
			return notFoundAs(mapPgError(err, "lock customer"), "Customer not found")
		}

		_, err = tx.Exec(ctx, `UPDATE accounts SET username = $1, email = $2, phone = $3 WHERE user_id = $4`,
			update.Username, update.Email, update.Phone, userID)
		if err != nil {
			return mapPgError(err, "update account contact")
		}
		_, err = tx.Exec(ctx, `
			UPDATE customers
			SET phone = $1, address = $2, email = $3, about_info = $4, profile_pic = COALESCE($5, profile_pic)
			WHERE customer_id = $6`,
			update.Phone, update.Address, update.Email, update.AboutInfo, update.ProfilePic, customerID)
		if err != nil {
			return mapPgError(err, "update customer")
		}

		if update.ProfilePic == nil {
			return nil
		}
		keys := localObjectKeys(current)
		if len(keys) > 0 {
			replaced = &keys[0]
		}
		return enqueueCleanup(ctx, tx, keys)
	})
	if err != nil {
		return nil, err
	}
	return replaced, nil
}

func (r *PgxProfileRepository) FindSellerProfile(ctx context.Context, sellerID int64) (*domain.SellerProfile, error) {
	s, err := scanSellerProfile(r.Pool.QueryRow(ctx, sellerProfileSelect+`
	WHERE seller_id = $1`, sellerID))
	if err != nil {
		return nil, notFoundAs(mapPgError(err, "find seller"), "Seller not found")
	}
	return s, nil
}

func (r *PgxProfileRepository) FindStore(ctx context.Context, sellerID int64) (*domain.Store, error) {
	var s domain.Store
	err := r.Pool.QueryRow(ctx, `
		SELECT seller_id, business_name, business_description, business_address, seller_image, phone
		FROM sellers WHERE seller_id = $1`, sellerID).Scan(
		&s.SellerID, &s.BusinessName, &s.BusinessDescription, &s.BusinessAddress, &s.SellerImage, &s.Phone,
	)
	if err != nil {
		return nil, notFoundAs(mapPgError(err, "find store"), "Store not found")
	}

	products, err := r.products.ListProducts(ctx, domain.ProductQuery{SellerID: &sellerID})
	if err != nil {
		return nil, err
	}
	s.Products = products
	s.TotalProducts = len(products)
	return &s, nil
}

func (r *PgxProfileRepository) UpdateSellerProfile(ctx context.Context, sellerID int64, update domain.SellerProfileUpdate) (*string, error) {
	var replaced *string
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var userID int64
		var current *string
		err := tx.QueryRow(ctx, `SELECT user_id, seller_image FROM sellers WHERE seller_id = $1 FOR UPDATE`, sellerID).
			Scan(&userID, &current)
		if err != nil {
			return notFoundAs(mapPgError(err, "lock seller"), "Seller not found")
		}

		_, err = tx.Exec(ctx, `UPDATE accounts SET phone = $1 WHERE user_id = $2`, update.Phone, userID)
		if err != nil {
			return mapPgError(err, "update account contact")
		}
		_, err = tx.Exec(ctx, `
			UPDATE sellers
			SET business_name = $1, business_description = $2, business_address = $3, phone = $4,
			    seller_image = COALESCE($5, seller_image)
			WHERE seller_id = $6`,
			update.BusinessName, update.BusinessDescription, update.BusinessAddress, update.Phone,
			update.SellerImage, sellerID)
		if err != nil {
			return mapPgError(err, "update seller")
		}

		if update.SellerImage == nil || (current != nil && *current == *update.SellerImage) {
			return nil
		}
		keys := localObjectKeys(current)
		if len(keys) > 0 {
			replaced = &keys[0]
		}
		return enqueueCleanup(ctx, tx, keys)
	})
	if err != nil {
		return nil, err
	}
	return replaced, nil
}

// notFoundAs replaces the generic not-found message with one naming the resource.
func notFoundAs(err error, message string) error {
	if apperrors.IsNotFound(err) {
		return apperrors.Wrap(apperrors.NewNotFoundError(message), err)
	}
	return err
}

