package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
	"github.com/vinque/vinque_backend/internal/platform/upload"
)

// maxMoney is the exclusive upper bound of a NUMERIC(10,2) column.
var maxMoney = decimal.New(1, 8)

// ProductPolicy holds the configurable product rules.
type ProductPolicy struct {
	MaxImageBytes     int64
	AllowImage1Delete bool
}

// productService implements ProductSvcFacade.
type productService struct {
	BaseService
	products portsrepo.ProductRepositoryFacade
	profiles portsrepo.ProfileRepositoryFacade
	files    *fileKeeper
	policy   ProductPolicy
}

// NewProductService creates the product lifecycle service.
func NewProductService(products portsrepo.ProductRepositoryFacade, profiles portsrepo.ProfileRepositoryFacade, files *fileKeeper, policy ProductPolicy) portssvc.ProductSvcFacade {
	return &productService{products: products, profiles: profiles, files: files, policy: policy}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	return s.products.FindProductByID(ctx, productID)
}

func (s *productService) GetProductDetail(ctx context.Context, productID int64) (*domain.ProductDetail, error) {
	return s.products.FindProductDetail(ctx, productID)
}

func (s *productService) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.ProductCard, error) {
	cards, err := s.products.ListProducts(ctx, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	return cards, nil
}

func (s *productService) ListArchived(ctx context.Context, principal *domain.Principal, sellerID int64) ([]domain.ProductCard, error) {
	if err := s.AuthorizeSeller(ctx, principal, sellerID, "Unauthorized to view these products"); err != nil {
		return nil, err
	}
	return s.ListProducts(ctx, domain.ProductQuery{SellerID: &sellerID, Archived: true})
}

func (s *productService) ListCategories(ctx context.Context) ([]string, error) {
	return s.products.ListCategories(ctx)
}

func (s *productService) Search(ctx context.Context, params dto.SearchParams) ([]domain.ProductCard, *string, error) {
	cards, err := s.ListProducts(ctx, domain.ProductQuery{Term: strings.TrimSpace(params.Q), SellerID: params.Seller})
	if err != nil {
		return nil, nil, err
	}
	if params.CustomerID == nil {
		return cards, nil, nil
	}
	pic, err := s.profiles.FindCustomerPicture(ctx, *params.CustomerID)
	if err != nil && !apperrors.IsNotFound(err) {
		s.LogError(ctx, err, "Failed to load customer picture for search", slog.Int64("customer_id", *params.CustomerID))
		return nil, nil, err
	}
	return cards, pic, nil
}

func (s *productService) RecordVisit(ctx context.Context, productID int64) error {
	return s.products.IncrementVisits(ctx, productID)
}

// parseDraft validates the descriptive fields shared by create and edit.
func parseDraft(form dto.ProductForm, sellerID int64, missingMsg string) (domain.ProductDraft, error) {
	draft := domain.ProductDraft{
		SellerID:      sellerID,
		Name:          strings.TrimSpace(form.ProductName),
		Verified:      domain.IsVerifiedFlag(form.Verified),
		HistorianName: strings.TrimSpace(form.HistorianName),
		HistorianType: strings.TrimSpace(form.HistorianType),
		Category:      strings.TrimSpace(form.Category),
		Description:   strings.TrimSpace(form.Description),
	}
	rawPrice := strings.TrimSpace(form.Price)
	if draft.Name == "" || rawPrice == "" || draft.Description == "" || draft.Category == "" || strings.TrimSpace(form.Verified) == "" {
		return draft, apperrors.NewValidationError(missingMsg)
	}
	price, err := decimal.NewFromString(rawPrice)
	if err != nil || !price.IsPositive() {
		return draft, apperrors.NewValidationError("Price must be a positive number.")
	}
	if price.GreaterThanOrEqual(maxMoney) {
		return draft, apperrors.NewValidationError("Price is too large.")
	}
	draft.Price = price.Round(2)
	if draft.NeedsHistorian() {
		return draft, apperrors.NewValidationError("Historian Name and Type are required for verified items.")
	}
	return draft, nil
}

// inspectImages checks every provided image before anything is written.
func (s *productService) inspectImages(images portssvc.ProductImages) ([domain.ImageSlots]*upload.Inspected, error) {
	var out [domain.ImageSlots]*upload.Inspected
	for i, img := range images {
		if img == nil {
			continue
		}
		inspected, err := upload.Inspect(*img, upload.ImagePolicy(fmt.Sprintf("image%d", i+1), s.policy.MaxImageBytes))
		if err != nil {
			return out, err
		}
		out[i] = inspected
	}
	return out, nil
}

func (s *productService) CreateProduct(ctx context.Context, principal *domain.Principal, form dto.ProductForm, images portssvc.ProductImages) (int64, error) {
	sellerID := actingSellerID(principal, form.SellerID)
	if principal != nil && sellerID == 0 {
		return 0, apperrors.NewValidationError("Seller ID is required")
	}
	if err := s.AuthorizeSeller(ctx, principal, sellerID, "Unauthorized to add items for this seller"); err != nil {
		return 0, err
	}

	draft, err := parseDraft(form, sellerID, "All fields are required")
	if err != nil {
		return 0, err
	}
	if images[0] == nil {
		return 0, apperrors.NewValidationError("Image 1 is required.")
	}
	inspected, err := s.inspectImages(images)
	if err != nil {
		return 0, err
	}

	batch := s.files.begin()
	defer batch.Release(ctx)

	var keys [domain.ImageSlots]*string
	for i, img := range inspected {
		if img == nil {
			continue
		}
		key, err := batch.Put(ctx, ProductDir, img)
		if err != nil {
			s.LogError(ctx, err, "Failed to store product image", slog.Int("slot", i+1))
			return 0, apperrors.NewUpstreamError("Failed to store product image", err)
		}
		keys[i] = &key
	}

	id, err := s.products.CreateProduct(ctx, draft, keys)
	if err != nil {
		s.LogError(ctx, err, "Failed to create product", slog.Int64("seller_id", sellerID))
		return 0, err
	}
	batch.Commit()

	s.LogInfo(ctx, "Product created", slog.Int64("product_id", id), slog.Int64("seller_id", sellerID))
	return id, nil
}

// imageChanges resolves the per-slot edit instructions.
func (s *productService) imageChanges(form dto.ProductForm, images portssvc.ProductImages) ([domain.ImageSlots]domain.ImageChange, error) {
	var changes [domain.ImageSlots]domain.ImageChange
	for i, action := range form.ImageActions() {
		action = strings.ToLower(strings.TrimSpace(action))
		switch {
		case images[i] != nil:
			changes[i].Action = domain.ImageReplace
		case action == "delete":
			if i == 0 && !s.policy.AllowImage1Delete {
				return changes, apperrors.NewValidationError("Image 1 cannot be deleted. Upload a replacement instead.")
			}
			changes[i].Action = domain.ImageDelete
		case action == "" || action == "keep":
			changes[i].Action = domain.ImageKeep
		default:
			return changes, apperrors.NewValidationError(fmt.Sprintf("Invalid action for image%d.", i+1))
		}
	}
	return changes, nil
}

// ownedProduct loads a product and checks the caller may change it.
func (s *productService) ownedProduct(ctx context.Context, principal *domain.Principal, productID, claimedSeller int64, deniedMsg string) (*domain.Product, error) {
	if principal == nil {
		return nil, apperrors.NewUnauthorizedError(authRequiredMessage)
	}
	product, err := s.products.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeSeller(ctx, principal, product.SellerID, deniedMsg); err != nil {
		return nil, err
	}
	if claimedSeller > 0 && claimedSeller != product.SellerID {
		return nil, apperrors.NewForbiddenError(deniedMsg)
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, principal *domain.Principal, productID int64, form dto.ProductForm, images portssvc.ProductImages) error {
	product, err := s.ownedProduct(ctx, principal, productID, form.SellerID, "Unauthorized to edit this product")
	if err != nil {
		return err
	}

	draft, err := parseDraft(form, product.SellerID, "All item fields are required.")
	if err != nil {
		return err
	}
	changes, err := s.imageChanges(form, images)
	if err != nil {
		return err
	}
	inspected, err := s.inspectImages(images)
	if err != nil {
		return err
	}

	batch := s.files.begin()
	defer batch.Release(ctx)

	for i, img := range inspected {
		if img == nil {
			continue
		}
		key, err := batch.Put(ctx, ProductDir, img)
		if err != nil {
			s.LogError(ctx, err, "Failed to store product image", slog.Int("slot", i+1))
			return apperrors.NewUpstreamError("Failed to store product image", err)
		}
		changes[i].Key = key
	}

	removed, err := s.products.UpdateProduct(ctx, productID, domain.ProductUpdate{Draft: draft, Changes: changes})
	if err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		return err
	}
	batch.Commit()
	s.files.nudge(removed)

	s.LogInfo(ctx, "Product updated", slog.Int64("product_id", productID), slog.Int("files_released", len(removed)))
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, principal *domain.Principal, productID int64) error {
	product, err := s.ownedProduct(ctx, principal, productID, 0, "Unauthorized to delete this product")
	if err != nil {
		return err
	}
	removed, err := s.products.DeleteProduct(ctx, productID, product.SellerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete product", slog.Int64("product_id", productID))
		return err
	}
	s.files.nudge(removed)
	s.LogInfo(ctx, "Product deleted", slog.Int64("product_id", productID))
	return nil
}

func (s *productService) SetArchived(ctx context.Context, principal *domain.Principal, productID, sellerID int64, archived bool) error {
	deniedMsg := "Unauthorized to archive this product"
	if !archived {
		deniedMsg = "Unauthorized to restore this product"
	}
	sellerID = actingSellerID(principal, sellerID)
	if principal != nil && sellerID == 0 {
		return apperrors.NewValidationError("Seller ID is required")
	}
	if err := s.AuthorizeSeller(ctx, principal, sellerID, deniedMsg); err != nil {
		return err
	}
	if err := s.products.SetArchived(ctx, productID, sellerID, archived); err != nil {
		return err
	}
	s.LogInfo(ctx, "Product archive flag changed", slog.Int64("product_id", productID), slog.Bool("archived", archived))
	return nil
}
