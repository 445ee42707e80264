package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
	portssvc "github.com/vinque/vinque_backend/internal/core/ports/services"
	"github.com/vinque/vinque_backend/internal/dto"
)

// --- Mock RegistrationService ---
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Register(ctx context.Context, req dto.SignupRequest, permit *domain.FileUpload) (*domain.RegisteredAccount, error) {
	args := m.Called(ctx, req, permit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisteredAccount), args.Error(1)
}

var _ portssvc.RegistrationSvcFacade = (*MockRegistrationService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.AccountIdentity, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.AccountIdentity), args.String(1), args.Error(2)
}
func (m *MockAuthService) Logout(ctx context.Context, req dto.LogoutRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockAuthService) GoogleSignIn(ctx context.Context, credential string) (*domain.FederatedLoginResult, string, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.FederatedLoginResult), args.String(1), args.Error(2)
}
func (m *MockAuthService) ExchangeGoogleCode(ctx context.Context, code string) (*domain.FederatedLoginResult, string, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.FederatedLoginResult), args.String(1), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock OTPService ---
type MockOTPService struct {
	mock.Mock
}

func (m *MockOTPService) SendOTP(ctx context.Context, req dto.SendOTPRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockOTPService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*domain.AccountIdentity, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.AccountIdentity), args.String(1), args.Error(2)
}

var _ portssvc.OTPSvcFacade = (*MockOTPService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(identity *domain.AccountIdentity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) Parse(token string) (*domain.Principal, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Principal), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductService) GetProductDetail(ctx context.Context, productID int64) (*domain.ProductDetail, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductDetail), args.Error(1)
}
func (m *MockProductService) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.ProductCard, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductCard), args.Error(1)
}
func (m *MockProductService) ListArchived(ctx context.Context, principal *domain.Principal, sellerID int64) ([]domain.ProductCard, error) {
	args := m.Called(ctx, principal, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductCard), args.Error(1)
}
func (m *MockProductService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockProductService) Search(ctx context.Context, params dto.SearchParams) ([]domain.ProductCard, *string, error) {
	args := m.Called(ctx, params)
	var cards []domain.ProductCard
	if v := args.Get(0); v != nil {
		cards = v.([]domain.ProductCard)
	}
	var pic *string
	if v := args.Get(1); v != nil {
		pic = v.(*string)
	}
	return cards, pic, args.Error(2)
}
func (m *MockProductService) CreateProduct(ctx context.Context, principal *domain.Principal, form dto.ProductForm, images portssvc.ProductImages) (int64, error) {
	args := m.Called(ctx, principal, form, images)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockProductService) UpdateProduct(ctx context.Context, principal *domain.Principal, productID int64, form dto.ProductForm, images portssvc.ProductImages) error {
	return m.Called(ctx, principal, productID, form, images).Error(0)
}
func (m *MockProductService) DeleteProduct(ctx context.Context, principal *domain.Principal, productID int64) error {
	return m.Called(ctx, principal, productID).Error(0)
}
func (m *MockProductService) SetArchived(ctx context.Context, principal *domain.Principal, productID, sellerID int64, archived bool) error {
	return m.Called(ctx, principal, productID, sellerID, archived).Error(0)
}
func (m *MockProductService) RecordVisit(ctx context.Context, productID int64) error {
	return m.Called(ctx, productID).Error(0)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, principal *domain.Principal, req dto.CreateOrderRequest) (int64, error) {
	args := m.Called(ctx, principal, req)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderService) ListBuyerOrders(ctx context.Context, principal *domain.Principal, customerID int64) ([]domain.Order, error) {
	args := m.Called(ctx, principal, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderService) ListSellerOrders(ctx context.Context, principal *domain.Principal, sellerID int64) ([]domain.SellerOrder, error) {
	args := m.Called(ctx, principal, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SellerOrder), args.Error(1)
}
func (m *MockOrderService) UpdateOrderStatus(ctx context.Context, principal *domain.Principal, orderID int64, req dto.UpdateOrderStatusRequest) error {
	return m.Called(ctx, principal, orderID, req).Error(0)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAdminService) ListSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SellerProfile), args.Error(1)
}
func (m *MockAdminService) ListPendingSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SellerProfile), args.Error(1)
}
func (m *MockAdminService) ApproveSeller(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockAdminService) RejectSeller(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockAdminService) LoginHistory(ctx context.Context) ([]domain.LoginSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoginSession), args.Error(1)
}
func (m *MockAdminService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

var _ portssvc.AdminSvcFacade = (*MockAdminService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetCustomerProfile(ctx context.Context, principal *domain.Principal, customerID int64) (*domain.CustomerProfile, error) {
	args := m.Called(ctx, principal, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerProfile), args.Error(1)
}
func (m *MockProfileService) UpdateCustomerProfile(ctx context.Context, principal *domain.Principal, customerID int64, form dto.CustomerProfileForm, picture *domain.FileUpload) (*string, error) {
	args := m.Called(ctx, principal, customerID, form, picture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}
func (m *MockProfileService) GetStore(ctx context.Context, sellerID int64) (*domain.Store, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}
func (m *MockProfileService) GetSellerProfile(ctx context.Context, sellerID int64) (*domain.SellerProfile, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellerProfile), args.Error(1)
}
func (m *MockProfileService) UpdateSellerProfile(ctx context.Context, principal *domain.Principal, sellerID int64, form dto.SellerProfileForm, picture *domain.FileUpload) (*string, error) {
	args := m.Called(ctx, principal, sellerID, form, picture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) RecordStoreVisit(ctx context.Context, req dto.VisitStoreRequest) error {
	return m.Called(ctx, req).Error(0)
}
func (m *MockAnalyticsService) TrackProductView(ctx context.Context, req dto.TrackProductViewRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}
func (m *MockAnalyticsService) SellerStats(ctx context.Context, principal *domain.Principal, sellerID int64) (*domain.SellerStats, error) {
	args := m.Called(ctx, principal, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellerStats), args.Error(1)
}
func (m *MockAnalyticsService) SellerRevenue(ctx context.Context, principal *domain.Principal, sellerID int64) (*domain.SellerRevenue, error) {
	args := m.Called(ctx, principal, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellerRevenue), args.Error(1)
}

var _ portssvc.AnalyticsSvcFacade = (*MockAnalyticsService)(nil)

// --- Mock FileService ---
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Open(ctx context.Context, rawKey string) (io.ReadCloser, *portsrepo.ObjectInfo, error) {
	args := m.Called(ctx, rawKey)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*portsrepo.ObjectInfo), args.Error(2)
}

var _ portssvc.FileSvcFacade = (*MockFileService)(nil)

