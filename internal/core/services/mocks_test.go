package services_test

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	"github.com/vinque/vinque_backend/internal/core/domain"
	portsrepo "github.com/vinque/vinque_backend/internal/core/ports/repositories"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) loginRecord(args mock.Arguments) (*domain.LoginRecord, error) {
	var rec *domain.LoginRecord
	if args.Get(0) != nil {
		rec = args.Get(0).(*domain.LoginRecord)
	}
	return rec, args.Error(1)
}

func (m *MockAccountRepository) FindLoginRecordByUsername(ctx context.Context, username string) (*domain.LoginRecord, error) {
	return m.loginRecord(m.Called(ctx, username))
}

func (m *MockAccountRepository) FindLoginRecordByIdentifier(ctx context.Context, email, username string) (*domain.LoginRecord, error) {
	return m.loginRecord(m.Called(ctx, email, username))
}

func (m *MockAccountRepository) FindLoginRecordByUserID(ctx context.Context, userID int64) (*domain.LoginRecord, error) {
	return m.loginRecord(m.Called(ctx, userID))
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	args := m.Called(ctx)
	var sellers []domain.SellerProfile
	if args.Get(0) != nil {
		sellers = args.Get(0).([]domain.SellerProfile)
	}
	return sellers, args.Error(1)
}

func (m *MockAccountRepository) ListPendingSellers(ctx context.Context) ([]domain.SellerProfile, error) {
	args := m.Called(ctx)
	var sellers []domain.SellerProfile
	if args.Get(0) != nil {
		sellers = args.Get(0).([]domain.SellerProfile)
	}
	return sellers, args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, reg domain.Registration) (*domain.RegisteredAccount, error) {
	args := m.Called(ctx, reg)
	var created *domain.RegisteredAccount
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.RegisteredAccount)
	}
	return created, args.Error(1)
}

func (m *MockAccountRepository) DecideSellerApproval(ctx context.Context, userID int64, status domain.ApprovalStatus) error {
	return m.Called(ctx, userID, status).Error(0)
}

// --- Mock LoginHistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) RecordLogin(ctx context.Context, session domain.LoginSession) (int64, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoryRepository) RecordLogout(ctx context.Context, userID int64, role domain.Role) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockHistoryRepository) PurgeAndList(ctx context.Context, cutoff time.Time) ([]domain.LoginSession, error) {
	args := m.Called(ctx, cutoff)
	var sessions []domain.LoginSession
	if args.Get(0) != nil {
		sessions = args.Get(0).([]domain.LoginSession)
	}
	return sessions, args.Error(1)
}

// --- Mock OTPRepository ---
type MockOTPRepository struct {
	mock.Mock
	IssueCodeFn func(ctx context.Context, code domain.OTPCode, deliver func(ctx context.Context) error) error
}

func (m *MockOTPRepository) IssueCode(ctx context.Context, code domain.OTPCode, deliver func(ctx context.Context) error) error {
	args := m.Called(ctx, code, deliver)
	if m.IssueCodeFn != nil {
		return m.IssueCodeFn(ctx, code, deliver)
	}
	return args.Error(0)
}

func (m *MockOTPRepository) ConsumeCode(ctx context.Context, userID int64, code string, now time.Time) (*domain.OTPCode, error) {
	args := m.Called(ctx, userID, code, now)
	var otp *domain.OTPCode
	if args.Get(0) != nil {
		otp = args.Get(0).(*domain.OTPCode)
	}
	return otp, args.Error(1)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var p *domain.Product
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Product)
	}
	return p, args.Error(1)
}

func (m *MockProductRepository) FindProductDetail(ctx context.Context, productID int64) (*domain.ProductDetail, error) {
	args := m.Called(ctx, productID)
	var d *domain.ProductDetail
	if args.Get(0) != nil {
		d = args.Get(0).(*domain.ProductDetail)
	}
	return d, args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.ProductCard, error) {
	args := m.Called(ctx, q)
	var cards []domain.ProductCard
	if args.Get(0) != nil {
		cards = args.Get(0).([]domain.ProductCard)
	}
	return cards, args.Error(1)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var categories []string
	if args.Get(0) != nil {
		categories = args.Get(0).([]string)
	}
	return categories, args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, draft domain.ProductDraft, images [domain.ImageSlots]*string) (int64, error) {
	args := m.Called(ctx, draft, images)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) removedKeys(args mock.Arguments) ([]string, error) {
	var keys []string
	if args.Get(0) != nil {
		keys = args.Get(0).([]string)
	}
	return keys, args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, productID int64, update domain.ProductUpdate) ([]string, error) {
	return m.removedKeys(m.Called(ctx, productID, update))
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID int64, sellerID int64) ([]string, error) {
	return m.removedKeys(m.Called(ctx, productID, sellerID))
}

func (m *MockProductRepository) SetArchived(ctx context.Context, productID int64, sellerID int64, archived bool) error {
	return m.Called(ctx, productID, sellerID, archived).Error(0)
}

func (m *MockProductRepository) IncrementVisits(ctx context.Context, productID int64) error {
	return m.Called(ctx, productID).Error(0)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order domain.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ListBuyerOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	args := m.Called(ctx, customerID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListSellerOrders(ctx context.Context, sellerID int64) ([]domain.SellerOrder, error) {
	args := m.Called(ctx, sellerID)
	var orders []domain.SellerOrder
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.SellerOrder)
	}
	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID, sellerID int64, status domain.OrderStatus) error {
	return m.Called(ctx, orderID, sellerID, status).Error(0)
}

func (m *MockOrderRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	var purchases []domain.Purchase
	if args.Get(0) != nil {
		purchases = args.Get(0).([]domain.Purchase)
	}
	return purchases, args.Error(1)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func optionalString(args mock.Arguments) (*string, error) {
	var s *string
	if args.Get(0) != nil {
		s = args.Get(0).(*string)
	}
	return s, args.Error(1)
}

func (m *MockProfileRepository) FindCustomerProfile(ctx context.Context, customerID int64) (*domain.CustomerProfile, error) {
	args := m.Called(ctx, customerID)
	var p *domain.CustomerProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.CustomerProfile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) UpdateCustomerProfile(ctx context.Context, customerID int64, update domain.CustomerProfileUpdate) (*string, error) {
	return optionalString(m.Called(ctx, customerID, update))
}

func (m *MockProfileRepository) FindSellerProfile(ctx context.Context, sellerID int64) (*domain.SellerProfile, error) {
	args := m.Called(ctx, sellerID)
	var p *domain.SellerProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.SellerProfile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) FindStore(ctx context.Context, sellerID int64) (*domain.Store, error) {
	args := m.Called(ctx, sellerID)
	var s *domain.Store
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Store)
	}
	return s, args.Error(1)
}

func (m *MockProfileRepository) UpdateSellerProfile(ctx context.Context, sellerID int64, update domain.SellerProfileUpdate) (*string, error) {
	return optionalString(m.Called(ctx, sellerID, update))
}

func (m *MockProfileRepository) FindCustomerPicture(ctx context.Context, customerID int64) (*string, error) {
	return optionalString(m.Called(ctx, customerID))
}

// --- Mock AnalyticsRepository ---
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) RecordStoreVisit(ctx context.Context, sellerID int64, customerID *int64) error {
	return m.Called(ctx, sellerID, customerID).Error(0)
}

func (m *MockAnalyticsRepository) TrackProductView(ctx context.Context, productID int64, customerID *int64) (int, error) {
	args := m.Called(ctx, productID, customerID)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsRepository) SellerStats(ctx context.Context, sellerID int64, year int) (*domain.SellerStats, error) {
	args := m.Called(ctx, sellerID, year)
	var stats *domain.SellerStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.SellerStats)
	}
	return stats, args.Error(1)
}

func (m *MockAnalyticsRepository) SellerRevenue(ctx context.Context, sellerID int64, year int) (*domain.SellerRevenue, error) {
	args := m.Called(ctx, sellerID, year)
	var revenue *domain.SellerRevenue
	if args.Get(0) != nil {
		revenue = args.Get(0).(*domain.SellerRevenue)
	}
	return revenue, args.Error(1)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, r, size, contentType).Error(0)
}

func (m *MockFileStore) Open(ctx context.Context, key string) (io.ReadCloser, *portsrepo.ObjectInfo, error) {
	args := m.Called(ctx, key)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	var info *portsrepo.ObjectInfo
	if args.Get(1) != nil {
		info = args.Get(1).(*portsrepo.ObjectInfo)
	}
	return rc, info, args.Error(2)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// --- Mock CleanupQueueRepository ---
type MockCleanupQueue struct {
	mock.Mock
}

func (m *MockCleanupQueue) Enqueue(ctx context.Context, keys ...string) error {
	args := []any{ctx}
	for _, k := range keys {
		args = append(args, k)
	}
	return m.Called(args...).Error(0)
}

func (m *MockCleanupQueue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]domain.CleanupTask, error) {
	args := m.Called(ctx, now, limit)
	var tasks []domain.CleanupTask
	if args.Get(0) != nil {
		tasks = args.Get(0).([]domain.CleanupTask)
	}
	return tasks, args.Error(1)
}

func (m *MockCleanupQueue) Complete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCleanupQueue) Reschedule(ctx context.Context, id int64, next time.Time, lastErr string) error {
	return m.Called(ctx, id, next, lastErr).Error(0)
}

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
	var p *domain.Principal
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Principal)
	}
	return p, args.Error(1)
}

// --- Mock GoogleOAuthService ---
type MockGoogleOAuth struct {
	mock.Mock
}

func (m *MockGoogleOAuth) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	var tok *oauth2.Token
	if args.Get(0) != nil {
		tok = args.Get(0).(*oauth2.Token)
	}
	return tok, args.Error(1)
}

func (m *MockGoogleOAuth) ValidateGoogleIDToken(ctx context.Context, idToken string) (*domain.FederatedIdentity, error) {
	args := m.Called(ctx, idToken)
	var id *domain.FederatedIdentity
	if args.Get(0) != nil {
		id = args.Get(0).(*domain.FederatedIdentity)
	}
	return id, args.Error(1)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(ctx context.Context, to, firstName, code string, ttl time.Duration) error {
	return m.Called(ctx, to, firstName, code, ttl).Error(0)
}

// --- Mock AttemptLimiter ---
type MockAttemptLimiter struct {
	mock.Mock
}

func (m *MockAttemptLimiter) Hit(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockAttemptLimiter) Reset(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// countingNudger records sweeper wake-ups.
type countingNudger struct {
	n atomic.Int32
}

func (c *countingNudger) Nudge() { c.n.Add(1) }

func (c *countingNudger) Count() int { return int(c.n.Load()) }

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }
