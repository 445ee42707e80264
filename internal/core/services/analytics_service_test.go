package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/core/services"
	"github.com/vinque/vinque_backend/internal/dto"
)

func TestAnalyticsService_SellerStatsUsesCurrentYear(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	svc := services.NewAnalyticsService(repo)
	services.SetAnalyticsClock(svc, func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) })

	repo.On("SellerStats", mock.Anything, int64(4), 2025).Return(&domain.SellerStats{BusinessName: "Old Curios"}, nil).Once()
	repo.On("SellerRevenue", mock.Anything, int64(4), 2025).Return(&domain.SellerRevenue{BusinessName: "Old Curios"}, nil).Once()

	stats, err := svc.SellerStats(context.Background(), sellerPrincipal(4), 4)
	require.NoError(t, err)
	assert.Equal(t, "Old Curios", stats.BusinessName)

	_, err = svc.SellerRevenue(context.Background(), sellerPrincipal(4), 4)
	require.NoError(t, err)

	_, err = svc.SellerStats(context.Background(), sellerPrincipal(5), 4)
	requireAppError(t, err, http.StatusForbidden, "")
	repo.AssertExpectations(t)
}

func TestAnalyticsService_TrackProductViewDropsInvalidCustomer(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	svc := services.NewAnalyticsService(repo)
	repo.On("TrackProductView", mock.Anything, int64(31), (*int64)(nil)).Return(12, nil).Once()

	count, err := svc.TrackProductView(context.Background(), dto.TrackProductViewRequest{ProductID: 31, CustomerID: int64Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, 12, count)
	repo.AssertExpectations(t)
}

func TestAnalyticsService_RecordStoreVisit(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	svc := services.NewAnalyticsService(repo)
	repo.On("RecordStoreVisit", mock.Anything, int64(4), int64Ptr(2)).Return(nil).Once()

	require.NoError(t, svc.RecordStoreVisit(context.Background(), dto.VisitStoreRequest{CustomerID: 2, SellerID: 4}))
	repo.AssertExpectations(t)
}
