package services_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vinque/vinque_backend/internal/apperrors"
	"github.com/vinque/vinque_backend/internal/core/domain"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func pngUpload(name string) *domain.FileUpload {
	return &domain.FileUpload{
		Filename:    name,
		Size:        int64(len(pngMagic)),
		ContentType: "image/png",
		Body:        bytes.NewReader(pngMagic),
	}
}

func requireAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected *apperrors.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
	if message != "" {
		require.Equal(t, message, appErr.Message)
	}
}

func sellerPrincipal(sellerID int64) *domain.Principal {
	return &domain.Principal{UserID: 100 + sellerID, Role: domain.RoleSeller, SellerID: &sellerID}
}

func customerPrincipal(customerID int64) *domain.Principal {
	return &domain.Principal{UserID: 200 + customerID, Role: domain.RoleCustomer, CustomerID: &customerID}
}

func adminPrincipal() *domain.Principal {
	return &domain.Principal{UserID: 1, Role: domain.RoleAdmin}
}
