package dto

import (
	"time"

	"github.com/vinque/vinque_backend/internal/core/domain"
)

// AccountResponse is an account without its password hash.
type AccountResponse struct {
	UserID         int64       `json:"user_id"`
	Username       string      `json:"username"`
	Role           domain.Role `json:"role"`
	Email          *string     `json:"email"`
	Phone          *string     `json:"phone"`
	BusinessPermit *string     `json:"business_permit"`
	CreatedAt      time.Time   `json:"created_at"`
}

// ToAccountResponses converts accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = AccountResponse{
			UserID:         a.UserID,
			Username:       a.Username,
			Role:           a.Role,
			Email:          a.Email,
			Phone:          a.Phone,
			BusinessPermit: a.BusinessPermitPath,
			CreatedAt:      a.CreatedAt,
		}
	}
	return out
}

// LoginHistoryResponse is one login history row.
type LoginHistoryResponse struct {
	UserID    int64       `json:"user_id"`
	Role      domain.Role `json:"role"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Login     string      `json:"login"`
	Logout    *string     `json:"logout"`
}

// ToLoginHistoryResponses converts sessions, formatting timestamps.
func ToLoginHistoryResponses(sessions []domain.LoginSession) []LoginHistoryResponse {
	out := make([]LoginHistoryResponse, len(sessions))
	for i, s := range sessions {
		var logout *string
		if s.LogoutAt != nil {
			v := FormatTimestamp(*s.LogoutAt)
			logout = &v
		}
		out[i] = LoginHistoryResponse{
			UserID:    s.UserID,
			Role:      s.Role,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Login:     FormatTimestamp(s.LoginAt),
			Logout:    logout,
		}
	}
	return out
}
