package dto

import "github.com/vinque/vinque_backend/internal/core/domain"

// SignupRequest is accepted as JSON or multipart form. The business permit
// arrives as a separate multipart file part.
type SignupRequest struct {
	Username   string `json:"username" form:"username"`
	Password   string `json:"password" form:"password"`
	Email      string `json:"email" form:"email"`
	Role       string `json:"role" form:"role"`
	FirstName  string `json:"first_name" form:"first_name"`
	LastName   string `json:"last_name" form:"last_name"`
	Phone      string `json:"phone" form:"phone"`
	Address    string `json:"address" form:"address"`
	Paypal     string `json:"paypal" form:"paypal"`
	FromGoogle bool   `json:"fromGoogle" form:"fromGoogle"`
	Credential string `json:"credential" form:"credential"`
}

// RegisteredUser is the user block returned by signup.
type RegisteredUser struct {
	UserID    int64       `json:"user_id"`
	Role      domain.Role `json:"role"`
	FirstName string      `json:"First_name"`
	LastName  string      `json:"Last_name"`
	Email     string      `json:"email"`
}

// SignupResponse is returned with 201 Created.
type SignupResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// ToSignupResponse converts a registered account to its response DTO.
func ToSignupResponse(a *domain.RegisteredAccount) SignupResponse {
	return SignupResponse{
		Status:  "success",
		Message: "User registered successfully",
		User: RegisteredUser{
			UserID:    a.UserID,
			Role:      a.Role,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
		},
	}
}

// LoginRequest carries local credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// SessionUser is the authenticated user block.
type SessionUser struct {
	UserID     int64       `json:"user_id"`
	Username   string      `json:"username"`
	Role       domain.Role `json:"role"`
	FirstName  string      `json:"First_name"`
	LastName   string      `json:"Last_name"`
	Email      string      `json:"email,omitempty"`
	SellerID   *int64      `json:"seller_id"`
	CustomerID *int64      `json:"customer_id"`
	HistoryID  int64       `json:"history_id"`
}

// LoginResponse is returned by local and federated login.
type LoginResponse struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	User        SessionUser `json:"user"`
	Token       string      `json:"token"`
	IsNewUser   *bool       `json:"isNewUser,omitempty"`
	RequiresOTP *bool       `json:"requiresOTP,omitempty"`
}

// ToSessionUser converts an authenticated identity to its response DTO.
func ToSessionUser(id *domain.AccountIdentity) SessionUser {
	return SessionUser{
		UserID:     id.UserID,
		Username:   id.Username,
		Role:       id.Role,
		FirstName:  id.FirstName,
		LastName:   id.LastName,
		Email:      id.Email,
		SellerID:   id.SellerID,
		CustomerID: id.CustomerID,
		HistoryID:  id.HistoryID,
	}
}

// GoogleSignupRequest carries a Google ID token.
type GoogleSignupRequest struct {
	Credential string `json:"credential" binding:"required,notblank"`
}

// ExchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required,notblank"`
}

// ProspectUser is returned for unknown Google identities so the client can
// finish signup.
type ProspectUser struct {
	Email     string  `json:"email"`
	FirstName string  `json:"First_name"`
	LastName  string  `json:"Last_name"`
	GoogleID  string  `json:"googleId"`
	Picture   *string `json:"picture"`
}

// ProspectResponse is the "new user" branch of the federated bridge.
type ProspectResponse struct {
	Status      string       `json:"status"`
	Message     string       `json:"message"`
	IsNewUser   bool         `json:"isNewUser"`
	RequiresOTP bool         `json:"requiresOTP"`
	User        ProspectUser `json:"user"`
}

// ToProspectResponse builds the signup hint for an unknown identity.
func ToProspectResponse(p *domain.FederatedIdentity) ProspectResponse {
	first, last := domain.SplitDisplayName(p.Name)
	var picture *string
	if p.Picture != "" {
		picture = &p.Picture
	}
	return ProspectResponse{
		Status:      "success",
		Message:     "New Google user, please complete registration",
		IsNewUser:   true,
		RequiresOTP: true,
		User: ProspectUser{
			Email:     p.Email,
			FirstName: first,
			LastName:  last,
			GoogleID:  p.Subject,
			Picture:   picture,
		},
	}
}

// LogoutRequest identifies the session to close.
type LogoutRequest struct {
	UserID int64       `json:"user_id" binding:"required,gt=0"`
	Role   domain.Role `json:"role" binding:"required,oneof=Admin Seller Customer"`
}

// SendOTPRequest asks for a one-time code to be emailed.
type SendOTPRequest struct {
	UserID int64  `json:"user_id" binding:"required,gt=0"`
	Email  string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest submits a one-time code.
type VerifyOTPRequest struct {
	UserID  int64  `json:"user_id" binding:"required,gt=0"`
	OTPCode string `json:"otp_code" binding:"required,notblank"`
}

// VerifyOTPResponse carries the session opened by the code.
type VerifyOTPResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
	Token   string      `json:"token"`
}
