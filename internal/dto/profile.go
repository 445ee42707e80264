package dto

import (
	"github.com/vinque/vinque_backend/internal/core/domain"
	"github.com/vinque/vinque_backend/internal/utils"
)

// CustomerProfileResponse is the customer profile page payload.
type CustomerProfileResponse struct {
	CustomerID int64   `json:"customer_id"`
	UserID     int64   `json:"user_id"`
	Username   string  `json:"username"`
	FirstName  string  `json:"First_name"`
	LastName   string  `json:"Last_name"`
	Phone      string  `json:"phone_num"`
	Address    string  `json:"Address"`
	Email      string  `json:"email"`
	ProfilePic *string `json:"profile_pic"`
	AboutInfo  *string `json:"about_info"`
}

// ToCustomerProfileResponse converts a customer profile.
func ToCustomerProfileResponse(p *domain.CustomerProfile) CustomerProfileResponse {
	return CustomerProfileResponse{
		CustomerID: p.CustomerID,
		UserID:     p.UserID,
		Username:   p.Username,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Phone:      p.Phone,
		Address:    p.Address,
		Email:      p.Email,
		ProfilePic: utils.PublicUploadPath(p.ProfilePic),
		AboutInfo:  p.AboutInfo,
	}
}

// CustomerProfileForm is the multipart body of profile-update; the picture
// arrives as the profile_image part.
type CustomerProfileForm struct {
	Username  string `form:"username"`
	Phone     string `form:"phone_num"`
	Address   string `form:"Address"`
	Email     string `form:"email"`
	AboutInfo string `form:"about_info"`
}

// SellerProfileForm is the multipart body of seller/update.
type SellerProfileForm struct {
	BusinessName        string `form:"business_name"`
	BusinessDescription string `form:"business_description"`
	BusinessAddress     string `form:"business_address"`
	Phone               string `form:"phone_num"`
	ProfilePicURL       string `form:"profile_pic_url"`
}

// ProfileUpdateResponse reports the picture now in effect.
type ProfileUpdateResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	ProfilePic  *string `json:"profile_pic,omitempty"`
	SellerImage *string `json:"seller_image,omitempty"`
}

// SellerResponse is a seller profile without credentials.
type SellerResponse struct {
	SellerID            int64                 `json:"seller_id"`
	UserID              int64                 `json:"user_id"`
	BusinessName        string                `json:"business_name"`
	FirstName           string                `json:"First_name"`
	LastName            string                `json:"Last_name"`
	BusinessAddress     string                `json:"business_address"`
	Email               string                `json:"email"`
	Phone               string                `json:"phone_num"`
	PaypalNumber        *string               `json:"paypal_number"`
	BusinessPermitFile  *string               `json:"business_permit_file"`
	ApprovalStatus      domain.ApprovalStatus `json:"approval_status"`
	BusinessDescription *string               `json:"business_description"`
	SellerImage         *string               `json:"seller_image"`
}

// ToSellerResponse converts a seller profile.
func ToSellerResponse(s domain.SellerProfile) SellerResponse {
	return SellerResponse{
		SellerID:            s.SellerID,
		UserID:              s.UserID,
		BusinessName:        s.BusinessName,
		FirstName:           s.FirstName,
		LastName:            s.LastName,
		BusinessAddress:     s.BusinessAddress,
		Email:               s.Email,
		Phone:               s.Phone,
		PaypalNumber:        s.PaypalNumber,
		BusinessPermitFile:  utils.PublicUploadPath(s.BusinessPermitFile),
		ApprovalStatus:      s.ApprovalStatus,
		BusinessDescription: s.BusinessDescription,
		SellerImage:         utils.PublicUploadPath(s.SellerImage),
	}
}

// ToSellerResponses converts seller profiles.
func ToSellerResponses(sellers []domain.SellerProfile) []SellerResponse {
	out := make([]SellerResponse, len(sellers))
	for i, s := range sellers {
		out[i] = ToSellerResponse(s)
	}
	return out
}

// StoreResponse is a public storefront.
type StoreResponse struct {
	Status   string                `json:"status"`
	Store    StoreInfo             `json:"store"`
	Products []ProductCardResponse `json:"products"`
}

// StoreInfo is the storefront header.
type StoreInfo struct {
	SellerID            int64   `json:"seller_id"`
	BusinessName        string  `json:"business_name"`
	BusinessDescription *string `json:"business_description"`
	BusinessAddress     string  `json:"business_address"`
	SellerImage         *string `json:"seller_image"`
	Phone               string  `json:"phone_num"`
	TotalProducts       int     `json:"total_products"`
}

// ToStoreResponse converts a storefront.
func ToStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		Status: "success",
		Store: StoreInfo{
			SellerID:            s.SellerID,
			BusinessName:        s.BusinessName,
			BusinessDescription: s.BusinessDescription,
			BusinessAddress:     s.BusinessAddress,
			SellerImage:         utils.PublicUploadPath(s.SellerImage),
			Phone:               s.Phone,
			TotalProducts:       s.TotalProducts,
		},
		Products: ToProductCardResponses(s.Products),
	}
}
