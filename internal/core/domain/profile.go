package domain

// CustomerProfile is the role row owned by a Customer account.
type CustomerProfile struct {
	CustomerID int64
	UserID     int64
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	Email      string
	ProfilePic *string
	AboutInfo  *string
	Username   string // joined from accounts on reads
}

// SellerProfile is the role row owned by a Seller account.
type SellerProfile struct {
	SellerID            int64
	UserID              int64
	BusinessName        string
	FirstName           string
	LastName            string
	BusinessAddress     string
	Email               string
	Phone               string
	PaypalNumber        *string
	BusinessPermitFile  *string
	ApprovalStatus      ApprovalStatus
	BusinessDescription *string
	SellerImage         *string
}

// IsApproved reports whether the approval gate is open.
func (s SellerProfile) IsApproved() bool {
	return s.ApprovalStatus == ApprovalApproved
}

// Store is the public storefront of a seller.
type Store struct {
	SellerID            int64
	BusinessName        string
	BusinessDescription *string
	BusinessAddress     string
	SellerImage         *string
	Phone               string
	TotalProducts       int
	Products            []ProductCard
}

// CustomerProfileUpdate carries the editable customer fields.
type CustomerProfileUpdate struct {
	Username   string
	Phone      string
	Address    string
	Email      string
	AboutInfo  string
	ProfilePic *string // new object key, nil keeps the current one
}

// SellerProfileUpdate carries the editable storefront fields.
type SellerProfileUpdate struct {
	BusinessName        string
	BusinessDescription string
	BusinessAddress     string
	Phone               string
	SellerImage         *string // new object key or external URL, nil keeps the current one
}
