package domain

import (
	"strings"
	"time"
)

// Role is the marketplace role attached to an account.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleSeller   Role = "Seller"
	RoleCustomer Role = "Customer"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleCustomer:
		return true
	}
	return false
}

// CanSelfRegister reports whether the role may be created through signup.
func (r Role) CanSelfRegister() bool {
	return r == RoleSeller || r == RoleCustomer
}

// ApprovalStatus tracks an admin's decision on a seller application.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Account is the login identity shared by every role.
type Account struct {
	UserID             int64
	Username           string
	PasswordHash       *string // nil for federated-only identities
	Role               Role
	Email              *string
	Phone              *string
	BusinessPermitPath *string
	CreatedAt          time.Time
}

// HasLocalCredential reports whether the account can log in with a password.
func (a Account) HasLocalCredential() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// AccountIdentity is what a successful authentication resolves to.
type AccountIdentity struct {
	UserID     int64
	Username   string
	Role       Role
	FirstName  string
	LastName   string
	Email      string
	SellerID   *int64
	CustomerID *int64
	HistoryID  int64
}

// AdminDisplayName is the fixed name recorded for admin logins.
var AdminDisplayName = [2]string{"The", "Admin"}

// SplitDisplayName splits a provider display name into first and last name at
// the first space.
func SplitDisplayName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.Fields(name)
	return parts[0], strings.Join(parts[1:], " ")
}

// LoginRecord is an account joined with whichever profile it owns.
type LoginRecord struct {
	Account        Account
	FirstName      string
	LastName       string
	SellerID       *int64
	CustomerID     *int64
	ApprovalStatus *ApprovalStatus
}

// DisplayName returns the names recorded in login history.
func (r LoginRecord) DisplayName() (string, string) {
	if r.Account.Role == RoleAdmin {
		return AdminDisplayName[0], AdminDisplayName[1]
	}
	return r.FirstName, r.LastName
}

// SellerBlocked reports whether a seller account is still awaiting approval
// (or was rejected) and must not be issued a session.
func (r LoginRecord) SellerBlocked() bool {
	if r.Account.Role != RoleSeller {
		return false
	}
	return r.ApprovalStatus == nil || *r.ApprovalStatus != ApprovalApproved
}

// AcceptsOTP reports whether the account may sign in with an emailed code.
// Only federated customer and seller accounts qualify.
func (r LoginRecord) AcceptsOTP() bool {
	return r.Account.Role != RoleAdmin && !r.Account.HasLocalCredential()
}

// OwnsEmail reports whether email is the address stored on the account.
func (r LoginRecord) OwnsEmail(email string) bool {
	if r.Account.Email == nil {
		return false
	}
	stored := strings.TrimSpace(*r.Account.Email)
	return stored != "" && strings.EqualFold(stored, strings.TrimSpace(email))
}

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID     int64
	Role       Role
	SellerID   *int64
	CustomerID *int64
}

// OwnsSeller reports whether the principal acts for the given seller.
func (p Principal) OwnsSeller(sellerID int64) bool {
	return p.SellerID != nil && *p.SellerID == sellerID
}

// OwnsCustomer reports whether the principal acts for the given customer.
func (p Principal) OwnsCustomer(customerID int64) bool {
	return p.CustomerID != nil && *p.CustomerID == customerID
}
