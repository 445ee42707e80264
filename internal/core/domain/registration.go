package domain

import "io"

// FileUpload is a client file that has passed transport-level checks but has
// not been written anywhere yet.
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Registration is a validated signup request ready to be persisted.
type Registration struct {
	Account  Account
	Customer *CustomerProfile
	Seller   *SellerProfile
}

// RegisteredAccount is returned after a successful signup.
type RegisteredAccount struct {
	UserID    int64
	Role      Role
	FirstName string
	LastName  string
	Email     string
}

// FederatedIdentity holds the verified claims of a third-party identity token.
type FederatedIdentity struct {
	Subject       string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// FederatedLoginResult is the outcome of the federated bridge: either an
// authenticated identity or the attributes needed to finish signup.
type FederatedLoginResult struct {
	IsNewUser   bool
	RequiresOTP bool
	Identity    *AccountIdentity
	Prospect    *FederatedIdentity
}
