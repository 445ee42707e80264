package domain

import "time"

// OTPCodeLength is the number of digits in a one-time code.
const OTPCodeLength = 6

// OTPCode is an issued one-time code.
type OTPCode struct {
	OTPID      int64
	UserID     int64
	Email      string
	Code       string
	ExpiresAt  time.Time
	IsVerified bool
	CreatedAt  time.Time
}

// LoginSession is one row of login history.
type LoginSession struct {
	HistoryID int64
	UserID    int64
	Role      Role
	FirstName string
	LastName  string
	LoginAt   time.Time
	LogoutAt  *time.Time
}
