package domain

import "time"

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// Account holds a single-currency balance in the smallest currency unit.
// The balance is never negative and the status only moves ACTIVE -> CLOSED.
// Closed accounts stay in storage; closing is a terminal status change,
// not a deletion.
type Account struct {
	AccountID     string
	ClientID      string
	AccountNumber string // externally visible, globally unique, never reused
	Status        AccountStatus
	Balance       int64
	ClosedAt      *time.Time // set iff Status == CLOSED
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsClosed reports whether the account has been terminally closed.
func (a *Account) IsClosed() bool {
	return a.Status == AccountStatusClosed
}
