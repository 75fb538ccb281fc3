package domain

import "time"

// TransactionStatus is the lifecycle state of a balance-changing transaction.
// Transitions are one-way: ACTIVE -> COMMITTED -> ABORTED. ACTIVE is a
// transient intermediate inside a spend operation and is never observable
// through the API.
type TransactionStatus string

const (
	TransactionStatusActive    TransactionStatus = "ACTIVE"
	TransactionStatusCommitted TransactionStatus = "COMMITTED"
	TransactionStatusAborted   TransactionStatus = "ABORTED"
)

// Transaction records one debit against an account. Amount is fixed at
// creation. Aborting credits the exact amount back and is terminal.
type Transaction struct {
	TransactionID string
	AccountID     string
	Status        TransactionStatus
	Amount        int64
	AbortedAt     *time.Time // set iff Status == ABORTED
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
