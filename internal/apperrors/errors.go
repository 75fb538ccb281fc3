package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrorCode identifies one business validation gate. Every failed operation
// surfaces exactly one code; the HTTP layer maps codes to statuses.
type ErrorCode string

const (
	CodeClientNotFound                 ErrorCode = "CLIENT_NOT_FOUND"
	CodeAccountNotFound                ErrorCode = "ACCOUNT_NOT_FOUND"
	CodeAccountLimitReached            ErrorCode = "ACCOUNT_LIMIT_REACHED"
	CodeAccountClosed                  ErrorCode = "ACCOUNT_CLOSED"
	CodeAccountWithBalance             ErrorCode = "ACCOUNT_WITH_BALANCE"
	CodeAccountOwnedByOtherClient      ErrorCode = "ACCOUNT_OWNED_BY_OTHER_CLIENT"
	CodeTransactionInsufficientFunds   ErrorCode = "TRANSACTION_INSUFFICIENT_FUNDS"
	CodeTransactionBelowMinThreshold   ErrorCode = "TRANSACTION_BELOW_MIN_THRESHOLD"
	CodeTransactionExceedsMaxThreshold ErrorCode = "TRANSACTION_EXCEEDS_MAX_THRESHOLD"
	CodeTransactionNotFound            ErrorCode = "TRANSACTION_NOT_FOUND"
	CodeTransactionAccountNotMatched   ErrorCode = "TRANSACTION_ACCOUNT_NOT_MATCHED"
	CodeTransactionInvalidAmount       ErrorCode = "TRANSACTION_INVALID_AMOUNT"
	CodeTransactionNotCommitted        ErrorCode = "TRANSACTION_NOT_COMMITTED"
)

// BusinessError is a deterministic outcome of business-rule evaluation, not
// a transient fault. It is returned as a value and never retried.
type BusinessError struct {
	Code        ErrorCode
	Description string
}

func (e *BusinessError) Error() string {
	return e.Description
}

var (
	ErrClientNotFound                 = &BusinessError{CodeClientNotFound, "there is no client with requested username"}
	ErrAccountNotFound                = &BusinessError{CodeAccountNotFound, "there is no account with requested account number"}
	ErrAccountLimitReached            = &BusinessError{CodeAccountLimitReached, "client already has the maximum number of accounts (10 accounts)"}
	ErrAccountClosed                  = &BusinessError{CodeAccountClosed, "account is already closed"}
	ErrAccountWithBalance             = &BusinessError{CodeAccountWithBalance, "account has non-zero balance"}
	ErrAccountOwnedByOtherClient      = &BusinessError{CodeAccountOwnedByOtherClient, "account is owned by someone else"}
	ErrTransactionInsufficientFunds   = &BusinessError{CodeTransactionInsufficientFunds, "account has insufficient balance to make the transaction"}
	ErrTransactionBelowMinThreshold   = &BusinessError{CodeTransactionBelowMinThreshold, "transaction amount is below minimum threshold"}
	ErrTransactionExceedsMaxThreshold = &BusinessError{CodeTransactionExceedsMaxThreshold, "transaction amount is above maximum threshold"}
	ErrTransactionNotFound            = &BusinessError{CodeTransactionNotFound, "there is no transaction with requested transaction id"}
	ErrTransactionAccountNotMatched   = &BusinessError{CodeTransactionAccountNotMatched, "transaction is made on another account"}
	ErrTransactionInvalidAmount       = &BusinessError{CodeTransactionInvalidAmount, "requested amount does not match the transaction record"}
	ErrTransactionNotCommitted        = &BusinessError{CodeTransactionNotCommitted, "transaction is not committed yet or aborted"}
)
