package ledger

import "errors"

var (
	ErrInvalidSymbol      = errors.New("Invalid symbol")
	ErrInvalidShareCount  = errors.New("Shares must be a positive whole number")
	ErrInvalidAmount      = errors.New("Amount must be a positive number")
	ErrInsufficientFunds  = errors.New("Not enough cash to buy these shares")
	ErrInsufficientShares = errors.New("Not enough shares to sell")
	ErrQuoteUnavailable   = errors.New("Quote unavailable")
	ErrUserNotFound       = errors.New("User not found")
)
