package domain

import "errors"

var (
	ErrSettlementNotFound  = errors.New("settlement not found")
	ErrSettlementNotDraft  = errors.New("settlement is not in DRAFT status")
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
	ErrInvalidAmount       = errors.New("ledger amount must be positive")
	ErrInvalidDirection    = errors.New("ledger direction must be IN or OUT")
	ErrStatusConflict      = errors.New("settlement status changed concurrently")
	ErrRateOutOfRange      = errors.New("rate must be between 0 and 100")
	ErrNotFound            = errors.New("record not found")
)
