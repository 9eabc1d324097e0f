package domain

import "errors"

// Erros de domínio compartilhados entre a API e o cliente do dashboard
var (
	ErrStateRequired    = errors.New("state is required")
	ErrStateNotFound    = errors.New("no sales data found for the selected state")
	ErrInvalidDate      = errors.New("invalid calendar date")
	ErrInvalidDateRange = errors.New("invalid date range: start is after end")
	ErrDateOutOfRange   = errors.New("date is outside the selected state's date range")
	ErrEmptyDataset     = errors.New("dataset has no sale records")
)
