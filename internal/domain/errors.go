package domain

import "errors"

// Error messages double as the API response messages; "Insuficient
// funds." keeps its historical spelling, clients match on it.
var ErrAccountExists = errors.New("Account already exists.")
var ErrAccountNotFound = errors.New("Account not found.")
var ErrInsufficientFunds = errors.New("Insuficient funds.")
