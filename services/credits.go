package services

import (
	"errors"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrInvalidStatus       = errors.New("invalid status transition")
)

// SignupCreditGrant is the free posting quota for new employer accounts.
const SignupCreditGrant = 2

// SpendCredit deducts one posting credit. When the balance is empty the post
// is disallowed and the balance is returned unchanged; a balance can never go
// negative through this path.
func SpendCredit(balance int) (newBalance int, allowed bool) {
	if balance <= 0 {
		if balance < 0 {
			balance = 0
		}
		return balance, false
	}
	return balance - 1, true
}
