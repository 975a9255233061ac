package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpendCredit_EmptyBalanceRejected(t *testing.T) {
	newBalance, allowed := SpendCredit(0)
	assert.False(t, allowed)
	assert.Equal(t, 0, newBalance)
}

func TestSpendCredit_DeductsOne(t *testing.T) {
	newBalance, allowed := SpendCredit(1)
	assert.True(t, allowed)
	assert.Equal(t, 0, newBalance)

	newBalance, allowed = SpendCredit(SignupCreditGrant)
	assert.True(t, allowed)
	assert.Equal(t, SignupCreditGrant-1, newBalance)
}

func TestSpendCredit_NeverGoesNegative(t *testing.T) {
	balance := SignupCreditGrant
	for i := 0; i < 10; i++ {
		var allowed bool
		balance, allowed = SpendCredit(balance)
		assert.GreaterOrEqual(t, balance, 0)
		if balance == 0 && !allowed {
			// once empty, every further call is a no-op rejection
			assert.False(t, allowed)
		}
	}
	assert.Equal(t, 0, balance)
}

func TestSpendCredit_NormalizesCorruptNegativeBalance(t *testing.T) {
	newBalance, allowed := SpendCredit(-3)
	assert.False(t, allowed)
	assert.Equal(t, 0, newBalance)
}
