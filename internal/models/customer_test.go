package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerSignedBalance(t *testing.T) {
	c := Customer{OutstandingAmount: 1500, OutstandingType: BalanceTypeDebit}
	assert.Equal(t, 1500.0, c.SignedBalance())

	c.OutstandingType = BalanceTypeCredit
	assert.Equal(t, -1500.0, c.SignedBalance())
}

func TestCustomerSetSignedBalance(t *testing.T) {
	var c Customer

	c.SetSignedBalance(2000)
	assert.Equal(t, 2000.0, c.OutstandingAmount)
	assert.Equal(t, BalanceTypeDebit, c.OutstandingType)

	c.SetSignedBalance(-300)
	assert.Equal(t, 300.0, c.OutstandingAmount)
	assert.Equal(t, BalanceTypeCredit, c.OutstandingType)

	// Zero settles to a debit of zero, never a phantom credit.
	c.SetSignedBalance(0)
	assert.Equal(t, 0.0, c.OutstandingAmount)
	assert.Equal(t, BalanceTypeDebit, c.OutstandingType)
}

func TestUserRoleCanEditCompleted(t *testing.T) {
	assert.False(t, RoleSupervisor.CanEditCompleted())
	assert.True(t, RoleAdmin.CanEditCompleted())
	assert.True(t, RoleSuperAdmin.CanEditCompleted())
}
