package trip

import (
	"errors"
	"testing"

	"poultry-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSyncCustomerBalance(t *testing.T) {
	cu := models.Customer{ID: 2, OutstandingAmount: 1000, OutstandingType: models.BalanceTypeDebit}

	var written map[string]any
	ok := syncCustomerBalance(&cu, 3500, func(fields map[string]any) error {
		written = fields
		return nil
	})

	assert.True(t, ok)
	assert.Equal(t, 3500.0, written["outstanding_amount"])
	assert.Equal(t, models.BalanceTypeDebit, written["outstanding_type"])
	assert.Equal(t, 3500.0, cu.SignedBalance())
}

func TestSyncCustomerBalanceWriteFailure(t *testing.T) {
	cu := models.Customer{ID: 2, OutstandingAmount: 1000, OutstandingType: models.BalanceTypeDebit}

	ok := syncCustomerBalance(&cu, 3500, func(map[string]any) error {
		return errors.New("connection reset")
	})

	// The failure is reported, nothing is unwound.
	assert.False(t, ok)
	assert.Equal(t, 3500.0, cu.SignedBalance())
}
