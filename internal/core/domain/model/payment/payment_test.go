package payment_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rupees(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromRupees(amount)
	require.NoError(t, err)
	return money
}

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(
		kernel.NewUUID(), rupees(t, 25000),
		payment.TypeAdvance, payment.MethodUPI, time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("should record a pending payment with a reference", func(t *testing.T) {
		p := newTestPayment(t)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Regexp(t, `^PAY\d+`, p.Reference())
		assert.Nil(t, p.InitiatedAt())
		assert.Nil(t, p.CompletedAt())
		assert.Empty(t, p.History())
	})
}

func TestPayment_Lifecycle(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should settle through the gateway", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Initiate("razorpay", now))
		assert.Equal(t, payment.StatusInitiated, p.Status())
		assert.Equal(t, "razorpay", p.GatewayName())
		require.NotNil(t, p.InitiatedAt())

		require.NoError(t, p.MarkProcessing(now))
		require.NoError(t, p.Complete("txn_9f3k", now))

		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.Equal(t, "txn_9f3k", p.GatewayTransactionID())
		require.NotNil(t, p.CompletedAt())
		assert.Len(t, p.History(), 3)
	})

	t.Run("should complete straight from initiated", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Initiate("razorpay", now))

		assert.NoError(t, p.Complete("txn_1", now))
	})

	t.Run("should record gateway decline with reason", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Initiate("razorpay", now))

		require.NoError(t, p.Fail("insufficient funds", now))

		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Equal(t, "insufficient funds", p.FailureReason())
		require.NotNil(t, p.FailedAt())
	})

	t.Run("should refund a completed payment only", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Initiate("razorpay", now))
		require.NoError(t, p.Complete("txn_2", now))

		require.NoError(t, p.Refund(now))
		assert.Equal(t, payment.StatusRefunded, p.Status())

		fresh := newTestPayment(t)
		assert.Error(t, fresh.Refund(now))
	})

	t.Run("should cancel before gateway settlement only", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Cancel(now))
		assert.Equal(t, payment.StatusCancelled, p.Status())

		settled := newTestPayment(t)
		require.NoError(t, settled.Initiate("razorpay", now))
		require.NoError(t, settled.Complete("txn_3", now))
		assert.Error(t, settled.Cancel(now))
	})

	t.Run("should refuse initiating without a gateway name", func(t *testing.T) {
		p := newTestPayment(t)

		assert.Error(t, p.Initiate("", now))
		assert.Equal(t, payment.StatusPending, p.Status())
	})

	t.Run("should refuse completing without a transaction reference", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Initiate("razorpay", now))

		assert.Error(t, p.Complete("", now))
		assert.Equal(t, payment.StatusInitiated, p.Status())
	})

	t.Run("should refuse transitions out of final statuses", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Initiate("razorpay", now))
		require.NoError(t, p.Fail("declined", now))

		assert.Error(t, p.Complete("txn_4", now))
		assert.Error(t, p.Initiate("razorpay", now))
	})
}

func TestInvoice(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	newInvoice := func(t *testing.T, discountRupees float64) *payment.Invoice {
		t.Helper()
		inv, err := payment.NewInvoice(
			kernel.NewUUID(), 7,
			rupees(t, 20000), rupees(t, 3000), rupees(t, 1500),
			rupees(t, 1000), rupees(t, 1000), rupees(t, 500),
			rupees(t, discountRupees),
			9, 9, 0,
			now,
		)
		require.NoError(t, err)
		return inv
	}

	t.Run("should number invoices by day and sequence", func(t *testing.T) {
		inv := newInvoice(t, 0)

		assert.Equal(t, "INV202603140007", inv.Number())
		assert.False(t, inv.IsGenerated())
	})

	t.Run("should total charges with GST", func(t *testing.T) {
		inv := newInvoice(t, 0)

		assert.InDelta(t, 27000, inv.Subtotal().Rupees(), 0.01)
		assert.InDelta(t, 2430, inv.CGSTAmount().Rupees(), 0.01)
		assert.InDelta(t, 2430, inv.SGSTAmount().Rupees(), 0.01)
		assert.True(t, inv.IGSTAmount().IsZero())
		assert.InDelta(t, 4860, inv.TaxAmount().Rupees(), 0.01)
		assert.InDelta(t, 31860, inv.Total().Rupees(), 0.01)
	})

	t.Run("should deduct the discount from the total", func(t *testing.T) {
		inv := newInvoice(t, 1860)

		assert.InDelta(t, 30000, inv.Total().Rupees(), 0.01)
	})

	t.Run("should clamp the total at zero for an excessive discount", func(t *testing.T) {
		inv := newInvoice(t, 99999)

		assert.True(t, inv.Total().IsZero())
	})

	t.Run("should reject an out of range daily sequence", func(t *testing.T) {
		_, err := payment.NewInvoice(
			kernel.NewUUID(), 0,
			rupees(t, 20000), rupees(t, 0), rupees(t, 0),
			rupees(t, 0), rupees(t, 0), rupees(t, 0), rupees(t, 0),
			9, 9, 0, now,
		)

		assert.Error(t, err)
	})

	t.Run("should reject negative GST rates", func(t *testing.T) {
		_, err := payment.NewInvoice(
			kernel.NewUUID(), 1,
			rupees(t, 20000), rupees(t, 0), rupees(t, 0),
			rupees(t, 0), rupees(t, 0), rupees(t, 0), rupees(t, 0),
			-1, 9, 0, now,
		)

		assert.Error(t, err)
	})
}
