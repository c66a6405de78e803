package quotation_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rupees(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromRupees(amount)
	require.NoError(t, err)
	return money
}

func newTestItems(t *testing.T, unitPriceRupees float64, quantity int) []*quotation.Item {
	t.Helper()
	item, err := quotation.NewItem(kernel.NewUUID(), nil, quantity, rupees(t, unitPriceRupees))
	require.NoError(t, err)
	return []*quotation.Item{item}
}

func newPendingQuotation(t *testing.T, totalRupees float64) *quotation.Quotation {
	t.Helper()
	q, err := quotation.NewQuotation(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		newTestItems(t, totalRupees, 1),
		rupees(t, totalRupees),
		quotation.DefaultValidityHours,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return q
}

func newSentQuotation(t *testing.T, totalRupees float64) *quotation.Quotation {
	t.Helper()
	q := newPendingQuotation(t, totalRupees)
	require.NoError(t, q.Send())
	return q
}

func TestNewQuotation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should total the items and retain the original amount", func(t *testing.T) {
		item, err := quotation.NewItem(kernel.NewUUID(), nil, 3, rupees(t, 5000))
		require.NoError(t, err)

		q, err := quotation.NewQuotation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]*quotation.Item{item}, rupees(t, 15000), 48, now,
		)

		require.NoError(t, err)
		assert.InDelta(t, 15000, q.TotalAmount().Rupees(), 0.01)
		assert.True(t, q.TotalAmount().IsEqual(q.OriginalAmount()))
		assert.Equal(t, quotation.StatusPending, q.Status())
		assert.Equal(t, 48, q.ValidityHours())
	})

	t.Run("should default the validity window", func(t *testing.T) {
		q, err := quotation.NewQuotation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			newTestItems(t, 10000, 1), rupees(t, 10000), 0, now,
		)

		require.NoError(t, err)
		assert.Equal(t, quotation.DefaultValidityHours, q.ValidityHours())
	})

	t.Run("should require at least one item", func(t *testing.T) {
		_, err := quotation.NewQuotation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, rupees(t, 10000), 24, now,
		)

		var required *errs.ValueIsRequiredError
		assert.ErrorAs(t, err, &required)
	})

	t.Run("should reject a total below the pricing floor", func(t *testing.T) {
		_, err := quotation.NewQuotation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			newTestItems(t, 6999, 1), rupees(t, 10000), 24, now,
		)

		var outOfRange *errs.ValueIsOutOfRangeError
		assert.ErrorAs(t, err, &outOfRange)
	})

	t.Run("should accept a total exactly at the pricing floor", func(t *testing.T) {
		_, err := quotation.NewQuotation(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			newTestItems(t, 7000, 1), rupees(t, 10000), 24, now,
		)

		assert.NoError(t, err)
	})
}

func TestQuotation_Send(t *testing.T) {
	t.Run("should move pending quotation to sent", func(t *testing.T) {
		q := newPendingQuotation(t, 10000)

		require.NoError(t, q.Send())

		assert.Equal(t, quotation.StatusSent, q.Status())
	})

	t.Run("should refuse to send twice", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		assert.Error(t, q.Send())
	})
}

func TestQuotation_Negotiate(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should record alternating proposals", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		require.NoError(t, q.Negotiate(quotation.PartyCustomer, rupees(t, 9000), "too high", now))
		assert.Equal(t, quotation.StatusNegotiating, q.Status())

		require.NoError(t, q.Negotiate(quotation.PartyVendor, rupees(t, 9500), "best rate", now))

		require.Len(t, q.Negotiations(), 2)
		assert.Equal(t, quotation.PartyVendor, q.LatestNegotiation().Initiator())
		assert.InDelta(t, 9500, q.LatestNegotiation().Proposed().Rupees(), 0.01)
	})

	t.Run("should refuse a proposal out of turn", func(t *testing.T) {
		q := newSentQuotation(t, 10000)
		require.NoError(t, q.Negotiate(quotation.PartyCustomer, rupees(t, 9000), "", now))

		err := q.Negotiate(quotation.PartyCustomer, rupees(t, 8500), "", now)

		assert.ErrorIs(t, err, quotation.ErrNegotiationOutOfTurn)
	})

	t.Run("should bound each step to the negotiation band", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		err := q.Negotiate(quotation.PartyCustomer, rupees(t, 8000), "", now)

		var outOfRange *errs.ValueIsOutOfRangeError
		assert.ErrorAs(t, err, &outOfRange)
	})

	t.Run("should measure the band against the latest proposal", func(t *testing.T) {
		q := newSentQuotation(t, 10000)
		require.NoError(t, q.Negotiate(quotation.PartyCustomer, rupees(t, 8500), "", now))

		// 7300 is outside ±15 % of the original total but within the band
		// around the live 8500 proposal.
		assert.NoError(t, q.Negotiate(quotation.PartyVendor, rupees(t, 7300), "", now))
	})

	t.Run("should enforce the floor against the original total", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		proposals := []struct {
			party  quotation.Party
			amount float64
		}{
			{quotation.PartyCustomer, 8500},
			{quotation.PartyVendor, 7300},
			{quotation.PartyCustomer, 6250},
			{quotation.PartyVendor, 5350},
		}
		for _, p := range proposals {
			require.NoError(t, q.Negotiate(p.party, rupees(t, p.amount), "", now))
		}

		// 4600 is within the band of 5350 but below half the original total.
		err := q.Negotiate(quotation.PartyCustomer, rupees(t, 4600), "", now)

		var outOfRange *errs.ValueIsOutOfRangeError
		assert.ErrorAs(t, err, &outOfRange)
	})

	t.Run("should cap the history length", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		party := quotation.PartyCustomer
		amount := 10000.0
		for range quotation.MaxNegotiationEntries {
			amount *= 0.99
			require.NoError(t, q.Negotiate(party, rupees(t, amount), "", now))
			if party == quotation.PartyCustomer {
				party = quotation.PartyVendor
			} else {
				party = quotation.PartyCustomer
			}
		}

		err := q.Negotiate(party, rupees(t, amount*0.99), "", now)

		assert.ErrorIs(t, err, quotation.ErrNegotiationLimitReached)
	})

	t.Run("should expire a quotation past its validity window", func(t *testing.T) {
		q := newSentQuotation(t, 10000)
		later := q.ExpiresAt().Add(time.Minute)

		err := q.Negotiate(quotation.PartyCustomer, rupees(t, 9000), "", later)

		assert.ErrorIs(t, err, quotation.ErrQuotationExpired)
		assert.Equal(t, quotation.StatusExpired, q.Status())
	})

	t.Run("should reject an unknown party", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		assert.Error(t, q.Negotiate(quotation.PartyUnknown, rupees(t, 9000), "", now))
	})
}

func TestQuotation_AcceptNegotiation(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should rewrite the total to the accepted proposal", func(t *testing.T) {
		q := newSentQuotation(t, 10000)
		require.NoError(t, q.Negotiate(quotation.PartyCustomer, rupees(t, 9000), "", now))

		require.NoError(t, q.AcceptNegotiation(quotation.PartyVendor, now))

		assert.Equal(t, quotation.StatusAccepted, q.Status())
		assert.InDelta(t, 9000, q.TotalAmount().Rupees(), 0.01)
		assert.InDelta(t, 10000, q.OriginalAmount().Rupees(), 0.01)
	})

	t.Run("should refuse accepting own proposal", func(t *testing.T) {
		q := newSentQuotation(t, 10000)
		require.NoError(t, q.Negotiate(quotation.PartyCustomer, rupees(t, 9000), "", now))

		err := q.AcceptNegotiation(quotation.PartyCustomer, now)

		assert.ErrorIs(t, err, quotation.ErrCannotAcceptOwnProposal)
	})

	t.Run("should refuse when there is nothing to accept", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		err := q.AcceptNegotiation(quotation.PartyVendor, now)

		assert.ErrorIs(t, err, quotation.ErrNothingToAccept)
	})
}

func TestQuotation_Accept(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should accept a sent quotation at its current total", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		require.NoError(t, q.Accept(now))

		assert.Equal(t, quotation.StatusAccepted, q.Status())
		assert.InDelta(t, 10000, q.TotalAmount().Rupees(), 0.01)
	})

	t.Run("should refuse accepting an expired quotation", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		err := q.Accept(q.ExpiresAt().Add(time.Minute))

		assert.ErrorIs(t, err, quotation.ErrQuotationExpired)
	})

	t.Run("should refuse accepting a rejected quotation", func(t *testing.T) {
		q := newSentQuotation(t, 10000)
		require.NoError(t, q.Reject())

		assert.Error(t, q.Accept(now))
	})
}

func TestQuotation_Expire(t *testing.T) {
	t.Run("should expire past the validity window", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		require.NoError(t, q.Expire(q.ExpiresAt().Add(time.Minute)))

		assert.Equal(t, quotation.StatusExpired, q.Status())
	})

	t.Run("should refuse to expire a live quotation", func(t *testing.T) {
		q := newSentQuotation(t, 10000)

		assert.Error(t, q.Expire(time.Now().UTC()))
	})
}

func TestQuotation_PartyOf(t *testing.T) {
	q := newPendingQuotation(t, 10000)

	assert.Equal(t, quotation.PartyCustomer, q.PartyOf(q.CustomerID()))
	assert.Equal(t, quotation.PartyVendor, q.PartyOf(q.VendorID()))
	assert.Equal(t, quotation.PartyUnknown, q.PartyOf(kernel.NewUUID()))
}
