package enquiry_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEnquiry(t *testing.T) *enquiry.Enquiry {
	t.Helper()

	pickupPoint, err := kernel.NewGeoPoint(19.0760, 72.8777)
	require.NoError(t, err)
	deliveryPoint, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)

	enq, err := enquiry.NewEnquiry(
		kernel.NewUUID(),
		"Mumbai", pickupPoint,
		"Pune", deliveryPoint,
		time.Now().Add(48*time.Hour),
		kernel.NewUUID(),
		2, 12.5, "steel coils",
	)
	require.NoError(t, err)
	return enq
}

func TestNewEnquiry(t *testing.T) {
	t.Run("should create submitted enquiry", func(t *testing.T) {
		enq := newTestEnquiry(t)

		assert.Equal(t, enquiry.StatusSubmitted, enq.Status())
		assert.False(t, enq.IsMiscellaneousRoute())
		assert.Nil(t, enq.ManagerID())
		assert.Nil(t, enq.SelectedRangeID())
	})
}

func TestEnquiry_Lifecycle(t *testing.T) {
	t.Run("should walk the full lifecycle", func(t *testing.T) {
		enq := newTestEnquiry(t)

		require.NoError(t, enq.StartReview())
		assert.Equal(t, enquiry.StatusUnderReview, enq.Status())

		require.NoError(t, enq.MarkQuotesGenerated(false))
		assert.Equal(t, enquiry.StatusQuotesGenerated, enq.Status())

		rangeID := kernel.NewUUID()
		managerID := kernel.NewUUID()
		require.NoError(t, enq.SelectPriceRange(rangeID, managerID))
		assert.Equal(t, enquiry.StatusQuoteSelected, enq.Status())
		require.NotNil(t, enq.SelectedRangeID())
		assert.True(t, enq.SelectedRangeID().IsEqual(rangeID))
		require.NotNil(t, enq.ManagerID())
		assert.True(t, enq.ManagerID().IsEqual(managerID))

		require.NoError(t, enq.MarkSentToVendors())
		require.NoError(t, enq.MarkVendorResponded())
		require.NoError(t, enq.Confirm())
		assert.Equal(t, enquiry.StatusConfirmed, enq.Status())
	})

	t.Run("should record a miscellaneous route", func(t *testing.T) {
		enq := newTestEnquiry(t)
		require.NoError(t, enq.StartReview())

		require.NoError(t, enq.MarkQuotesGenerated(true))

		assert.True(t, enq.IsMiscellaneousRoute())
	})

	t.Run("should refuse skipping lifecycle stages", func(t *testing.T) {
		enq := newTestEnquiry(t)

		assert.Error(t, enq.MarkSentToVendors())
		assert.Error(t, enq.Confirm())
	})

	t.Run("should cancel from any live status", func(t *testing.T) {
		enq := newTestEnquiry(t)
		require.NoError(t, enq.StartReview())

		require.NoError(t, enq.Cancel())

		assert.Equal(t, enquiry.StatusCancelled, enq.Status())
		assert.Error(t, enq.StartReview())
	})

	t.Run("should refuse cancelling a confirmed enquiry", func(t *testing.T) {
		enq := newTestEnquiry(t)
		require.NoError(t, enq.StartReview())
		require.NoError(t, enq.MarkQuotesGenerated(false))
		require.NoError(t, enq.SelectPriceRange(kernel.NewUUID(), kernel.NewUUID()))
		require.NoError(t, enq.MarkSentToVendors())
		require.NoError(t, enq.MarkVendorResponded())
		require.NoError(t, enq.Confirm())

		assert.Error(t, enq.Cancel())
	})
}

func TestVendorRequest(t *testing.T) {
	rupees := func(t *testing.T, amount float64) kernel.Money {
		t.Helper()
		money, err := kernel.NewMoneyFromRupees(amount)
		require.NoError(t, err)
		return money
	}

	newRequest := func(t *testing.T) *enquiry.VendorRequest {
		t.Helper()
		request, err := enquiry.NewVendorRequest(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			rupees(t, 45000), "priority load", "high",
		)
		require.NoError(t, err)
		return request
	}

	now := time.Now().UTC()

	t.Run("should start in sent status with a validity window", func(t *testing.T) {
		request := newRequest(t)

		assert.Equal(t, enquiry.RequestStatusSent, request.Status())
		assert.Nil(t, request.ResponsePrice())
		assert.False(t, request.IsExpired(now))
		assert.True(t, request.IsExpired(request.ValidUntil().Add(time.Minute)))
	})

	t.Run("should accept at the suggested price", func(t *testing.T) {
		request := newRequest(t)

		require.NoError(t, request.Accept(now))

		assert.Equal(t, enquiry.RequestStatusAccepted, request.Status())
		require.NotNil(t, request.ResponsePrice())
		assert.InDelta(t, 45000, request.ResponsePrice().Rupees(), 0.01)
	})

	t.Run("should counter with a new price", func(t *testing.T) {
		request := newRequest(t)

		require.NoError(t, request.Counter(rupees(t, 48000), now))

		assert.Equal(t, enquiry.RequestStatusQuoted, request.Status())
		require.NotNil(t, request.ResponsePrice())
		assert.InDelta(t, 48000, request.ResponsePrice().Rupees(), 0.01)
	})

	t.Run("should allow accepting after countering", func(t *testing.T) {
		request := newRequest(t)
		require.NoError(t, request.Counter(rupees(t, 48000), now))

		assert.NoError(t, request.Accept(now))
	})

	t.Run("should refuse responses once rejected", func(t *testing.T) {
		request := newRequest(t)
		require.NoError(t, request.Reject(now))

		assert.Error(t, request.Accept(now))
		assert.Error(t, request.Counter(rupees(t, 40000), now))
	})

	t.Run("should refuse responses past the validity window", func(t *testing.T) {
		request := newRequest(t)
		later := request.ValidUntil().Add(time.Minute)

		err := request.Accept(later)

		assert.ErrorIs(t, err, enquiry.ErrVendorRequestExpired)
	})

	t.Run("should confirm a countered request as winner", func(t *testing.T) {
		request := newRequest(t)
		require.NoError(t, request.Counter(rupees(t, 48000), now))

		require.NoError(t, request.ConfirmWinner())

		assert.Equal(t, enquiry.RequestStatusAccepted, request.Status())
	})

	t.Run("should refuse confirming an unanswered request", func(t *testing.T) {
		request := newRequest(t)

		assert.Error(t, request.ConfirmWinner())
	})

	t.Run("should mark losing requests rejected but keep final statuses", func(t *testing.T) {
		lost := newRequest(t)
		require.NoError(t, lost.Counter(rupees(t, 48000), now))
		lost.MarkLost()
		assert.Equal(t, enquiry.RequestStatusRejected, lost.Status())

		won := newRequest(t)
		require.NoError(t, won.Accept(now))
		require.NoError(t, won.ConfirmWinner())
		won.MarkLost()
		assert.Equal(t, enquiry.RequestStatusAccepted, won.Status())
	})

	t.Run("should expire a live request only", func(t *testing.T) {
		request := newRequest(t)

		require.NoError(t, request.Expire())
		assert.Equal(t, enquiry.RequestStatusExpired, request.Status())

		assert.Error(t, request.Expire())
	})
}
