package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
	"freight/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mumbaiPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(19.0760, 72.8777)
	require.NoError(t, err)
	return point
}

func punePoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)
	return point
}

func rupees(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromRupees(amount)
	require.NoError(t, err)
	return money
}

func newTestEnquiry(t *testing.T, truckTypeID kernel.UUID, vehicleCount int) *enquiry.Enquiry {
	t.Helper()
	enq, err := enquiry.NewEnquiry(
		kernel.NewUUID(),
		"Mumbai", mumbaiPoint(t),
		"Pune", punePoint(t),
		time.Now().Add(48*time.Hour),
		truckTypeID,
		vehicleCount,
		12.5,
		"steel coils",
	)
	require.NoError(t, err)
	return enq
}

func newTestRoute(t *testing.T, vendorID kernel.UUID, durationHours float64) *route.Route {
	t.Helper()
	originPincode, err := kernel.NewPincode("400001")
	require.NoError(t, err)
	destinationPincode, err := kernel.NewPincode("411001")
	require.NoError(t, err)

	origin, err := route.NewEndpoint("Mumbai", "Maharashtra", originPincode, mumbaiPoint(t))
	require.NoError(t, err)
	destination, err := route.NewEndpoint("Pune", "Maharashtra", destinationPincode, punePoint(t))
	require.NoError(t, err)

	r, err := route.NewRoute(vendorID, origin, destination, 150, durationHours, "daily")
	require.NoError(t, err)
	return r
}

func newTestPricing(t *testing.T, truckTypeID kernel.UUID, baseRupees float64, vehicles int) *route.SegmentPricing {
	t.Helper()
	pricing, err := route.NewSegmentPricing(
		truckTypeID, "Mumbai", "Pune",
		rupees(t, baseRupees), rupees(t, 0), rupees(t, 0), rupees(t, 0), rupees(t, 0),
		rupees(t, 30), rupees(t, baseRupees*0.9), rupees(t, baseRupees*1.3),
		15, vehicles,
	)
	require.NoError(t, err)
	return pricing
}

func TestRouteMatcher_Match(t *testing.T) {
	matcher := services.NewRouteMatcher()
	truckTypeID := kernel.NewUUID()

	t.Run("should match pricing row of the requested truck type on the segment", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)
		r := newTestRoute(t, kernel.NewUUID(), 4)
		require.NoError(t, r.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 3)))

		matches, err := matcher.Match(enq, []*route.Route{r})

		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.True(t, matches[0].Route.IsEqual(r))
	})

	t.Run("should skip inactive routes", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)
		r := newTestRoute(t, kernel.NewUUID(), 4)
		require.NoError(t, r.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 3)))
		r.Deactivate()

		matches, err := matcher.Match(enq, []*route.Route{r})

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("should skip pricing of other truck types", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)
		r := newTestRoute(t, kernel.NewUUID(), 4)
		require.NoError(t, r.AddSegmentPricing(newTestPricing(t, kernel.NewUUID(), 5000, 3)))

		matches, err := matcher.Match(enq, []*route.Route{r})

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("should skip pricing with no available vehicles", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)
		r := newTestRoute(t, kernel.NewUUID(), 4)
		require.NoError(t, r.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 0)))

		matches, err := matcher.Match(enq, []*route.Route{r})

		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("should ignore routes that serve neither city", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)

		delhiPincode, err := kernel.NewPincode("110001")
		require.NoError(t, err)
		jaipurPincode, err := kernel.NewPincode("302001")
		require.NoError(t, err)
		delhiPoint, err := kernel.NewGeoPoint(28.7041, 77.1025)
		require.NoError(t, err)
		jaipurPoint, err := kernel.NewGeoPoint(26.9124, 75.7873)
		require.NoError(t, err)

		origin, err := route.NewEndpoint("Delhi", "Delhi", delhiPincode, delhiPoint)
		require.NoError(t, err)
		destination, err := route.NewEndpoint("Jaipur", "Rajasthan", jaipurPincode, jaipurPoint)
		require.NoError(t, err)
		r, err := route.NewRoute(kernel.NewUUID(), origin, destination, 280, 6, "weekly")
		require.NoError(t, err)

		pricing, err := route.NewSegmentPricing(
			truckTypeID, "Delhi", "Jaipur",
			rupees(t, 8000), rupees(t, 0), rupees(t, 0), rupees(t, 0), rupees(t, 0),
			rupees(t, 30), rupees(t, 7000), rupees(t, 10000),
			15, 2,
		)
		require.NoError(t, err)
		require.NoError(t, r.AddSegmentPricing(pricing))

		matches, err := matcher.Match(enq, []*route.Route{r})

		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestRouteMatcher_GeneratePriceRanges(t *testing.T) {
	matcher := services.NewRouteMatcher()
	truckTypeID := kernel.NewUUID()

	matchesFor := func(t *testing.T, enq *enquiry.Enquiry, routes ...*route.Route) []services.SegmentMatch {
		t.Helper()
		matches, err := matcher.Match(enq, routes)
		require.NoError(t, err)
		return matches
	}

	t.Run("should grade a single vendor group as low chance", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)
		r := newTestRoute(t, kernel.NewUUID(), 4)
		require.NoError(t, r.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 3)))

		ranges, err := matcher.GeneratePriceRanges(enq, matchesFor(t, enq, r))

		require.NoError(t, err)
		require.Len(t, ranges, 1)
		assert.Equal(t, enquiry.ChanceLow, ranges[0].ChanceLevel())
		assert.Equal(t, 1, ranges[0].VendorCount())
		assert.Equal(t, 3, ranges[0].VehicleCount())
		assert.InDelta(t, 5000, ranges[0].AvgPrice().Rupees(), 0.01)
		assert.False(t, ranges[0].IsMiscellaneous())
	})

	t.Run("should grade three vendors with double coverage as high chance", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)

		routes := make([]*route.Route, 0, 3)
		for range 3 {
			r := newTestRoute(t, kernel.NewUUID(), 4)
			require.NoError(t, r.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 2)))
			routes = append(routes, r)
		}

		ranges, err := matcher.GeneratePriceRanges(enq, matchesFor(t, enq, routes...))

		require.NoError(t, err)
		require.Len(t, ranges, 1)
		assert.Equal(t, enquiry.ChanceHigh, ranges[0].ChanceLevel())
		assert.Equal(t, 3, ranges[0].VendorCount())
		assert.Equal(t, 6, ranges[0].VehicleCount())
	})

	t.Run("should split distant totals into separate ranges", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 1)

		cheap := newTestRoute(t, kernel.NewUUID(), 4)
		require.NoError(t, cheap.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 2)))
		premium := newTestRoute(t, kernel.NewUUID(), 3)
		require.NoError(t, premium.AddSegmentPricing(newTestPricing(t, truckTypeID, 9000, 2)))

		ranges, err := matcher.GeneratePriceRanges(enq, matchesFor(t, enq, cheap, premium))

		require.NoError(t, err)
		assert.Len(t, ranges, 2)
	})

	t.Run("should keep shortest duration within a group", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 1)

		slow := newTestRoute(t, kernel.NewUUID(), 6)
		require.NoError(t, slow.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 2)))
		fast := newTestRoute(t, kernel.NewUUID(), 3.5)
		require.NoError(t, fast.AddSegmentPricing(newTestPricing(t, truckTypeID, 5000, 2)))

		ranges, err := matcher.GeneratePriceRanges(enq, matchesFor(t, enq, slow, fast))

		require.NoError(t, err)
		require.Len(t, ranges, 1)
		assert.InDelta(t, 3.5, ranges[0].DurationHours(), 0.001)
	})

	t.Run("should fall back to miscellaneous range when nothing matches", func(t *testing.T) {
		enq := newTestEnquiry(t, truckTypeID, 2)

		ranges, err := matcher.GeneratePriceRanges(enq, nil)

		require.NoError(t, err)
		require.Len(t, ranges, 1)

		fallback := ranges[0]
		assert.True(t, fallback.IsMiscellaneous())
		assert.Equal(t, enquiry.ChanceMedium, fallback.ChanceLevel())
		assert.Equal(t, 0, fallback.VendorCount())
		assert.Equal(t, 2, fallback.VehicleCount())
		assert.Greater(t, fallback.MinPrice().Rupees(), 0.0)
		assert.Less(t, fallback.MinPrice().Rupees(), fallback.AvgPrice().Rupees())
		assert.Less(t, fallback.AvgPrice().Rupees(), fallback.MaxPrice().Rupees())
		assert.Greater(t, fallback.DurationHours(), 0.0)
	})
}
