package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/vehicles/entry", "201", 0.05)
	RecordHTTPRequest("POST", "/api/vehicles/entry", "201", 0.07)
	RecordHTTPRequest("POST", "/api/vehicles/entry", "403", 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/vehicles/entry", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/vehicles/entry", "403")))
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordEntry(t *testing.T) {
	EntriesTotal.Reset()

	RecordEntry("car", false)
	RecordEntry("car", true)
	RecordEntry("motorcycle", false)
	RecordEntry("car", false)

	assert.Equal(t, float64(2), testutil.ToFloat64(EntriesTotal.WithLabelValues("car", "false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EntriesTotal.WithLabelValues("car", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EntriesTotal.WithLabelValues("motorcycle", "false")))
}

func TestRecordExit(t *testing.T) {
	ExitsTotal.Reset()
	RevenueTotal.Reset()

	RecordExit("car", false, 750)
	RecordExit("car", true, 0)
	RecordExit("motorcycle", false, 300)

	assert.Equal(t, float64(1), testutil.ToFloat64(ExitsTotal.WithLabelValues("car", "false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ExitsTotal.WithLabelValues("car", "true")))
	assert.Equal(t, float64(750), testutil.ToFloat64(RevenueTotal.WithLabelValues("car")))
	assert.Equal(t, float64(300), testutil.ToFloat64(RevenueTotal.WithLabelValues("motorcycle")))
}

func TestRecordRejectedEntry(t *testing.T) {
	EntriesRejectedTotal.Reset()

	RecordRejectedEntry("subscription_expired")
	RecordRejectedEntry("subscription_expired")

	assert.Equal(t, float64(2), testutil.ToFloat64(EntriesRejectedTotal.WithLabelValues("subscription_expired")))
}

func TestOpenSessionsFollowsEntriesAndExits(t *testing.T) {
	SetOpenSessions(3)

	RecordEntry("car", false)
	RecordEntry("motorcycle", true)
	assert.Equal(t, float64(5), testutil.ToFloat64(OpenSessions))

	RecordExit("car", false, 500)
	assert.Equal(t, float64(4), testutil.ToFloat64(OpenSessions))

	SetOpenSessions(0)
}

func TestSetOpenSessions(t *testing.T) {
	SetOpenSessions(12)
	assert.Equal(t, float64(12), testutil.ToFloat64(OpenSessions))

	SetOpenSessions(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(OpenSessions))
}

func TestRecordSubscription(t *testing.T) {
	SubscriptionEventsTotal.Reset()

	RecordSubscription("created")
	RecordSubscription("created")
	RecordSubscription("removed")

	assert.Equal(t, float64(2), testutil.ToFloat64(SubscriptionEventsTotal.WithLabelValues("created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(SubscriptionEventsTotal.WithLabelValues("removed")))
}

func TestRecordTicketCache(t *testing.T) {
	TicketCacheTotal.Reset()

	RecordTicketCache("hit")
	RecordTicketCache("miss")
	RecordTicketCache("miss")

	assert.Equal(t, float64(1), testutil.ToFloat64(TicketCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(TicketCacheTotal.WithLabelValues("miss")))
}
