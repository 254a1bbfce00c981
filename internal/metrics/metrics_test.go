package metrics

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCall(t *testing.T) {
	before := testutil.ToFloat64(ExternalCalls.WithLabelValues("test_service", OutcomeError))

	ObserveCall("test_service", OutcomeError, time.Now().Add(-time.Second))

	assert.Equal(t, before+1, testutil.ToFloat64(ExternalCalls.WithLabelValues("test_service", OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(ExternalCallDuration, "claty_external_call_duration_seconds"))
}
