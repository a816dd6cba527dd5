package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CollaboratorRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("smc-scheduling", reg)

	m.IncCollaboratorRequest("availability", "ok")
	m.IncCollaboratorRequest("availability", "ok")
	m.IncCollaboratorRequest("working_hours", "error")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.collaboratorRequests.WithLabelValues("smc-scheduling", "availability", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.collaboratorRequests.WithLabelValues("smc-scheduling", "working_hours", "error")))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", "200", time.Millisecond)
		m.IncSnapshotFailOpen("availability")
		m.ObserveSlotsGenerated(3)
		m.SetBreakerState("marketplace", 2)
	})
	assert.Equal(t, "", m.ServiceName())
}
