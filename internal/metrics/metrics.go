package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts successful entity writes by table and action.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsdesk_mutations_total",
		Help: "Successful create/update/delete operations by table and action.",
	}, []string{"table", "action"})

	// AuditWriteFailures counts audit rows that could not be persisted.
	// Audit writes are best effort, so this counter is the only signal.
	AuditWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opsdesk_audit_write_failures_total",
		Help: "Audit log inserts that failed and were dropped.",
	})

	// PublishFailures counts change notifications that could not be published.
	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opsdesk_change_publish_failures_total",
		Help: "Change notifications that failed to publish to the bus.",
	})

	// ActivitySourceErrors counts activity feed source queries that failed
	// and were skipped during the merge.
	ActivitySourceErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsdesk_activity_source_errors_total",
		Help: "Failed activity feed source queries by source.",
	}, []string{"source"})
)
