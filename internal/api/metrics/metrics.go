// Package metrics defines and registers all custom Prometheus metrics for the
// field-service API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto at package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fieldservice"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", "suspended", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts new account registrations.
// Label:
//   - role: "worker", "supervisor", or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// JobsCreatedTotal counts newly created jobs.
// Label:
//   - job_type: "Standard", "Channel", "Corner", or "Raked"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created, by job type.",
	},
	[]string{"job_type"},
)

// JobsCompletedTotal counts first transitions of a job to completed.
var JobsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_completed_total",
		Help:      "Total number of jobs marked completed for the first time.",
	},
)

// TimesheetsCreatedTotal counts submitted timesheets.
var TimesheetsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timesheets_created_total",
		Help:      "Total number of timesheets submitted.",
	},
)

// TimesheetsApprovedTotal counts approval actions (including re-approvals).
var TimesheetsApprovedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "timesheets_approved_total",
		Help:      "Total number of timesheet approval actions.",
	},
)

// MessagesSentTotal counts sent messages.
// Label:
//   - channel: "broadcast" or "direct"
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages sent, by channel type.",
	},
	[]string{"channel"},
)

// PhotosUploadedTotal counts uploaded job photos.
var PhotosUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "photos_uploaded_total",
		Help:      "Total number of job photos uploaded.",
	},
)
