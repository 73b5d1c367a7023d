// Package metrics exposes Prometheus counters and gauges for the
// simulation. Updated from inside the weekly tick, scraped via /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WeeksProcessed counts completed weekly ticks.
var WeeksProcessed = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "steeple",
	Name:      "weeks_processed_total",
	Help:      "Total weekly ticks processed.",
})

// EventsTriggered counts fired events by template type.
var EventsTriggered = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "steeple",
	Name:      "events_triggered_total",
	Help:      "Total random events triggered.",
}, []string{"type"})

// MembersJoined counts new congregation members (visitors, invitees,
// family arrivals).
var MembersJoined = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "steeple",
	Name:      "members_joined_total",
	Help:      "Total congregation members who joined.",
})

// MembersDeparted counts members removed at tick cleanup.
var MembersDeparted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "steeple",
	Name:      "members_departed_total",
	Help:      "Total congregation members who left.",
})

// Attendance tracks the current attendance stat.
var Attendance = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "steeple",
	Name:      "attendance",
	Help:      "Current weekly attendance stat.",
})

// Budget tracks the current budget in dollars.
var Budget = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "steeple",
	Name:      "budget_dollars",
	Help:      "Current budget balance.",
})

// Morale tracks current congregation morale.
var Morale = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "steeple",
	Name:      "congregation_morale",
	Help:      "Current congregation morale (30-100).",
})
