package odidmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// -------------------------------------------------------------------------
// Prometheus Metric Constants
// -------------------------------------------------------------------------

const (
	namespace = "godid"
	subsystem = "broadcast"
)

// Label names for ODID metrics.
const (
	labelMessageType = "msg_type"
	labelReason      = "reason"
)

// -------------------------------------------------------------------------
// Collector — Prometheus ODID Metrics
// -------------------------------------------------------------------------

// Collector holds all ODID Prometheus metrics.
//
//   - MessagesDecoded/DecodeErrors track codec throughput and failures per
//     message type.
//   - SchedulerTicks/SchedulerSkips track broadcast cadence and how often
//     a scheduled slot had nothing valid to emit.
//   - ValiditySlots tracks, per message type, how many fleet-wide slots
//     currently carry valid data.
//   - FleetSize tracks the number of aircraft currently tracked.
type Collector struct {
	// MessagesDecoded counts successfully decoded messages per type.
	MessagesDecoded *prometheus.CounterVec

	// DecodeErrors counts failed decode attempts per message type.
	DecodeErrors *prometheus.CounterVec

	// SchedulerTicks counts scheduler Tick invocations.
	SchedulerTicks prometheus.Counter

	// SchedulerSkips counts Tick invocations that found an invalid slot
	// and emitted nothing.
	SchedulerSkips prometheus.Counter

	// ValiditySlots tracks the number of currently-valid slots per
	// message type, summed across the tracked fleet.
	ValiditySlots *prometheus.GaugeVec

	// FleetSize tracks the number of aircraft currently tracked.
	FleetSize prometheus.Gauge

	// AdapterErrors counts failed framed-to-logical translations per
	// message kind.
	AdapterErrors *prometheus.CounterVec

	// DecodeLatency observes how long each decode call takes.
	DecodeLatency prometheus.Histogram
}

// NewCollector creates a Collector with all ODID metrics registered
// against the provided prometheus.Registerer. If reg is nil,
// prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.MessagesDecoded,
		c.DecodeErrors,
		c.SchedulerTicks,
		c.SchedulerSkips,
		c.ValiditySlots,
		c.FleetSize,
		c.AdapterErrors,
		c.DecodeLatency,
	)

	return c
}

// newMetrics creates all Prometheus metric vectors without registering them.
func newMetrics() *Collector {
	typeLabels := []string{labelMessageType}

	return &Collector{
		MessagesDecoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "messages_decoded_total",
			Help:      "Total ODID messages successfully decoded, by message type.",
		}, typeLabels),

		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_errors_total",
			Help:      "Total ODID message decode failures, by message type and failure reason.",
		}, []string{labelMessageType, labelReason}),

		SchedulerTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "scheduler_ticks_total",
			Help:      "Total scheduler Tick invocations.",
		}),

		SchedulerSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "scheduler_skips_total",
			Help:      "Total Tick invocations that skipped an invalid slot.",
		}),

		ValiditySlots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "validity_slots",
			Help:      "Number of currently-valid slots across the tracked fleet, by message type.",
		}, typeLabels),

		FleetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fleet_size",
			Help:      "Number of aircraft currently tracked.",
		}),

		AdapterErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "adapter_errors_total",
			Help:      "Total framed-to-logical adapter translation failures, by message kind.",
		}, typeLabels),

		DecodeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_latency_seconds",
			Help:      "Time spent decoding a single ODID message.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// -------------------------------------------------------------------------
// Codec Throughput
// -------------------------------------------------------------------------

// IncMessagesDecoded increments the decoded-message counter for the given
// message type.
func (c *Collector) IncMessagesDecoded(messageType string) {
	c.MessagesDecoded.WithLabelValues(messageType).Inc()
}

// IncDecodeErrors increments the decode-error counter for the given
// message type and failure reason.
func (c *Collector) IncDecodeErrors(messageType, reason string) {
	c.DecodeErrors.WithLabelValues(messageType, reason).Inc()
}

// -------------------------------------------------------------------------
// Scheduler
// -------------------------------------------------------------------------

// RecordTick increments the tick counter, and the skip counter if the
// scheduled slot had nothing valid to emit.
func (c *Collector) RecordTick(skipped bool) {
	c.SchedulerTicks.Inc()
	if skipped {
		c.SchedulerSkips.Inc()
	}
}

// -------------------------------------------------------------------------
// Fleet
// -------------------------------------------------------------------------

// SetValiditySlots sets the fleet-wide valid-slot gauge for a message type.
func (c *Collector) SetValiditySlots(messageType string, count float64) {
	c.ValiditySlots.WithLabelValues(messageType).Set(count)
}

// SetFleetSize sets the tracked-aircraft gauge.
func (c *Collector) SetFleetSize(count int) {
	c.FleetSize.Set(float64(count))
}

// -------------------------------------------------------------------------
// Adapter
// -------------------------------------------------------------------------

// IncAdapterErrors increments the adapter translation-error counter for
// the given message kind.
func (c *Collector) IncAdapterErrors(kind string) {
	c.AdapterErrors.WithLabelValues(kind).Inc()
}

// ObserveDecodeLatency records how long a decode call took.
func (c *Collector) ObserveDecodeLatency(d time.Duration) {
	c.DecodeLatency.Observe(d.Seconds())
}
