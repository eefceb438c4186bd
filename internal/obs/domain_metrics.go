package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuoteTotal counts calculation attempts by entry point and outcome.
	QuoteTotal *prometheus.CounterVec
	// ValidationFailuresTotal counts rejected form fields.
	ValidationFailuresTotal *prometheus.CounterVec
	// ShareTotal counts share requests by delivery outcome.
	ShareTotal *prometheus.CounterVec
)

// Quote outcomes.
const (
	QuoteComputed = "computed"
	QuoteInvalid  = "invalid"
)

// Share outcomes.
const (
	ShareSent    = "sent"
	ShareSkipped = "skipped"
)

// MustRegisterDomainMetrics initialises and registers laundry Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuoteTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "laundry_quote_total",
			Help:      "Count of laundry bill calculations by source and result.",
		}, []string{"source", "result"})
		ValidationFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "laundry_validation_failures_total",
			Help:      "Count of rejected order form fields.",
		}, []string{"field"})
		ShareTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "laundry_share_total",
			Help:      "Count of share requests by delivery result.",
		}, []string{"result"})

		for _, target := range []**prometheus.CounterVec{&QuoteTotal, &ValidationFailuresTotal, &ShareTotal} {
			target := target
			mustRegisterCollector(reg, *target, func(existing prometheus.Collector) {
				if v, ok := existing.(*prometheus.CounterVec); ok {
					*target = v
				}
			})
		}
	})
}

// RecordQuote notes a calculation attempt. Safe to call before registration.
func RecordQuote(source string, invalidFields []string) {
	result := QuoteComputed
	if len(invalidFields) > 0 {
		result = QuoteInvalid
	}
	if QuoteTotal != nil {
		QuoteTotal.WithLabelValues(source, result).Inc()
	}
	if ValidationFailuresTotal != nil {
		for _, field := range invalidFields {
			ValidationFailuresTotal.WithLabelValues(field).Inc()
		}
	}
}

// RecordShare notes whether a share message reached a sink.
func RecordShare(delivered bool) {
	if ShareTotal == nil {
		return
	}
	result := ShareSkipped
	if delivered {
		result = ShareSent
	}
	ShareTotal.WithLabelValues(result).Inc()
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
