// Package telemetry records HyRMIS dispatch decisions as Prometheus metrics.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zeebo/errs/v2"

	"github.com/ajroetker/go-hyrmis/hyrmis"
)

// Metrics is a hyrmis.Observer backed by Prometheus collectors. It is safe
// for concurrent use.
type Metrics struct {
	sorts    *prometheus.CounterVec
	elements *prometheus.CounterVec
	size     *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

var _ hyrmis.Observer = (*Metrics)(nil)

// New creates the collectors and registers them with reg.
// It panics if registration fails, as promauto does.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := []string{"strategy"}

	return &Metrics{
		// sorts counts dispatched sorts per strategy.
		sorts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hyrmis_sorts_total",
			Help: "The total number of sorts dispatched to each strategy",
		}, labels),

		// elements counts sorted elements per strategy.
		elements: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hyrmis_sorted_elements_total",
			Help: "The total number of elements sorted by each strategy",
		}, labels),

		size: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hyrmis_input_size",
			Help:    "The length of sorted inputs",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 .. 262144
		}, labels),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name: "hyrmis_sort_seconds",
			Help: "The time spent sorting one input",
			Buckets: []float64{
				0.000001, // 1µs
				0.00001,  // 10µs
				0.0001,   // 100µs
				0.001,    // 1ms
				0.01,     // 10ms
				0.1,      // 100ms
				1,        // 1s
			},
		}, labels),
	}
}

// ObserveSort implements hyrmis.Observer.
func (m *Metrics) ObserveSort(strategy hyrmis.Strategy, n int, elapsed time.Duration) {
	label := strategy.String()
	m.sorts.WithLabelValues(label).Inc()
	m.elements.WithLabelValues(label).Add(float64(n))
	m.size.WithLabelValues(label).Observe(float64(n))
	m.duration.WithLabelValues(label).Observe(elapsed.Seconds())
}

// Sample is one flattened metric value, as returned by Snapshot.
type Sample struct {
	Name     string
	Strategy string
	Value    float64
}

// Snapshot gathers g and returns the hyrmis counters and histogram sample
// counts, ordered by metric name and then strategy.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, errs.Wrap(err)
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName()}
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "strategy" {
					s.Strategy = lp.GetValue()
				}
			}
			switch {
			case m.GetCounter() != nil:
				s.Value = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				s.Name += "_count"
				s.Value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			samples = append(samples, s)
		}
	}
	return samples, nil
}
