package olrpaths

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSink receives decoding failure events. Implementations must tolerate concurrent calls.
type StatsSink interface {
	IncNoShortestPathFound()
}

// Stats is in-process counters bag
type Stats struct {
	noShortestPathFound atomic.Uint64
}

func (st *Stats) IncNoShortestPathFound() {
	st.noShortestPathFound.Add(1)
}

func (st *Stats) NoShortestPathFound() uint64 {
	return st.noShortestPathFound.Load()
}

// PrometheusStats exposes decoding counters as Prometheus metrics
type PrometheusStats struct {
	noShortestPathFound prometheus.Counter
	decodeTotal         *prometheus.CounterVec
}

// NewPrometheusStats creates counters and registers them in given registerer
func NewPrometheusStats(reg prometheus.Registerer) (*PrometheusStats, error) {
	st := &PrometheusStats{
		noShortestPathFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "olrpaths_no_shortest_path_found_total",
			Help: "Number of location reference segments which could not be connected",
		}),
		decodeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "olrpaths_decode_total",
			Help: "Number of decoded location references by result",
		}, []string{"result"}),
	}
	if err := reg.Register(st.noShortestPathFound); err != nil {
		return nil, errors.Wrap(err, "Can't register no_shortest_path_found counter")
	}
	if err := reg.Register(st.decodeTotal); err != nil {
		return nil, errors.Wrap(err, "Can't register decode counter")
	}
	return st, nil
}

func (st *PrometheusStats) IncNoShortestPathFound() {
	st.noShortestPathFound.Inc()
}

// ObserveDecode counts finished decoding of single location reference
func (st *PrometheusStats) ObserveDecode(ok bool) {
	if ok {
		st.decodeTotal.WithLabelValues("success").Inc()
		return
	}
	st.decodeTotal.WithLabelValues("failure").Inc()
}

// MultiStats fans events out to every sink
type MultiStats []StatsSink

func (ms MultiStats) IncNoShortestPathFound() {
	for _, sink := range ms {
		sink.IncNoShortestPathFound()
	}
}
