package metrics

// Package metrics records ingestion counters for one run. Batch runs have no
// scrape endpoint, so the registry is exported in the text exposition format
// for a node_exporter textfile collector.
import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ledger"

// Recorder owns a private registry; nothing is registered globally.
type Recorder struct {
	reg *prometheus.Registry

	rowsTotal    *prometheus.CounterVec
	clients      prometheus.Gauge
	lockedClient prometheus.Gauge
	storedTxns   prometheus.Gauge
	runDuration  prometheus.Gauge
}

// New constructs a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		rowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rows_total",
				Help:      "Input rows by transaction kind and outcome",
			},
			[]string{"kind", "result"},
		),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "clients",
			Help:      "Clients with an account at the end of the run",
		}),
		lockedClient: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "locked_clients",
			Help:      "Clients locked by a chargeback",
		}),
		storedTxns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored_transactions",
			Help:      "Value transactions held in the store at the end of the run",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time spent ingesting the input",
		}),
	}
	r.reg.MustRegister(r.rowsTotal, r.clients, r.lockedClient, r.storedTxns, r.runDuration)
	return r
}

// Observe counts one row. kind is empty for rows that never parsed.
func (r *Recorder) Observe(kind, result string) {
	if kind == "" {
		kind = "unknown"
	}
	r.rowsTotal.WithLabelValues(kind, result).Inc()
}

// Finish records end-of-run gauges.
func (r *Recorder) Finish(clients, locked, stored int, elapsed time.Duration) {
	r.clients.Set(float64(clients))
	r.lockedClient.Set(float64(locked))
	r.storedTxns.Set(float64(stored))
	r.runDuration.Set(elapsed.Seconds())
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
