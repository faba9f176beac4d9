// internal/metrics/metrics.go
//
// Prometheus collectors for the solver.
// Responsibilities:
//   - Count and time next-guess queries per policy and outcome.
//   - Track how many candidates queries leave.
//   - Expose whether the precomputed matrix is loaded.
//
// Collectors register with the default registry on import (promauto); the
// HTTP server exposes them on /metrics.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for SuggestTotal.
const (
	ResultOK            = "ok"
	ResultSingle        = "single"
	ResultContradiction = "contradiction"
	ResultError         = "error"
)

var (
	// SuggestTotal counts next-guess queries.
	// Labels: policy, result (ok, single, contradiction, error)
	SuggestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordle",
		Name:      "suggest_total",
		Help:      "Total next-guess queries",
	}, []string{"policy", "result"})

	// SuggestDuration measures next-guess query latency.
	// Labels: policy
	SuggestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wordle",
		Name:      "suggest_duration_seconds",
		Help:      "Next-guess query latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"policy"})

	// CandidatesRemaining is the distribution of candidate-set sizes after
	// reduction.
	CandidatesRemaining = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "wordle",
		Name:      "candidates_remaining",
		Help:      "Possible answers left after applying the constraints",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 250, 500, 1000, 2500},
	})

	// MatrixLoaded is 1 when the precomputed pattern matrix is in use.
	MatrixLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "wordle",
		Name:      "matrix_loaded",
		Help:      "Whether the precomputed pattern matrix is loaded (1) or not (0)",
	})
)

// ObserveSuggest records one query.
func ObserveSuggest(policy, result string, remaining int, elapsed time.Duration) {
	SuggestTotal.WithLabelValues(policy, result).Inc()
	SuggestDuration.WithLabelValues(policy).Observe(elapsed.Seconds())
	if result != ResultError {
		CandidatesRemaining.Observe(float64(remaining))
	}
}

// SetMatrixLoaded sets the matrix gauge.
func SetMatrixLoaded(ok bool) {
	if ok {
		MatrixLoaded.Set(1)
		return
	}
	MatrixLoaded.Set(0)
}
