package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/Aanishnithin07/FitForge/internal/analysis"
	"github.com/Aanishnithin07/FitForge/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// timingWindow is how many recent analyses feed the rolling average
const timingWindow = 100

// ErrNotInitialized is returned by Flush before Init
var ErrNotInitialized = errors.New("stats collector not initialized")

// Snapshot is a point-in-time copy of the collected stats
type Snapshot struct {
	AnalysisCount       int64            `json:"analysis_count"`
	AverageAnalysisTime time.Duration    `json:"average_analysis_time_ns"`
	Labels              map[string]int64 `json:"labels"`
	Ingestions          map[string]int64 `json:"ingestions"`
	Outputs             map[string]int64 `json:"outputs"`
	Errors              int64            `json:"errors"`
	SessionStart        time.Time        `json:"session_start"`
	SessionDuration     time.Duration    `json:"session_duration_ns"`
}

// Sink receives snapshots on Flush
type Sink interface {
	Write(ctx context.Context, s Snapshot) error
}

// CollectorOption configures a Collector
type CollectorOption func(*Collector)

// WithSink sets where Flush writes snapshots
func WithSink(s Sink) CollectorOption {
	return func(c *Collector) {
		c.sink = s
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) CollectorOption {
	return func(c *Collector) {
		c.now = now
	}
}

// WithNamespace prefixes every metric name
func WithNamespace(ns string) CollectorOption {
	return func(c *Collector) {
		c.namespace = ns
	}
}

// Collector tracks usage stats for one process or one test. Nothing is global:
// each Collector owns its Prometheus registry. Call Init before tracking and
// Flush to hand a snapshot to the sink.
type Collector struct {
	mu          sync.Mutex
	namespace   string
	now         func() time.Time
	sink        Sink
	initialized bool

	registry   *prometheus.Registry
	analyses   *prometheus.CounterVec
	duration   prometheus.Histogram
	ingestions *prometheus.CounterVec
	outputs    *prometheus.CounterVec
	errors     prometheus.Counter

	state collectorState
}

type collectorState struct {
	analysisCount int64
	timings       []time.Duration
	labels        map[string]int64
	ingestions    map[string]int64
	outputs       map[string]int64
	errors        int64
	sessionStart  time.Time
}

// NewCollector creates an uninitialized Collector
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		namespace: "fitforge",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init registers the metrics and starts the session clock
func (c *Collector) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return errors.New("stats collector already initialized")
	}
	c.resetLocked()
	c.initialized = true
	return nil
}

// resetLocked replaces the registry and zeroes the state. Counters are
// monotonic, so a reset starts a new registry rather than rewinding them.
func (c *Collector) resetLocked() {
	c.registry = prometheus.NewRegistry()
	factory := promauto.With(c.registry)

	c.analyses = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "analyses_total",
		Help:      "Total number of analyses by result label",
	}, []string{"label"})
	c.duration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Duration of a single analysis in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
	c.ingestions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "ingestions_total",
		Help:      "Total number of documents ingested by format",
	}, []string{"format"})
	c.outputs = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "outputs_total",
		Help:      "Total number of rendered outputs by kind",
	}, []string{"kind"})
	c.errors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "errors_total",
		Help:      "Total number of tracked errors",
	})

	c.state = collectorState{
		timings:      make([]time.Duration, 0, timingWindow),
		labels:       make(map[string]int64),
		ingestions:   make(map[string]int64),
		outputs:      make(map[string]int64),
		sessionStart: c.now(),
	}
}

// TrackAnalysis records one analysis and its duration
func (c *Collector) TrackAnalysis(d time.Duration, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}

	c.analyses.WithLabelValues(label).Inc()
	c.duration.Observe(d.Seconds())

	c.state.analysisCount++
	c.state.labels[label]++
	if len(c.state.timings) == timingWindow {
		c.state.timings = c.state.timings[1:]
	}
	c.state.timings = append(c.state.timings, d)
}

// TrackIngestion records a document read from a file of the given format
func (c *Collector) TrackIngestion(format string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.ingestions.WithLabelValues(format).Inc()
	c.state.ingestions[format]++
}

// TrackOutput records a rendered output (json, text, annotated html, leaderboard)
func (c *Collector) TrackOutput(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.outputs.WithLabelValues(kind).Inc()
	c.state.outputs[kind]++
}

// TrackError records a failure at the edges (ingestion, request decoding)
func (c *Collector) TrackError(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.errors.Inc()
	c.state.errors++
}

// Snapshot copies the current stats
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		AnalysisCount: c.state.analysisCount,
		Labels:        copyCounts(c.state.labels),
		Ingestions:    copyCounts(c.state.ingestions),
		Outputs:       copyCounts(c.state.outputs),
		Errors:        c.state.errors,
		SessionStart:  c.state.sessionStart,
	}
	if n := len(c.state.timings); n > 0 {
		var total time.Duration
		for _, d := range c.state.timings {
			total += d
		}
		s.AverageAnalysisTime = total / time.Duration(n)
	}
	if c.initialized {
		s.SessionDuration = c.now().Sub(c.state.sessionStart)
	}
	return s
}

// Flush writes a snapshot to the sink. Without a sink it is a no-op.
func (c *Collector) Flush(ctx context.Context) error {
	c.mu.Lock()
	initialized, sink := c.initialized, c.sink
	c.mu.Unlock()

	if !initialized {
		return ErrNotInitialized
	}
	if sink == nil {
		return nil
	}
	if err := sink.Write(ctx, c.Snapshot()); err != nil {
		return fmt.Errorf("failed to flush stats: %w", err)
	}
	return nil
}

// Reset zeroes every stat and restarts the session clock
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	c.resetLocked()
}

// Gatherer returns the current registry
func (c *Collector) Gatherer() prometheus.Gatherer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registry == nil {
		return prometheus.NewRegistry()
	}
	return c.registry
}

// Handler serves the collector's metrics in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		promhttp.HandlerFor(c.Gatherer(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}

// Wrap returns an Engine that times every analysis into the collector.
// Results are passed through untouched.
func (c *Collector) Wrap(engine analysis.Engine) analysis.Engine {
	return &trackedEngine{engine: engine, collector: c}
}

type trackedEngine struct {
	engine    analysis.Engine
	collector *Collector
}

func (t *trackedEngine) Analyze(input types.AnalysisInput) *types.AnalysisResult {
	start := t.collector.now()
	result := t.engine.Analyze(input)
	t.collector.TrackAnalysis(t.collector.now().Sub(start), result.Label)
	return result
}

func copyCounts(m map[string]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// sortedKeys returns map keys in order, for stable report output
func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
