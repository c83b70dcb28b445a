package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values for processed queries.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	queries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_queries_total",
		Help: "Queries processed, by outcome",
	}, []string{"status"})

	remoteCallDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "agent_remote_call_duration_seconds",
		Help:    "Duration of calls to the remote completion service",
		Buckets: prometheus.DefBuckets,
	})

	topicChecks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_topic_checks_total",
		Help: "Topic classification checks, by result",
	}, []string{"related"})
)

func init() {
	prometheus.MustRegister(queries, remoteCallDuration, topicChecks)
}

// Handler serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }

// ObserveQuery records one processed query and how long the remote call took.
func ObserveQuery(status string, took time.Duration) {
	queries.WithLabelValues(status).Inc()
	remoteCallDuration.Observe(took.Seconds())
}

func IncTopicCheck(related bool) { topicChecks.WithLabelValues(strconv.FormatBool(related)).Inc() }
