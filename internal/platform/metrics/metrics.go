// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers counters for the service layer. All methods are safe on a
// nil receiver so tests can pass a nil collector.
type Collector struct {
	signups          prometheus.Counter
	loginSuccess     prometheus.Counter
	loginFailure     prometheus.Counter
	questionsCreated prometheus.Counter
	submissions      prometheus.Counter
	scoreRatio       prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_signups_total",
			Help: "Total number of successful signups.",
		}),
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_login_success_total",
			Help: "Total number of successful logins.",
		}),
		loginFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_login_failure_total",
			Help: "Total number of failed login attempts.",
		}),
		questionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_questions_created_total",
			Help: "Total number of questions added to the catalog.",
		}),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quiz_interview_submissions_total",
			Help: "Total number of completed interview submissions.",
		}),
		scoreRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quiz_interview_score_ratio",
			Help:    "Score over total per completed interview submission.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		}),
	}

	reg.MustRegister(
		c.signups,
		c.loginSuccess,
		c.loginFailure,
		c.questionsCreated,
		c.submissions,
		c.scoreRatio,
	)

	return c
}

func (c *Collector) RecordSignup() {
	if c == nil {
		return
	}
	c.signups.Inc()
}

func (c *Collector) RecordLogin(success bool) {
	if c == nil {
		return
	}
	if success {
		c.loginSuccess.Inc()
	} else {
		c.loginFailure.Inc()
	}
}

func (c *Collector) RecordQuestionCreated() {
	if c == nil {
		return
	}
	c.questionsCreated.Inc()
}

// RecordSubmission records one completed interview with its score.
func (c *Collector) RecordSubmission(score, total int) {
	if c == nil {
		return
	}
	c.submissions.Inc()
	if total > 0 {
		c.scoreRatio.Observe(float64(score) / float64(total))
	}
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
