// Package metrics holds the domain counters exported on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts domain events. A nil *Metrics records nothing.
type Metrics struct {
	linkViews   *prometheus.CounterVec
	atsAnalyses prometheus.Counter
	assessments *prometheus.CounterVec
}

// New creates the domain counters and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		linkViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_link_views_total",
				Help: "Shared resume link views, by template.",
			},
			[]string{"template"},
		),
		atsAnalyses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ats_analyses_total",
			Help: "ATS analyses run against a job description.",
		}),
		assessments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assessments_submitted_total",
				Help: "Skill assessments submitted, by category.",
			},
			[]string{"category"},
		),
	}

	for _, c := range []prometheus.Collector{m.linkViews, m.atsAnalyses, m.assessments} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) LinkViewed(template string) {
	if m == nil {
		return
	}
	m.linkViews.WithLabelValues(template).Inc()
}

func (m *Metrics) ATSAnalyzed() {
	if m == nil {
		return
	}
	m.atsAnalyses.Inc()
}

func (m *Metrics) AssessmentSubmitted(category string) {
	if m == nil {
		return
	}
	m.assessments.WithLabelValues(category).Inc()
}
