package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/secmon-lab/continuum/pkg/domain/model"
)

type metrics struct {
	writes      *prometheus.CounterVec
	suggestions *prometheus.CounterVec
	reports     prometheus.Counter
}

func newMetrics(registry *prometheus.Registry, state func() *model.State) *metrics {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	m := &metrics{
		writes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "continuum_record_writes_total",
			Help: "The total number of record writes by kind, operation and result",
		}, []string{"kind", "op", "result"}),
		suggestions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "continuum_suggestions_total",
			Help: "The total number of AI suggestion requests by result",
		}, []string{"result"}),
		reports: factory.NewCounter(prometheus.CounterOpts{
			Name: "continuum_reports_published_total",
			Help: "The total number of published reports",
		}),
	}

	records := map[string]func(*model.State) int{
		"resource": func(s *model.State) int { return len(s.Resources) },
		"activity": func(s *model.State) int { return len(s.Activities) },
		"risk":     func(s *model.State) int { return len(s.Risks) },
		"strategy": func(s *model.State) int { return len(s.Strategies) },
	}
	for kind, count := range records {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "continuum_records",
			Help:        "The number of records held by kind",
			ConstLabels: prometheus.Labels{"kind": kind},
		}, func() float64 { return float64(count(state())) })
	}

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "continuum_strategy_coverage_percent",
		Help: "Percentage of activities with a selected recovery strategy",
	}, func() float64 {
		s := state()
		return float64(model.StrategyCoverage(s.Activities, s.Strategies))
	})
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "continuum_readiness_percent",
		Help: "Percentage of activities whose selected strategy meets the RTO",
	}, func() float64 {
		s := state()
		return float64(model.ReadinessScore(s.Activities, s.Risks, s.Strategies))
	})
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "continuum_high_risks",
		Help: "The number of risks scoring High or above",
	}, func() float64 { return float64(model.HighRiskCount(state().Risks)) })

	return m
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
