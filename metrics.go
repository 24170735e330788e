/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	sessionsCreated prometheus.Counter
	promptsServed   prometheus.Counter
	answers         *prometheus.CounterVec

	handler http.Handler
}

// newMetrics builds a standalone registry so the handler only exposes our
// counters (plus nothing from the global registry).
func newMetrics() *metrics {
	reg := prometheus.NewRegistry()

	m := &metrics{
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huntinggrounds_sessions_created_total",
			Help: "Number of game sessions created.",
		}),
		promptsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "huntinggrounds_prompts_served_total",
			Help: "Number of hunting ground prompts selected.",
		}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "huntinggrounds_answers_total",
			Help: "Number of answers evaluated, by verdict.",
		}, []string{"verdict"}),
	}

	reg.MustRegister(m.sessionsCreated, m.promptsServed, m.answers)
	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	return m
}
