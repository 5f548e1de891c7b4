package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RuleFired = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_rule_fired_total",
		Help: "Total number of event rules that applied an effect",
	}, []string{"rule", "kind"})

	RuleRegionSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_rule_region_skipped_total",
		Help: "Total number of region-gated rule evaluations skipped because the region is disabled",
	}, []string{"rule"})

	MarkedItemDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_marked_item_decisions_total",
		Help: "Total number of marked item protection decisions",
	}, []string{"hook", "decision"})

	PeriodicEffects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_periodic_effects_total",
		Help: "Total number of periodic effects applied to participants",
	}, []string{"effect"})

	PersistenceWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_persistence_writes_total",
		Help: "Total number of persistence writes",
	}, []string{"kind", "status"})

	BridgeMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_bridge_messages_total",
		Help: "Total number of host bridge messages received",
	}, []string{"type"})
)
