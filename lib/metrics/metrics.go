package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InjectedFaults - кол-во записей, прерванных симулятором ошибок
	InjectedFaults = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "talentflow",
		Name:      "simulator_injected_faults_total",
		Help:      "Writes aborted by the fault simulator.",
	})

	// WriteDelay - распределение искусственной задержки записи
	WriteDelay = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "talentflow",
		Name:      "simulator_write_delay_seconds",
		Help:      "Artificial delay applied to write requests.",
		Buckets:   prometheus.DefBuckets,
	})

	// SeededEntities - размер коллекций после последнего сидирования
	SeededEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "talentflow",
		Name:      "seeded_entities",
		Help:      "Entities inserted by the last seed run.",
	}, []string{"collection"})
)
