package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// SetupPrometheus creates the metrics registry with the default go/process
// collectors plus any extra ones (e.g. the pgxpool collector).
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	for _, c := range extraCollectors {
		if err := registry.Register(c); err != nil {
			log.Errorf("failed to register prometheus collector: %s", err)
		}
	}

	return registry
}
