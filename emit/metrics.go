package emit

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
)

// Collector tracks how many messages were built, by directive kind, and
// how many directives failed to build. It owns a private registry so batch
// invocations never clash on the global one.
type Collector struct {
	registry *prometheus.Registry
	built    *prometheus.CounterVec
	failures prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		built: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adtp",
			Name:      "messages_built_total",
			Help:      "The total number of messages built, by directive kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adtp",
			Name:      "build_failures_total",
			Help:      "The total number of directives that failed to build.",
		}),
	}
	c.registry.MustRegister(c.built, c.failures)
	return c
}

func (c *Collector) MessageBuilt(kind string) {
	c.built.WithLabelValues(kind).Inc()
}

func (c *Collector) BuildFailed() {
	c.failures.Inc()
}

// Render returns the current counters in Prometheus text exposition format.
func (c *Collector) Render() (string, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return "", errors.Wrap(err, "gathering metrics")
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return "", errors.Wrap(err, "encoding metric family")
		}
	}
	return buf.String(), nil
}

// WriteFile dumps the rendered counters to a file, the textfile-collector
// convention for tools that have no scrape endpoint.
func (c *Collector) WriteFile(fs afero.Fs, path string) error {
	blob, err := c.Render()
	if err != nil {
		return err
	}
	return errors.Wrap(afero.WriteFile(fs, path, []byte(blob), 0644), "writing metrics file")
}
