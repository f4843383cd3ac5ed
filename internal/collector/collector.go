package collector

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/hhvm-exporter/hhvm-exporter/internal/scraper"
)

// Fetcher retrieves admin documents. *scraper.Fetcher implements it.
type Fetcher interface {
	URL(path string) string
	Fetch(ctx context.Context, url string) scraper.Result
}

// Collector is a prometheus.Collector that scrapes the HHVM admin server on
// every Collect. Apart from the duration summary it keeps no state between
// calls, so concurrent scrapes are safe.
type Collector struct {
	fetcher  Fetcher
	logger   *slog.Logger
	duration prometheus.Summary
}

// New returns a Collector reading from f. A nil logger uses slog.Default().
func New(f Fetcher, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		fetcher: f,
		logger:  logger,
		duration: prometheus.NewSummary(prometheus.SummaryOpts{
			Name: durationName,
			Help: durationHelp,
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, f := range Families() {
		ch <- f.Desc()
	}
	c.duration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.Scrape(context.Background()) {
		m, err := s.Metric()
		if err != nil {
			c.logger.Error("collector: invalid sample", "metric", s.Family.Name, "err", err)
			ch <- prometheus.NewInvalidMetric(s.Family.Desc(), err)
			continue
		}
		ch <- m
	}
	c.duration.Collect(ch)
}

// Scrape fetches the three admin documents concurrently and maps them into
// samples, ending with hhvm_up. A document that fails to fetch or to map only
// removes its own samples. The call is timed into the duration summary on
// every return path.
func (c *Collector) Scrape(ctx context.Context) []Sample {
	timer := prometheus.NewTimer(c.duration)
	defer timer.ObserveDuration()

	var health, memory, status scraper.Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { health = c.fetch(gctx, scraper.HealthPath); return nil })
	g.Go(func() error { memory = c.fetch(gctx, scraper.MemoryPath); return nil })
	g.Go(func() error { status = c.fetch(gctx, scraper.StatusPath); return nil })
	_ = g.Wait() // fetches report absence in their Result, never as an error

	samples := MapHealth(health)
	samples = append(samples, MapMemory(memory)...)

	statusSamples, err := MapStatus(status)
	if err != nil {
		c.logger.Warn("collector: skipping status document", "path", scraper.StatusPath, "err", err)
	} else {
		samples = append(samples, statusSamples...)
	}

	upValue := 0.0
	if health.Present() && memory.Present() && status.Present() {
		upValue = 1
	}
	return append(samples, sample(up, upValue))
}

func (c *Collector) fetch(ctx context.Context, path string) scraper.Result {
	url := c.fetcher.URL(path)
	res := c.fetcher.Fetch(ctx, url)
	if !res.Present() {
		c.logger.Debug("collector: admin endpoint unavailable", "url", url, "err", res.Err)
	}
	return res
}
