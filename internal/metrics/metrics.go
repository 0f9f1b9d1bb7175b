package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"ecaretag/internal/classifier"
	"ecaretag/internal/models"
	"ecaretag/internal/store"
)

var (
	codeMatchDesc = prometheus.NewDesc(
		"ecaretag_code_matches_total",
		"Total classification matches by taxonomy code",
		[]string{"code"},
		nil,
	)
	classificationDesc = prometheus.NewDesc(
		"ecaretag_classifications_total",
		"Total classification requests by outcome",
		[]string{"outcome"},
		nil,
	)
)

// UsageCollector is a custom Prometheus collector that reads usage counters
// from the store on each scrape.
type UsageCollector struct {
	store store.Store
}

// Describe sends the metric descriptors to the channel.
func (c *UsageCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- codeMatchDesc
	ch <- classificationDesc
}

// Collect queries the store for all counters and emits them.
func (c *UsageCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	matches, err := c.store.CodeMatches(ctx)
	if err != nil {
		slog.Error("failed to collect code match metrics", "error", err)
		return
	}
	for _, m := range matches {
		ch <- prometheus.MustNewConstMetric(codeMatchDesc, prometheus.CounterValue, float64(m.Count), m.Code)
	}

	counts, err := c.store.Classifications(ctx)
	if err != nil {
		slog.Error("failed to collect classification metrics", "error", err)
		return
	}
	for _, cnt := range counts {
		ch <- prometheus.MustNewConstMetric(classificationDesc, prometheus.CounterValue, float64(cnt.Count), cnt.Outcome)
	}
}

// Recorder provides async usage recording.
type Recorder struct {
	store store.Store
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(st store.Store) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: st}
		prometheus.MustRegister(&UsageCollector{store: st})
	})
}

// RecordClassification asynchronously records the outcome of one
// classification call and its matched codes. The request never waits on the
// store.
func RecordClassification(result classifier.Result) {
	if recorder == nil {
		return
	}
	go func() {
		ctx := context.Background()

		outcome := models.OutcomeNoMatch
		if len(result.Codes) > 0 {
			outcome = models.OutcomeMatched
		}
		if err := recorder.store.IncrementClassification(ctx, outcome); err != nil {
			slog.Error("failed to record classification", "outcome", outcome, "error", err)
		}

		for _, code := range result.Codes {
			if err := recorder.store.IncrementCodeMatch(ctx, code); err != nil {
				slog.Error("failed to record code match", "code", code, "error", err)
			}
		}
	}()
}
