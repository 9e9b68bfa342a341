package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"faqsite/internal/faq"
)

// Search outcome labels.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

var (
	recordsDesc = prometheus.NewDesc(
		"faqsite_records",
		"Number of FAQ records per category",
		[]string{"category"},
		nil,
	)
	recordsTotalDesc = prometheus.NewDesc(
		"faqsite_records_total",
		"Number of FAQ records loaded, including unknown categories",
		nil,
		nil,
	)

	searches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "faqsite_searches_total",
		Help: "Total filtered views served by outcome",
	}, []string{"outcome"})

	copies = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "faqsite_answer_copies_total",
		Help: "Total answers handed out for clipboard copy",
	})

	reloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "faqsite_reloads_total",
		Help: "FAQ file reload attempts by outcome",
	}, []string{"outcome"})
)

// BucketCollector is a custom Prometheus collector that reads per-category
// counts from the current index on each scrape.
type BucketCollector struct {
	store *faq.Store
}

// Describe sends the metric descriptors to the channel.
func (c *BucketCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- recordsDesc
	ch <- recordsTotalDesc
}

// Collect emits the per-category counts as gauges.
func (c *BucketCollector) Collect(ch chan<- prometheus.Metric) {
	idx := c.store.Index()
	counts := idx.Counts()
	for _, b := range faq.Buckets {
		ch <- prometheus.MustNewConstMetric(
			recordsDesc,
			prometheus.GaugeValue,
			float64(counts[b]),
			string(b),
		)
	}
	ch <- prometheus.MustNewConstMetric(recordsTotalDesc, prometheus.GaugeValue, float64(idx.Len()))
}

var initOnce sync.Once

// Init registers the collectors with reg. Must be called once at startup.
func Init(store *faq.Store, reg prometheus.Registerer) {
	initOnce.Do(func() {
		reg.MustRegister(&BucketCollector{store: store}, searches, copies, reloads)
	})
}

// RecordSearch counts a filtered view. Landing views are not counted.
func RecordSearch(matched int) {
	if matched > 0 {
		searches.WithLabelValues(OutcomeHit).Inc()
		return
	}
	searches.WithLabelValues(OutcomeMiss).Inc()
}

// RecordCopy counts an answer handed out for copying.
func RecordCopy() {
	copies.Inc()
}

// RecordReload counts a reload attempt.
func RecordReload(ok bool) {
	if ok {
		reloads.WithLabelValues("ok").Inc()
		return
	}
	reloads.WithLabelValues("error").Inc()
}
