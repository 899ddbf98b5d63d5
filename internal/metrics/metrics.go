package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Event outcomes.
const (
	OutcomeIgnored  = "ignored"
	OutcomeNotHaiku = "not_haiku"
	OutcomeHaiku    = "haiku"
	OutcomeFailed   = "failed"
)

// Syllable lookup sources.
const (
	SourceCache    = "cache"
	SourceService  = "service"
	SourceFallback = "fallback"
	SourceSentinel = "sentinel"
)

// Notification outcomes.
const (
	NotifySent   = "sent"
	NotifyFailed = "failed"
)

var wordsNeedingReviewDesc = prometheus.NewDesc(
	"haikubot_words_needing_review",
	"Cached words whose syllable count is waiting for manual review",
	nil,
	nil,
)

// ReviewCounter reports the review backlog. Satisfied by cache backends that
// can enumerate entries.
type ReviewCounter interface {
	CountNeedingReview(ctx context.Context) (int64, error)
}

// ReviewCollector is a custom Prometheus collector that reads the review
// backlog from the cache store on each scrape.
type ReviewCollector struct {
	store ReviewCounter
}

// Describe sends the metric descriptor to the channel.
func (c *ReviewCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- wordsNeedingReviewDesc
}

// Collect queries the store and emits the backlog as a gauge.
func (c *ReviewCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := c.store.CountNeedingReview(ctx)
	if err != nil {
		slog.Error("failed to collect review backlog", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(wordsNeedingReviewDesc, prometheus.GaugeValue, float64(n))
}

// Recorder counts pipeline outcomes. A nil Recorder records nothing.
type Recorder struct {
	events        *prometheus.CounterVec
	lookups       *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// New registers the counters with reg. When store is non-nil the review
// backlog collector is registered too.
func New(reg prometheus.Registerer, store ReviewCounter) *Recorder {
	r := &Recorder{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haikubot_events_total",
			Help: "Inbound chat events by outcome",
		}, []string{"outcome"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haikubot_syllable_lookups_total",
			Help: "Syllable lookups by where the count came from",
		}, []string{"source"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haikubot_notifications_total",
			Help: "Haiku replies posted to the chat platform by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.events, r.lookups, r.notifications)
	if store != nil {
		reg.MustRegister(&ReviewCollector{store: store})
	}
	return r
}

// Event records the outcome of one inbound event.
func (r *Recorder) Event(outcome string) {
	if r == nil {
		return
	}
	r.events.WithLabelValues(outcome).Inc()
}

// Lookup records where a syllable count came from.
func (r *Recorder) Lookup(source string) {
	if r == nil {
		return
	}
	r.lookups.WithLabelValues(source).Inc()
}

// Notification records the outcome of posting a haiku.
func (r *Recorder) Notification(outcome string) {
	if r == nil {
		return
	}
	r.notifications.WithLabelValues(outcome).Inc()
}
