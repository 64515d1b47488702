package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "halarcraft_http_requests_total",
		Help: "Количество HTTP-запросов",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "halarcraft_http_request_duration_seconds",
		Help:    "Длительность HTTP-запросов",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	SubmissionsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "halarcraft_submissions_created_total",
		Help: "Отправленные на модерацию работы",
	}, []string{"kind"})

	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "halarcraft_moderation_decisions_total",
		Help: "Решения модераторов",
	}, []string{"kind", "decision"})

	FeedCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "halarcraft_feed_cache_hits_total",
		Help: "Попадания в кеш публичной ленты",
	}, []string{"kind"})

	FeedCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "halarcraft_feed_cache_misses_total",
		Help: "Промахи кеша публичной ленты",
	}, []string{"kind"})
)
