package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	ScoresSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scores_submitted_total",
			Help: "Total score submissions persisted",
		},
		[]string{"game"},
	)

	DuplicateSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "duplicate_score_submissions_total",
			Help: "Total submissions absorbed by the de-duplication window",
		},
	)

	ScoresDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scores_deleted_total",
			Help: "Total score records deleted by their owner",
		},
	)

	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total user registrations",
		},
	)
)

var once sync.Once

func Init() {
	once.Do(func() {
		prometheus.MustRegister(HttpRequests)
		prometheus.MustRegister(ScoresSubmitted)
		prometheus.MustRegister(DuplicateSubmissions)
		prometheus.MustRegister(ScoresDeleted)
		prometheus.MustRegister(UsersRegistered)
	})
}
