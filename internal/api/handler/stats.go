package handler

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register stats collector")

type Stats struct {
	apiRequests *prometheus.CounterVec
}

func NewStats() (*Stats, error) {
	s := &Stats{
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "escrow_api_requests_total",
			Help: "Nr of api requests by operation and response code",
		}, []string{"operation", "code"}),
	}

	err := registerStats(s.apiRequests)
	if err != nil {
		return nil, errors.Join(ErrFailedToRegisterStats, err)
	}

	return s, nil
}

func (s *Stats) request(operation string, code int) {
	if s == nil {
		return
	}
	s.apiRequests.WithLabelValues(operation, strconv.Itoa(code)).Inc()
}

func (s *Stats) UnregisterStats() {
	unregisterStats(s.apiRequests)
}

func registerStats(cs ...prometheus.Collector) error {
	for _, c := range cs {
		err := prometheus.Register(c)
		if err != nil {
			return errors.Join(ErrFailedToRegisterStats, err)
		}
	}

	return nil
}

func unregisterStats(cs ...prometheus.Collector) {
	for _, c := range cs {
		_ = prometheus.Unregister(c)
	}
}
