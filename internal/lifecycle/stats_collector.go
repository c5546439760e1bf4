package lifecycle

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rampp2p/escrow/internal/escrow"
)

const (
	outcomeSuccess  = "success"
	outcomeConflict = "conflict"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
	outcomeReplayed = "replayed"
)

type Stats struct {
	statusAppends *prometheus.CounterVec
	verifications *prometheus.CounterVec
}

func NewStats() *Stats {
	return &Stats{
		statusAppends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "escrow_status_appends_total",
			Help: "Number of attempted status appends by status and outcome",
		}, []string{"status", "outcome"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "escrow_verifications_total",
			Help: "Number of transaction verifications by action and outcome",
		}, []string{"action", "outcome"}),
	}
}

// Register adds the collectors to the default registry. Collectors registered before are reused.
func (s *Stats) Register() error {
	var err error
	s.statusAppends, err = register(s.statusAppends)
	if err != nil {
		return err
	}

	s.verifications, err = register(s.verifications)
	return err
}

func register(c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := prometheus.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}
	return c, err
}

func (s *Stats) statusAppended(status escrow.StatusType, err error) {
	if s == nil {
		return
	}
	s.statusAppends.WithLabelValues(string(status), outcome(err)).Inc()
}

func (s *Stats) verified(action escrow.ActionType, o string) {
	if s == nil {
		return
	}
	s.verifications.WithLabelValues(string(action), o).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, escrow.ErrStateConflict):
		return outcomeConflict
	case errors.Is(err, escrow.ErrVerificationFailed):
		return outcomeInvalid
	}
	return outcomeFailed
}
