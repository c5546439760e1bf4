package cmd

import (
	"log/slog"

	"github.com/rampp2p/escrow/config"
	"github.com/rampp2p/escrow/internal/jobs"
)

// StartWorker runs the verification workers and the expiry sweep.
func StartWorker(logger *slog.Logger, escrowConfig *config.EscrowConfig) (func(), error) {
	logger = logger.With(slog.String("service", "worker"))
	logger.Info("Starting")

	eng, err := newEngine(logger, escrowConfig, "worker")
	if err != nil {
		return nil, err
	}

	jobsConfig := escrowConfig.Jobs

	worker := jobs.NewVerifyWorker(logger, eng.mqClient, eng.orchestrator,
		jobs.WithWorkers(jobsConfig.VerifyWorkers),
		jobs.WithMaxRetryElapsed(jobsConfig.MaxRetryElapsed),
	)
	sweep := jobs.NewExpirySweep(logger, eng.store, eng.cache, eng.notifier, jobsConfig.SweepSchedule)

	stopFn := func() {
		logger.Info("Shutting down worker")
		sweep.Shutdown()
		worker.Shutdown()
		eng.shutdown()
		logger.Info("Shutdown complete")
	}

	err = worker.Start()
	if err != nil {
		stopFn()
		return nil, err
	}

	err = sweep.Start()
	if err != nil {
		stopFn()
		return nil, err
	}

	return stopFn, nil
}
