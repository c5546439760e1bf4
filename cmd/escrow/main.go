package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cmd "github.com/rampp2p/escrow/cmd/escrow/services"
	"github.com/rampp2p/escrow/config"
	escrowLogger "github.com/rampp2p/escrow/internal/logger"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run escrow: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir, startAPI, startWorker, dumpConfigFile := parseFlags()

	escrowConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	logger, err := escrowLogger.NewLogger(escrowConfig.LogLevel, escrowConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))

	logger.Info("Starting escrow")

	shutdownFns := make([]func(), 0)

	go func() {
		if escrowConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", escrowConfig.ProfilerAddr))

			err := http.ListenAndServe(escrowConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if escrowConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", escrowConfig.Prometheus.Endpoint))
			http.Handle(escrowConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(escrowConfig.Prometheus.Addr, nil)
			if err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	if !isAnyFlagPassed("api", "worker") {
		logger.Info("No service selected, starting all")
		startAPI = true
		startWorker = true
	}

	if startWorker {
		shutdown, err := cmd.StartWorker(logger, escrowConfig)
		if err != nil {
			appCleanup(logger, shutdownFns)
			return fmt.Errorf("failed to start worker: %v", err)
		}
		shutdownFns = append(shutdownFns, shutdown)
	}

	if startAPI {
		shutdown, err := cmd.StartAPIServer(logger, escrowConfig)
		if err != nil {
			appCleanup(logger, shutdownFns)
			return fmt.Errorf("failed to start api: %v", err)
		}
		shutdownFns = append(shutdownFns, shutdown)
	}

	// setup signal catching
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-signalChan
	logger.Info("Received shutdown signal", slog.String("reason", sig.String()))

	appCleanup(logger, shutdownFns)

	return nil
}

func appCleanup(logger *slog.Logger, shutdownFns []func()) {
	logger.Info("cleaning up")
	for _, fn := range shutdownFns {
		fn()
	}
}

func parseFlags() (string, bool, bool, string) {
	startAPI := flag.Bool("api", false, "start the escrow api server")
	startWorker := flag.Bool("worker", false, "start the verification worker and expiry sweep")
	help := flag.Bool("help", false, "Show help")
	dumpConfigFile := flag.String("dump_config", "", "dump config to specified file and exit")
	configDir := flag.String("config", "", "path to configuration file")

	flag.Parse()

	if *help {
		fmt.Println("usage: escrow [options]")
		fmt.Println("where options are:")
		fmt.Println("")
		fmt.Println("    -api=<true|false>")
		fmt.Println("          whether to start the api server (default=true)")
		fmt.Println("")
		fmt.Println("    -worker=<true|false>")
		fmt.Println("          whether to start the verification worker and expiry sweep (default=true)")
		fmt.Println("")
		fmt.Println("    -config=/location")
		fmt.Println("          directory to look for config (default='')")
		fmt.Println("")
		fmt.Println("    -dump_config=/file.yaml")
		fmt.Println("          dump config to specified file and exit")
		fmt.Println("")
		os.Exit(0)
	}

	return *configDir, *startAPI, *startWorker, *dumpConfigFile
}

func isAnyFlagPassed(flags ...string) bool {
	for _, name := range flags {
		found := false
		flag.Visit(func(f *flag.Flag) {
			if f.Name == name {
				found = true
			}
		})
		if found {
			return true
		}
	}
	return false
}
