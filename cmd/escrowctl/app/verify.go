package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/lifecycle"
	"github.com/rampp2p/escrow/internal/message_queue/nats/client/nats_core"
	"github.com/rampp2p/escrow/internal/message_queue/nats/nats_connection"
)

var VerifyCmd = &cobra.Command{
	Use:   "verify <order-id> <action> <txid>",
	Short: "Queue a transaction for verification by the worker",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		job, err := parseVerifyJob(args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelInfo}))

		conn, err := nats_connection.Connect(cfg.MessageQueue.URL, "escrowctl", logger, nats_connection.WithFailFast())
		if err != nil {
			return err
		}

		client := nats_core.New(conn, nats_core.WithLogger(logger))
		defer client.Shutdown()

		err = client.PublishJSON(context.Background(), lifecycle.VerifyTopic, job)
		if err != nil {
			return err
		}

		logger.Info("verification queued", slog.Int64("order", job.OrderID), slog.String("action", string(job.Action)), slog.String("txid", job.TxID))
		return nil
	},
}

func parseVerifyJob(args []string) (lifecycle.VerifyJob, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return lifecycle.VerifyJob{}, fmt.Errorf("%w: invalid order id %q", escrow.ErrValidation, args[0])
	}

	action := escrow.ActionType(args[1])
	if !action.Valid() {
		return lifecycle.VerifyJob{}, fmt.Errorf("%w: %s", escrow.ErrInvalidAction, args[1])
	}

	err = lifecycle.ValidateTxID(args[2])
	if err != nil {
		return lifecycle.VerifyJob{}, err
	}

	return lifecycle.VerifyJob{OrderID: id, Action: action, TxID: args[2]}, nil
}
