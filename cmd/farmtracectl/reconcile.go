package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/feral-file/farmtrace/internal/adapter"
	"github.com/feral-file/farmtrace/internal/metrics"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/sweeper"
)

func reconcileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Run a single ownership reconciliation pass",
		Long: "Roll drifted product owners forward to the owner of their latest block. " +
			"Chains that fail verification are reported and left untouched.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close(db)
			}()

			locker, release, err := a.newLocker(cmd)
			if err != nil {
				return err
			}
			defer release()

			st := store.NewPGStore(db)
			reconciler := sweeper.NewOwnershipReconciler(sweeper.OwnershipReconcilerConfig{
				BatchSize:        a.cfg.Reconciler.BatchSize,
				WorkerPoolSize:   a.cfg.Reconciler.Worker.WorkerPoolSize,
				RepairMaxElapsed: a.cfg.Reconciler.RepairMaxElapsed,
			}, st, a.newLedger(st), locker, adapter.NewClock(), metrics.New(prometheus.NewRegistry()))

			report, err := reconciler.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, report)
		},
	}
}
