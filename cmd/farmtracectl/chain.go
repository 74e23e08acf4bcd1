package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/feral-file/farmtrace/internal/api/shared/dto"
	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/logger"
	"github.com/feral-file/farmtrace/internal/store"
)

func chainCommand(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "chain <product-id>",
		Short: "Print or export the ownership chain of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID := args[0]

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close(db)
			}()

			st := store.NewPGStore(db)
			product, err := st.GetProductByID(cmd.Context(), productID)
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}
			if product == nil {
				return domain.ErrProductNotFound
			}

			blocks, err := a.newLedger(st).GetChain(cmd.Context(), productID)
			if err != nil {
				return err
			}
			exported := dto.MapBlocksToDTO(blocks)

			if out == "" {
				return a.printJSON(cmd, exported)
			}

			data, err := a.json.MarshalIndent(exported, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal chain: %w", err)
			}
			if err := a.fs.WriteFile(out, data); err != nil {
				return fmt.Errorf("failed to write chain file: %w", err)
			}

			logger.Info("Exported ownership chain", zap.String("productID", productID), zap.Int("blocks", len(blocks)), zap.String("file", out))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d block(s) to %s\n", len(blocks), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the chain to a file instead of stdout")
	return cmd
}
